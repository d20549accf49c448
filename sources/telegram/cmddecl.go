package telegram

type MarkCmd struct {
	Label []string `arg:"" optional:"" help:"Conversation label"`
}

type RoleCmd struct {
	UserID int64 `arg:"" name:"user_id" help:"Telegram user id"`
}
