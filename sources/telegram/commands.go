package telegram

import (
	"sort"
	"strings"
	"toaster/sources/buttons"
	"toaster/sources/callbacks"
	"toaster/sources/tracing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// requireAdmin replies with a refusal when the sender cannot manage the chat.
// Privileged keyboards are only ever shown to chat administrators.
func (x *TelegramHandler) requireAdmin(log *tracing.Logger, msg *tgbotapi.Message) (bool, error) {
	if msg.From == nil {
		return false, nil
	}

	admin, err := x.diplomat.IsChatAdmin(log, msg.Chat, msg.From.ID)
	if err != nil {
		return false, err
	}

	if !admin {
		log.W("Privileged command from a non administrator")
		x.diplomat.Reply(log, msg, x.text(msg, "MsgNoAccess"))
	}
	return admin, nil
}

func (x *TelegramHandler) HandleSettingsCommand(log *tracing.Logger, msg *tgbotapi.Message) error {
	if ok, err := x.requireAdmin(log, msg); !ok || err != nil {
		return err
	}

	keyboard := buttons.NewKeyboard(msg.From.ID).
		Row(
			buttons.NewButton(x.text(msg, "ButtonSystems"), buttons.ColorPrimary, buttons.Payload{CallAction: callbacks.ActionSystemsSettings, Page: "1"}),
			buttons.NewButton(x.text(msg, "ButtonFilters"), buttons.ColorPrimary, buttons.Payload{CallAction: callbacks.ActionFiltersSettings, Page: "1"}),
		).
		Row(x.cancelButton(msg))

	return x.diplomat.SendKeyboard(log, msg, x.text(msg, "MsgSettingsMenu"), keyboard)
}

func (x *TelegramHandler) HandleMarkCommand(log *tracing.Logger, msg *tgbotapi.Message) error {
	if ok, err := x.requireAdmin(log, msg); !ok || err != nil {
		return err
	}

	var label string
	if strings.TrimSpace(msg.CommandArguments()) != "" {
		var cmd MarkCmd
		if _, err := x.ParseKongCommand(log, msg, &cmd); err != nil {
			x.diplomat.Reply(log, msg, x.text(msg, "MsgMarkUsage"))
			return nil
		}
		label = strings.TrimSpace(strings.Join(cmd.Label, " "))
	}

	current, err := x.marks.GetMark(log, msg.Chat.ID)
	if err != nil {
		return err
	}

	if current == nil && label == "" {
		x.diplomat.Reply(log, msg, x.text(msg, "MsgMarkUsage"))
		return nil
	}

	shown := label
	if current != nil {
		shown = current.ConvMark
	}

	keyboard := buttons.NewKeyboard(msg.From.ID)
	if current == nil {
		keyboard = keyboard.Row(buttons.NewButton(x.text(msg, "ButtonMarkSet"), buttons.ColorPositive, buttons.Payload{CallAction: callbacks.ActionSetMark, Mark: label}))
	}
	if current != nil {
		keyboard = keyboard.Row(
			buttons.NewButton(x.text(msg, "ButtonMarkUpdate"), buttons.ColorPrimary, buttons.Payload{CallAction: callbacks.ActionUpdateConvData}),
			buttons.NewButton(x.text(msg, "ButtonMarkDrop"), buttons.ColorNegative, buttons.Payload{CallAction: callbacks.ActionDropMark}),
		)
	}
	keyboard = keyboard.Row(x.cancelButton(msg))

	return x.diplomat.SendKeyboard(log, msg, x.textTd(msg, "MsgMarkMenu", map[string]interface{}{"Mark": shown}), keyboard)
}

func (x *TelegramHandler) HandleRoleCommand(log *tracing.Logger, msg *tgbotapi.Message) error {
	if ok, err := x.requireAdmin(log, msg); !ok || err != nil {
		return err
	}

	var target int64
	if msg.ReplyToMessage != nil && msg.ReplyToMessage.From != nil && strings.TrimSpace(msg.CommandArguments()) == "" {
		target = msg.ReplyToMessage.From.ID
	} else {
		var cmd RoleCmd
		if _, err := x.ParseKongCommand(log, msg, &cmd); err != nil || cmd.UserID <= 0 {
			x.diplomat.Reply(log, msg, x.text(msg, "MsgRoleUsage"))
			return nil
		}
		target = cmd.UserID
	}

	log = log.With(tracing.TargetId, target)

	name, err := x.diplomat.LookupUserName(log, target, msg.Chat.ID)
	if err != nil {
		return err
	}
	if name == "" {
		name = "Unknown"
	}

	keyboard := buttons.NewKeyboard(msg.From.ID)
	for _, level := range sortedLevels(x.roles) {
		color := buttons.ColorPrimary
		if level == 0 {
			color = buttons.ColorSecondary
		}
		keyboard = keyboard.Row(buttons.NewButton(x.roles[level], color, buttons.Payload{
			CallAction: callbacks.ActionSetPermission,
			Target:     target,
			Permission: level,
		}))
	}
	keyboard = keyboard.Row(x.cancelButton(msg))

	return x.diplomat.SendKeyboard(log, msg, x.textTd(msg, "MsgRoleMenu", map[string]interface{}{"User": name}), keyboard)
}

func (x *TelegramHandler) HandleGameCommand(log *tracing.Logger, msg *tgbotapi.Message) error {
	if msg.From == nil {
		return nil
	}

	keyboard := buttons.NewKeyboard(msg.From.ID).
		Row(
			buttons.NewButton(x.text(msg, "ButtonRoll"), buttons.ColorPrimary, buttons.Payload{CallAction: callbacks.ActionGameRoll}),
			buttons.NewButton(x.text(msg, "ButtonCoin"), buttons.ColorPrimary, buttons.Payload{CallAction: callbacks.ActionGameCoinflip}),
		).
		Row(x.cancelButton(msg))

	return x.diplomat.SendKeyboard(log, msg, x.text(msg, "MsgGameMenu"), keyboard)
}

func (x *TelegramHandler) cancelButton(msg *tgbotapi.Message) buttons.Button {
	return buttons.NewButton(x.text(msg, "ButtonCancel"), buttons.ColorNegative, buttons.Payload{CallAction: callbacks.ActionCancel})
}

func sortedLevels(roles callbacks.RoleTable) []int {
	levels := make([]int, 0, len(roles))
	for level := range roles {
		levels = append(levels, level)
	}
	sort.Ints(levels)
	return levels
}
