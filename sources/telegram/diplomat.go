package telegram

import (
	"strings"
	"toaster/sources/buttons"
	"toaster/sources/metrics"
	"toaster/sources/repository"
	"toaster/sources/tracing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const errMessageNotModified = "message is not modified"

type Diplomat struct {
	bot      *tgbotapi.BotAPI
	payloads payloadStore
	metrics  *metrics.MetricsService
}

func NewDiplomat(bot *tgbotapi.BotAPI, payloads *repository.PayloadsRepository, metrics *metrics.MetricsService) *Diplomat {
	return &Diplomat{bot: bot, payloads: payloads, metrics: metrics}
}

func (x *Diplomat) Reply(logger *tracing.Logger, msg *tgbotapi.Message, text string) {
	defer tracing.ProfilePoint(logger, "Diplomat reply completed", "diplomat.reply")()

	chattable := tgbotapi.NewMessage(msg.Chat.ID, text)
	chattable.ReplyToMessageID = msg.MessageID

	if _, err := x.bot.Send(chattable); err != nil {
		logger.E("Message sending error", tracing.InnerError, err)
	}
}

// SendKeyboard posts a new message carrying an inline keyboard.
func (x *Diplomat) SendKeyboard(logger *tracing.Logger, msg *tgbotapi.Message, text string, keyboard buttons.Keyboard) error {
	defer tracing.ProfilePoint(logger, "Diplomat send keyboard completed", "diplomat.send_keyboard")()

	markup, err := renderMarkup(logger, x.payloads, keyboard)
	if err != nil {
		logger.E("Failed to render keyboard", tracing.InnerError, err)
		return err
	}

	chattable := tgbotapi.NewMessage(msg.Chat.ID, text)
	chattable.ReplyToMessageID = msg.MessageID
	chattable.ReplyMarkup = markup

	if _, err := x.bot.Send(chattable); err != nil {
		logger.E("Keyboard sending error", tracing.InnerError, err)
		return err
	}

	return nil
}

// SendAck answers the callback query in the background. Failures are only logged.
func (x *Diplomat) SendAck(logger *tracing.Logger, ackToken string, userID int64, peerID int64, text string) {
	go func() {
		if _, err := x.bot.Request(tgbotapi.NewCallback(ackToken, text)); err != nil {
			logger.W("Failed to answer callback", tracing.ButtonEventId, ackToken, tracing.InnerError, err)
			x.metrics.RecordAckSent("error")
			return
		}
		x.metrics.RecordAckSent("success")
	}()
}

func (x *Diplomat) EditMessage(logger *tracing.Logger, peerID int64, cmid int, text string, keyboard buttons.Keyboard) error {
	defer tracing.ProfilePoint(logger, "Diplomat edit message completed", "diplomat.edit_message")()

	markup, err := renderMarkup(logger, x.payloads, keyboard)
	if err != nil {
		logger.E("Failed to render keyboard", tracing.InnerError, err)
		x.metrics.RecordMessageEdited("error")
		return err
	}

	if _, err := x.bot.Request(tgbotapi.NewEditMessageTextAndMarkup(peerID, cmid, text, markup)); err != nil {
		if strings.Contains(err.Error(), errMessageNotModified) {
			logger.D("Message is already up to date")
			x.metrics.RecordMessageEdited("unchanged")
			return nil
		}

		logger.E("Failed to edit message", tracing.InnerError, err)
		x.metrics.RecordMessageEdited("error")
		return err
	}

	x.metrics.RecordMessageEdited("success")
	return nil
}

// DeleteMessage removes the message. Telegram deletes bot messages for everyone,
// so forAll only shows up in the log.
func (x *Diplomat) DeleteMessage(logger *tracing.Logger, peerID int64, cmid int, forAll bool) error {
	if _, err := x.bot.Request(tgbotapi.NewDeleteMessage(peerID, cmid)); err != nil {
		logger.E("Failed to delete message", "for_all", forAll, tracing.InnerError, err)
		return err
	}
	return nil
}

func (x *Diplomat) LookupUserName(logger *tracing.Logger, userID int64, peerID int64) (string, error) {
	member, err := x.chatMember(peerID, userID)
	if err != nil {
		logger.W("Failed to look up chat member", tracing.TargetId, userID, tracing.InnerError, err)
		return "", nil
	}

	return displayName(member.User), nil
}

// IsChatAdmin reports whether the user may manage the chat. Everyone manages their own private chat.
func (x *Diplomat) IsChatAdmin(logger *tracing.Logger, chat *tgbotapi.Chat, userID int64) (bool, error) {
	if chat.IsPrivate() {
		return true, nil
	}

	member, err := x.chatMember(chat.ID, userID)
	if err != nil {
		logger.E("Failed to get chat member", tracing.InnerError, err)
		return false, err
	}

	return member.IsCreator() || member.IsAdministrator(), nil
}

func (x *Diplomat) chatMember(chatID int64, userID int64) (tgbotapi.ChatMember, error) {
	return x.bot.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{ChatID: chatID, UserID: userID},
	})
}

func displayName(user *tgbotapi.User) string {
	if user == nil {
		return ""
	}

	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if name == "" {
		name = user.UserName
	}
	return name
}

func chatName(chat *tgbotapi.Chat) string {
	if chat == nil {
		return ""
	}
	if chat.Title != "" {
		return chat.Title
	}
	return strings.TrimSpace(chat.FirstName + " " + chat.LastName)
}
