package telegram

import (
	"toaster/sources/buttons"
	"toaster/sources/callbacks"
	"toaster/sources/localization"
	"toaster/sources/metrics"
	"toaster/sources/repository"
	"toaster/sources/throttler"
	"toaster/sources/tracing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type callbackAcker interface {
	SendAck(logger *tracing.Logger, ackToken string, userID int64, peerID int64, text string)
}

type buttonDispatcher interface {
	Dispatch(log *tracing.Logger, event *callbacks.ButtonEvent) (bool, error)
}

type payloadLoader interface {
	Load(logger *tracing.Logger, token string) (*buttons.Payload, error)
}

type clickLimiter interface {
	IsAllowed(userId int64) bool
}

type TelegramHandler struct {
	diplomat     *Diplomat
	acks         callbackAcker
	dispatcher   buttonDispatcher
	payloads     payloadLoader
	marks        *repository.MarksRepository
	throttler    clickLimiter
	localization *localization.LocalizationManager
	roles        callbacks.RoleTable
	metrics      *metrics.MetricsService
}

func NewTelegramHandler(
	diplomat *Diplomat,
	dispatcher *callbacks.Dispatcher,
	payloads *repository.PayloadsRepository,
	marks *repository.MarksRepository,
	throttler *throttler.Throttler,
	localization *localization.LocalizationManager,
	roles callbacks.RoleTable,
	metrics *metrics.MetricsService,
) *TelegramHandler {
	return &TelegramHandler{
		diplomat:     diplomat,
		acks:         diplomat,
		dispatcher:   dispatcher,
		payloads:     payloads,
		marks:        marks,
		throttler:    throttler,
		localization: localization,
		roles:        roles,
		metrics:      metrics,
	}
}

func (x *TelegramHandler) HandleMessage(log *tracing.Logger, msg *tgbotapi.Message) error {
	defer tracing.ProfilePoint(log, "Telegram handler message completed", "telegram.handler.message")()

	if !msg.IsCommand() {
		return nil
	}

	log = log.With(tracing.CommandIssued, msg.Command())
	x.metrics.RecordCommandUsed(msg.Command())

	switch msg.Command() {
	case "settings":
		return x.HandleSettingsCommand(log, msg)
	case "mark":
		return x.HandleMarkCommand(log, msg)
	case "role":
		return x.HandleRoleCommand(log, msg)
	case "game":
		return x.HandleGameCommand(log, msg)
	case "start", "help":
		x.diplomat.Reply(log, msg, x.text(msg, "MsgHelp"))
	default:
		if msg.Chat.IsPrivate() {
			x.diplomat.Reply(log, msg, x.text(msg, "MsgUnknownCommand"))
		}
	}

	return nil
}

// HandleCallback turns a button press into a ButtonEvent and dispatches it.
// Every press is answered, including the ones that fail.
func (x *TelegramHandler) HandleCallback(log *tracing.Logger, updateID int, query *tgbotapi.CallbackQuery) error {
	defer tracing.ProfilePoint(log, "Telegram handler callback completed", "telegram.handler.callback")()

	lang := x.localization.Language(query.From.LanguageCode)

	if query.Message == nil {
		log.W("Callback without a message, ignoring")
		x.acks.SendAck(log, query.ID, query.From.ID, 0, x.localization.Localize(lang, "AckKeyboardExpired"))
		return nil
	}

	if err := x.dispatchCallback(log, lang, updateID, query); err != nil {
		x.acks.SendAck(log, query.ID, query.From.ID, query.Message.Chat.ID, x.localization.Localize(lang, "AckActionFailed"))
		return err
	}

	return nil
}

func (x *TelegramHandler) dispatchCallback(log *tracing.Logger, lang string, updateID int, query *tgbotapi.CallbackQuery) error {
	if !x.throttler.IsAllowed(query.From.ID) {
		log.W("User exceeded click throttler")
		x.metrics.RecordClickThrottled()
		x.acks.SendAck(log, query.ID, query.From.ID, query.Message.Chat.ID, x.localization.Localize(lang, "AckTooFast"))
		return nil
	}

	payload, err := x.payloads.Load(log.With(tracing.PayloadToken, query.Data), query.Data)
	if err != nil {
		return err
	}

	if payload == nil {
		log.I("Button payload expired or unknown", tracing.PayloadToken, query.Data)
		x.acks.SendAck(log, query.ID, query.From.ID, query.Message.Chat.ID, x.localization.Localize(lang, "AckKeyboardExpired"))
		return nil
	}

	event := &callbacks.ButtonEvent{
		EventID:       updateID,
		UserID:        query.From.ID,
		UserName:      displayName(query.From),
		PeerID:        query.Message.Chat.ID,
		PeerName:      chatName(query.Message.Chat),
		CMID:          query.Message.MessageID,
		ButtonEventID: query.ID,
		Language:      lang,
		Payload:       payload,
	}

	_, err = x.dispatcher.Dispatch(log, event)
	return err
}

func (x *TelegramHandler) text(msg *tgbotapi.Message, messageID string) string {
	return x.localization.Localize(x.language(msg), messageID)
}

func (x *TelegramHandler) textTd(msg *tgbotapi.Message, messageID string, data map[string]interface{}) string {
	return x.localization.LocalizeTd(x.language(msg), messageID, data)
}

func (x *TelegramHandler) language(msg *tgbotapi.Message) string {
	if msg.From == nil {
		return x.localization.Language("")
	}
	return x.localization.Language(msg.From.LanguageCode)
}
