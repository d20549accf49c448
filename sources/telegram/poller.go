package telegram

import (
	"fmt"
	"toaster/sources/tracing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Poller struct {
	bot     *tgbotapi.BotAPI
	log     *tracing.Logger
	config  *PollerConfig
	handler *TelegramHandler
}

func NewPoller(bot *tgbotapi.BotAPI, log *tracing.Logger, handler *TelegramHandler, config *PollerConfig) *Poller {
	return &Poller{bot: bot, log: log, handler: handler, config: config}
}

// Start consumes updates until Stop. Messages are handled in order, button
// presses each get their own goroutine.
func (x *Poller) Start() {
	update := tgbotapi.NewUpdate(0)
	update.Timeout = x.config.Timeout
	update.AllowedUpdates = x.config.AllowedUpdates

	for update := range x.bot.GetUpdatesChan(update) {
		if msg := update.Message; msg != nil && msg.From != nil {
			log := x.log.With(
				tracing.EventId, update.UpdateID,
				tracing.UserId, msg.From.ID,
				tracing.UserName, msg.From.UserName,
				tracing.ChatType, msg.Chat.Type,
				tracing.ChatId, msg.Chat.ID,
				tracing.MessageId, msg.MessageID,
			)

			if err := x.handler.HandleMessage(log, msg); err != nil {
				log.E("Failed to handle message", tracing.InnerError, err)
			}
		}

		if query := update.CallbackQuery; query != nil && query.From != nil {
			log := x.log.With(
				tracing.EventId, update.UpdateID,
				tracing.UserId, query.From.ID,
				tracing.UserName, query.From.UserName,
				tracing.ButtonEventId, query.ID,
			)
			if query.Message != nil {
				log = log.With(tracing.ChatId, query.Message.Chat.ID, tracing.MessageId, query.Message.MessageID)
			}

			go x.callback(log, update.UpdateID, query)
		}
	}
}

func (x *Poller) callback(log *tracing.Logger, updateID int, query *tgbotapi.CallbackQuery) {
	defer func() {
		if r := recover(); r != nil {
			log.E("Callback handler panicked", tracing.InnerError, fmt.Sprint(r))
		}
	}()

	if err := x.handler.HandleCallback(log, updateID, query); err != nil {
		log.E("Failed to handle callback", tracing.InnerError, err)
	}
}

func (x *Poller) Stop() {
	x.bot.StopReceivingUpdates()
}
