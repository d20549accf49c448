package telegram

import (
	"net/http"
	"toaster/sources/configuration"
	"toaster/sources/platform"
	"toaster/sources/tracing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func NewBotAPI(log *tracing.Logger, config *configuration.Config, client *http.Client) *tgbotapi.BotAPI {
	if err := platform.ValidateTelegramBotToken(config.Telegram.BotToken); err != nil {
		log.F("Telegram bot token is invalid", tracing.InnerError, err)
	}

	endpoint := tgbotapi.APIEndpoint
	if config.Telegram.APIEndpoint != "" {
		endpoint = config.Telegram.APIEndpoint
	}

	bot, err := tgbotapi.NewBotAPIWithClient(config.Telegram.BotToken, endpoint, client)
	if err != nil {
		log.F("Failed to initialize telegram bot", tracing.InnerError, err)
	}

	log.I("Telegram bot initialized", "api_endpoint", endpoint, "bot_name", bot.Self.UserName)
	return bot
}
