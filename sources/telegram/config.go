package telegram

import (
	"toaster/sources/configuration"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type PollerConfig struct {
	Timeout        int
	AllowedUpdates []string
}

func NewPollerConfig(config *configuration.Config) *PollerConfig {
	timeout := config.Telegram.PollerTimeout
	if timeout <= 0 {
		timeout = 60
	}

	allowed := config.Telegram.AllowedUpdates
	if len(allowed) == 0 {
		allowed = []string{tgbotapi.UpdateTypeMessage, tgbotapi.UpdateTypeCallbackQuery}
	}

	return &PollerConfig{Timeout: timeout, AllowedUpdates: allowed}
}
