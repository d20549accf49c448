package repository

import (
	"time"
	"toaster/sources/configuration"
)

type PayloadsConfig struct {
	TTL time.Duration
}

func NewPayloadsConfig(config *configuration.Config) *PayloadsConfig {
	ttl := config.Telegram.PayloadTTL
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	return &PayloadsConfig{TTL: ttl}
}
