package throttler

import (
	"time"
	"toaster/sources/configuration"
)

type ThrottlerConfig struct {
	Limit time.Duration
}

func NewThrottlerConfig(config *configuration.Config) *ThrottlerConfig {
	limit := config.Throttler.Limit
	if limit <= 0 {
		limit = time.Second
	}

	return &ThrottlerConfig{Limit: limit}
}
