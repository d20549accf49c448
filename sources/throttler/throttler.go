package throttler

import (
	"context"
	"fmt"
	"time"
	"toaster/sources/platform"
	"toaster/sources/tracing"

	"github.com/redis/go-redis/v9"
)

// Throttler drops button clicks that arrive faster than the configured limit.
type Throttler struct {
	client *redis.Client
	config *ThrottlerConfig
	log    *tracing.Logger
}

func NewThrottler(client *redis.Client, config *ThrottlerConfig, log *tracing.Logger) *Throttler {
	return &Throttler{client: client, config: config, log: log}
}

// IsAllowed fails open: a Redis error never blocks a click.
func (x *Throttler) IsAllowed(userId int64) bool {
	ctx, cancel := platform.ContextTimeout(context.Background())
	defer cancel()

	key := fmt.Sprintf("throttle:click:%d", userId)

	success, err := x.client.SetNX(ctx, key, time.Now().Unix(), x.config.Limit).Result()
	if err != nil {
		x.log.E("Error setting throttle key", tracing.UserId, userId, tracing.InnerError, err)
		return true
	}

	return success
}
