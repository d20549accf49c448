package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"
	"toaster/sources/buttons"
	"toaster/sources/platform"
	"toaster/sources/tracing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const payloadKeyPrefix = "button_payload:"

// PayloadsRepository keeps button payloads in Redis, because inline button data
// is limited to 64 bytes and payloads routinely exceed it.
type PayloadsRepository struct {
	redis  *redis.Client
	config *PayloadsConfig
}

func NewPayloadsRepository(redis *redis.Client, config *PayloadsConfig) *PayloadsRepository {
	return &PayloadsRepository{redis: redis, config: config}
}

func payloadKey(token string) string {
	return payloadKeyPrefix + token
}

// Store saves the payload and returns the token to put into the button.
func (x *PayloadsRepository) Store(logger *tracing.Logger, payload buttons.Payload) (string, error) {
	ctx, cancel := platform.ContextTimeoutVal(context.Background(), 5*time.Second)
	defer cancel()

	data, err := json.Marshal(payload)
	if err != nil {
		logger.E("Failed to marshal button payload", tracing.InnerError, err)
		return "", err
	}

	token := uuid.NewString()
	if err := x.redis.Set(ctx, payloadKey(token), data, x.config.TTL).Err(); err != nil {
		logger.E("Failed to store button payload", tracing.InnerError, err)
		return "", err
	}

	return token, nil
}

// Load returns the payload for token, or nil when it expired or never existed.
func (x *PayloadsRepository) Load(logger *tracing.Logger, token string) (*buttons.Payload, error) {
	defer tracing.ProfilePoint(logger, "Payloads load completed", "repository.payloads.load", tracing.PayloadToken, token)()

	if _, err := uuid.Parse(token); err != nil {
		logger.W("Button data is not a payload token", tracing.PayloadToken, token)
		return nil, nil
	}

	ctx, cancel := platform.ContextTimeoutVal(context.Background(), 5*time.Second)
	defer cancel()

	data, err := x.redis.Get(ctx, payloadKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		logger.E("Failed to load button payload", tracing.InnerError, err)
		return nil, err
	}

	var payload buttons.Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		logger.E("Failed to unmarshal button payload", tracing.InnerError, err)
		return nil, err
	}

	return &payload, nil
}
