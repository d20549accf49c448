package repository

import (
	"context"
	"time"
	"toaster/sources/platform"
	"toaster/sources/tracing"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type HealthRepository struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewHealthRepository(db *gorm.DB, redis *redis.Client) *HealthRepository {
	return &HealthRepository{db: db, redis: redis}
}

func (x *HealthRepository) CheckDatabaseHealth(logger *tracing.Logger) error {
	defer tracing.ProfilePoint(logger, "Health check database completed", "repository.health.check.database")()
	ctx, cancel := platform.ContextTimeoutVal(context.Background(), 1*time.Second)
	defer cancel()

	sqlDB, err := x.db.DB()
	if err != nil {
		logger.E("Database health check failed", tracing.InnerError, err)
		return err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		logger.E("Database health check failed", tracing.InnerError, err)
		return err
	}

	return nil
}

func (x *HealthRepository) CheckRedisHealth(logger *tracing.Logger) error {
	defer tracing.ProfilePoint(logger, "Health check redis completed", "repository.health.check.redis")()
	ctx, cancel := platform.ContextTimeoutVal(context.Background(), 1*time.Second)
	defer cancel()

	if err := x.redis.Ping(ctx).Err(); err != nil {
		logger.E("Redis health check failed", tracing.InnerError, err)
		return err
	}

	return nil
}
