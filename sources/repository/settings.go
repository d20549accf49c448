package repository

import (
	"context"
	"errors"
	"time"
	"toaster/sources/persistence/entities"
	"toaster/sources/platform"
	"toaster/sources/tracing"

	"gorm.io/gorm"
)

var ErrUnknownDestination = errors.New("unknown setting destination")

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (x *SettingsRepository) GetSettings(logger *tracing.Logger, peerID int64, destination string) ([]*entities.ModerationSetting, error) {
	defer tracing.ProfilePoint(logger, "Settings get settings completed", "repository.settings.get.settings", tracing.PeerId, peerID, tracing.Destination, destination)()
	if err := validateDestination(destination); err != nil {
		return nil, err
	}

	ctx, cancel := platform.ContextTimeoutVal(context.Background(), 20*time.Second)
	defer cancel()

	var settings []*entities.ModerationSetting
	err := x.db.WithContext(ctx).
		Where("conv_id = ? AND setting_destination = ?", peerID, destination).
		Find(&settings).Error
	if err != nil {
		logger.E("Failed to get moderation settings", tracing.InnerError, err)
		return nil, err
	}

	return settings, nil
}

// UpdateSettingStatus overwrites the status of a pre-seeded row. Missing rows are left alone.
func (x *SettingsRepository) UpdateSettingStatus(logger *tracing.Logger, peerID int64, name string, destination string, status int) error {
	defer tracing.ProfilePoint(logger, "Settings update status completed", "repository.settings.update.status", tracing.PeerId, peerID, tracing.SettingName, name)()
	if err := validateDestination(destination); err != nil {
		return err
	}

	ctx, cancel := platform.ContextTimeoutVal(context.Background(), 20*time.Second)
	defer cancel()

	result := x.db.WithContext(ctx).
		Model(&entities.ModerationSetting{}).
		Where("conv_id = ? AND setting_name = ? AND setting_destination = ?", peerID, name, destination).
		Update("setting_status", status)
	if result.Error != nil {
		logger.E("Failed to update moderation setting", tracing.InnerError, result.Error)
		return result.Error
	}

	if result.RowsAffected == 0 {
		logger.W("Moderation setting row is missing", tracing.SettingName, name, tracing.Destination, destination)
		return nil
	}

	logger.I("Moderation setting updated", tracing.SettingName, name, "status", status)
	return nil
}

func validateDestination(destination string) error {
	switch destination {
	case entities.DestinationSystem, entities.DestinationFilter:
		return nil
	default:
		return ErrUnknownDestination
	}
}
