package repository

import (
	"context"
	"errors"
	"time"
	"toaster/sources/persistence/entities"
	"toaster/sources/platform"
	"toaster/sources/tracing"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PermissionsRepository struct {
	db *gorm.DB
}

func NewPermissionsRepository(db *gorm.DB) *PermissionsRepository {
	return &PermissionsRepository{db: db}
}

// GetPermission returns the stored role of the user, or nil for baseline users.
func (x *PermissionsRepository) GetPermission(logger *tracing.Logger, userID int64) (*entities.UserPermission, error) {
	defer tracing.ProfilePoint(logger, "Permissions get permission completed", "repository.permissions.get.permission", tracing.TargetId, userID)()
	ctx, cancel := platform.ContextTimeoutVal(context.Background(), 20*time.Second)
	defer cancel()

	var permission entities.UserPermission
	err := x.db.WithContext(ctx).Where("user_id = ?", userID).Take(&permission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		logger.E("Failed to get user permission", tracing.InnerError, err)
		return nil, err
	}

	return &permission, nil
}

// UpsertPermission inserts the row or overwrites the existing one for the same user.
func (x *PermissionsRepository) UpsertPermission(logger *tracing.Logger, permission *entities.UserPermission) error {
	defer tracing.ProfilePoint(logger, "Permissions upsert permission completed", "repository.permissions.upsert.permission", tracing.TargetId, permission.UserID)()
	ctx, cancel := platform.ContextTimeoutVal(context.Background(), 20*time.Second)
	defer cancel()

	err := x.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"conv_id", "user_name", "user_permission"}),
	}).Create(permission).Error
	if err != nil {
		logger.E("Failed to upsert user permission", tracing.InnerError, err)
		return err
	}

	logger.I("User permission stored", tracing.Permission, permission.UserPermission)
	return nil
}

func (x *PermissionsRepository) DeletePermission(logger *tracing.Logger, userID int64) error {
	defer tracing.ProfilePoint(logger, "Permissions delete permission completed", "repository.permissions.delete.permission", tracing.TargetId, userID)()
	ctx, cancel := platform.ContextTimeoutVal(context.Background(), 20*time.Second)
	defer cancel()

	err := x.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entities.UserPermission{}).Error
	if err != nil {
		logger.E("Failed to delete user permission", tracing.InnerError, err)
		return err
	}

	logger.I("User permission deleted")
	return nil
}
