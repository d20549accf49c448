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

type MarksRepository struct {
	db *gorm.DB
}

func NewMarksRepository(db *gorm.DB) *MarksRepository {
	return &MarksRepository{db: db}
}

// GetMark returns the mark of the conversation, or nil when it is not marked.
func (x *MarksRepository) GetMark(logger *tracing.Logger, peerID int64) (*entities.ConversationMark, error) {
	defer tracing.ProfilePoint(logger, "Marks get mark completed", "repository.marks.get.mark", tracing.PeerId, peerID)()
	ctx, cancel := platform.ContextTimeoutVal(context.Background(), 20*time.Second)
	defer cancel()

	var mark entities.ConversationMark
	err := x.db.WithContext(ctx).Where("conv_id = ?", peerID).Take(&mark).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		logger.E("Failed to get conversation mark", tracing.InnerError, err)
		return nil, err
	}

	return &mark, nil
}

// CreateMark inserts the mark. A concurrent insert for the same conversation wins silently.
func (x *MarksRepository) CreateMark(logger *tracing.Logger, mark *entities.ConversationMark) error {
	defer tracing.ProfilePoint(logger, "Marks create mark completed", "repository.marks.create.mark", tracing.PeerId, mark.ConvID)()
	ctx, cancel := platform.ContextTimeoutVal(context.Background(), 20*time.Second)
	defer cancel()

	err := x.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(mark).Error
	if err != nil {
		logger.E("Failed to create conversation mark", tracing.InnerError, err)
		return err
	}

	logger.I("Conversation mark created", "mark", mark.ConvMark)
	return nil
}

func (x *MarksRepository) UpdateMarkName(logger *tracing.Logger, peerID int64, name string) error {
	defer tracing.ProfilePoint(logger, "Marks update mark name completed", "repository.marks.update.mark.name", tracing.PeerId, peerID)()
	ctx, cancel := platform.ContextTimeoutVal(context.Background(), 20*time.Second)
	defer cancel()

	err := x.db.WithContext(ctx).
		Model(&entities.ConversationMark{}).
		Where("conv_id = ?", peerID).
		Update("conv_name", name).Error
	if err != nil {
		logger.E("Failed to update conversation mark", tracing.InnerError, err)
		return err
	}

	logger.I("Conversation mark name updated")
	return nil
}

func (x *MarksRepository) DeleteMark(logger *tracing.Logger, peerID int64) error {
	defer tracing.ProfilePoint(logger, "Marks delete mark completed", "repository.marks.delete.mark", tracing.PeerId, peerID)()
	ctx, cancel := platform.ContextTimeoutVal(context.Background(), 20*time.Second)
	defer cancel()

	err := x.db.WithContext(ctx).Where("conv_id = ?", peerID).Delete(&entities.ConversationMark{}).Error
	if err != nil {
		logger.E("Failed to delete conversation mark", tracing.InnerError, err)
		return err
	}

	logger.I("Conversation mark deleted")
	return nil
}
