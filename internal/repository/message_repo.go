package repository

import (
	"context"

	"novepus/internal/model"

	"gorm.io/gorm"
)

type MessageRepo interface {
	CreateMessage(ctx context.Context, message *model.Message) error
	GetMessageByID(ctx context.Context, id uint64) (*model.Message, error)
	GetMessagesByIDs(ctx context.Context, ids []uint64) ([]*model.Message, error)
	SetDeleted(ctx context.Context, id uint64, deleted bool) error
	InboxOf(ctx context.Context, username string) ([]uint64, error)
	SentOf(ctx context.Context, username string) ([]uint64, error)
}

type MessageRepoImpl struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) MessageRepo {
	return &MessageRepoImpl{db: db}
}

func (s *MessageRepoImpl) CreateMessage(ctx context.Context, message *model.Message) error {
	return s.db.WithContext(ctx).Create(message).Error
}

// GetMessageByID resolves deleted messages as well, callers inspect
// IsDeleted themselves.
func (s *MessageRepoImpl) GetMessageByID(ctx context.Context, id uint64) (*model.Message, error) {
	var message model.Message
	err := s.db.WithContext(ctx).First(&message, id).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (s *MessageRepoImpl) GetMessagesByIDs(ctx context.Context, ids []uint64) ([]*model.Message, error) {
	if len(ids) == 0 {
		return []*model.Message{}, nil
	}
	var messages []*model.Message
	err := s.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id").
		Find(&messages).Error
	return messages, err
}

func (s *MessageRepoImpl) SetDeleted(ctx context.Context, id uint64, deleted bool) error {
	return s.db.WithContext(ctx).Model(&model.Message{}).
		Where("id = ?", id).
		Update("is_deleted", deleted).Error
}

// InboxOf returns every message id addressed to the user, deleted ones
// included. Rendering filters on the flag.
func (s *MessageRepoImpl) InboxOf(ctx context.Context, username string) ([]uint64, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.Message{}).
		Where("receiver = ?", username).
		Order("id").
		Pluck("id", &ids).Error
	return ids, err
}

func (s *MessageRepoImpl) SentOf(ctx context.Context, username string) ([]uint64, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.Message{}).
		Where("sender = ?", username).
		Order("id").
		Pluck("id", &ids).Error
	return ids, err
}
