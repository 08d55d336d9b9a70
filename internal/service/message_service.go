package service

import (
	"context"
	"errors"
	"fmt"

	"novepus/internal/dto"
	"novepus/internal/model"
	"novepus/internal/repository"

	"gorm.io/gorm"
)

type MessageService interface {
	Send(ctx context.Context, sender string, input *dto.MessageInput) (*model.Message, error)
	Get(ctx context.Context, id uint64) (*model.Message, error)
	Delete(ctx context.Context, username string, messageID uint64) error
	Inbox(ctx context.Context, username string) ([]*model.Message, error)
	Sent(ctx context.Context, username string) ([]*model.Message, error)
}

type MessageServiceImpl struct {
	messageRepo repository.MessageRepo
	userRepo    repository.UserRepo
}

func NewMessageService(messageRepo repository.MessageRepo, userRepo repository.UserRepo) MessageService {
	return &MessageServiceImpl{messageRepo: messageRepo, userRepo: userRepo}
}

func (s *MessageServiceImpl) Send(ctx context.Context, sender string, input *dto.MessageInput) (*model.Message, error) {
	if err := dto.Validate(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	exists, err := s.userRepo.UserExists(ctx, input.Receiver)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}
	message := &model.Message{
		Sender:   sender,
		Receiver: input.Receiver,
		Content:  input.Content,
	}
	if err := s.messageRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// Get resolves a live message, a deleted one counts as absent.
func (s *MessageServiceImpl) Get(ctx context.Context, id uint64) (*model.Message, error) {
	message, err := s.messageRepo.GetMessageByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	if message.IsDeleted {
		return nil, ErrMessageNotFound
	}
	return message, nil
}

// Delete marks the message deleted. Only the resolved sender or receiver
// may do so, the id alone grants nothing.
func (s *MessageServiceImpl) Delete(ctx context.Context, username string, messageID uint64) error {
	message, err := s.Get(ctx, messageID)
	if err != nil {
		return err
	}
	if message.Sender != username && message.Receiver != username {
		return ErrNotOwner
	}
	return s.messageRepo.SetDeleted(ctx, messageID, true)
}

func (s *MessageServiceImpl) Inbox(ctx context.Context, username string) ([]*model.Message, error) {
	ids, err := s.messageRepo.InboxOf(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.visible(ctx, ids)
}

func (s *MessageServiceImpl) Sent(ctx context.Context, username string) ([]*model.Message, error) {
	ids, err := s.messageRepo.SentOf(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.visible(ctx, ids)
}

func (s *MessageServiceImpl) visible(ctx context.Context, ids []uint64) ([]*model.Message, error) {
	messages, err := s.messageRepo.GetMessagesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	live := make([]*model.Message, 0, len(messages))
	for _, message := range messages {
		if !message.IsDeleted {
			live = append(live, message)
		}
	}
	return live, nil
}
