package service

import (
	"context"
	"errors"
	"fmt"

	"novepus/internal/dto"
	"novepus/internal/model"
	"novepus/internal/pkg/security"
	"novepus/internal/repository"

	"gorm.io/gorm"
)

const adminSender = "Admin"

type UserService interface {
	Register(ctx context.Context, input *dto.RegisterInput) (*model.User, error)
	Exists(ctx context.Context, username string) (bool, error)
	Profile(ctx context.Context, username string) (*dto.UserProfile, error)
	ProfileByID(ctx context.Context, id uint64) (*dto.UserProfile, error)
	AllUsers(ctx context.Context) ([]*model.User, error)
	ChangePassword(ctx context.Context, username string, input *dto.PasswordChangeInput) error
	ChangeEmail(ctx context.Context, username string, email string) error
	AddInterest(ctx context.Context, username string, label string) error
}

type UserServiceImpl struct {
	userRepo     repository.UserRepo
	interestRepo repository.InterestRepo
	messageRepo  repository.MessageRepo
}

func NewUserService(userRepo repository.UserRepo, interestRepo repository.InterestRepo, messageRepo repository.MessageRepo) UserService {
	return &UserServiceImpl{
		userRepo:     userRepo,
		interestRepo: interestRepo,
		messageRepo:  messageRepo,
	}
}

// Register creates the user row. Name uniqueness is left to the storage
// layer so two concurrent registrations cannot both pass a prior
// existence check.
func (s *UserServiceImpl) Register(ctx context.Context, input *dto.RegisterInput) (*model.User, error) {
	if err := dto.Validate(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	passwordHash, err := security.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username: input.Username,
		Password: passwordHash,
		Email:    input.Email,
	}
	if err := s.userRepo.CreateUser(ctx, user, nil); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *UserServiceImpl) Exists(ctx context.Context, username string) (bool, error) {
	return s.userRepo.UserExists(ctx, username)
}

func (s *UserServiceImpl) Profile(ctx context.Context, username string) (*dto.UserProfile, error) {
	user, err := s.userRepo.GetUserByName(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.withInterests(ctx, user)
}

func (s *UserServiceImpl) ProfileByID(ctx context.Context, id uint64) (*dto.UserProfile, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.withInterests(ctx, user)
}

func (s *UserServiceImpl) withInterests(ctx context.Context, user *model.User) (*dto.UserProfile, error) {
	interests, err := s.interestRepo.InterestsOfUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.UserProfile{User: user, Interests: interests}, nil
}

func (s *UserServiceImpl) AllUsers(ctx context.Context) ([]*model.User, error) {
	ids, err := s.userRepo.AllUserIDs(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]*model.User, 0, len(ids))
	for _, id := range ids {
		user, err := s.userRepo.GetUserByID(ctx, id)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// ChangePassword requires the old password to match and drops an Admin
// notice into the user's mailbox afterwards.
func (s *UserServiceImpl) ChangePassword(ctx context.Context, username string, input *dto.PasswordChangeInput) error {
	if err := dto.Validate(input); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	user, err := s.userRepo.GetUserByName(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if err := security.CheckPasswordHash(input.OldPassword, user.Password); err != nil {
		return ErrWrongPassword
	}
	passwordHash, err := security.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, username, passwordHash); err != nil {
		return err
	}
	return s.messageRepo.CreateMessage(ctx, &model.Message{
		Sender:   adminSender,
		Receiver: username,
		Content:  "Reset Password.",
	})
}

func (s *UserServiceImpl) ChangeEmail(ctx context.Context, username string, email string) error {
	if len(email) > 28 {
		return fmt.Errorf("%w: email oversize", ErrInvalidInput)
	}
	if err := s.userRepo.UpdateEmail(ctx, username, email); err != nil {
		return err
	}
	return s.messageRepo.CreateMessage(ctx, &model.Message{
		Sender:   adminSender,
		Receiver: username,
		Content:  "Reset Email.",
	})
}

func (s *UserServiceImpl) AddInterest(ctx context.Context, username string, label string) error {
	user, err := s.userRepo.GetUserByName(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.interestRepo.AddUserInterest(ctx, user.ID, label)
}
