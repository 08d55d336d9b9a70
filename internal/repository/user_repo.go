package repository

import (
	"context"
	"novepus/internal/model"

	"gorm.io/gorm"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *model.User, interests []string) error
	UserExists(ctx context.Context, username string) (bool, error)
	GetUserByName(ctx context.Context, username string) (*model.User, error)
	GetUserByID(ctx context.Context, id uint64) (*model.User, error)
	UpdatePassword(ctx context.Context, username string, passwordHash string) error
	UpdateEmail(ctx context.Context, username string, email string) error
	UpdateOnline(ctx context.Context, username string, online bool) error
	AllUserIDs(ctx context.Context) ([]uint64, error)
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

// CreateUser inserts the user row and any declared interests in one
// transaction. Username uniqueness is enforced by the index, a duplicate
// surfaces as gorm.ErrDuplicatedKey.
func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User, interests []string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		for _, label := range interests {
			interestID, err := upsertInterest(tx, label)
			if err != nil {
				return err
			}
			junction := &model.InterestUser{InterestID: interestID, UserID: user.ID}
			if err := tx.Where(junction).FirstOrCreate(junction).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *UserRepoImpl) UserExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.User{}).
		Where("username = ?", username).
		Count(&count).Error
	return count > 0, err
}

func (s *UserRepoImpl) GetUserByName(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{}
	err := s.db.WithContext(ctx).Where("username = ?", username).First(user).Error
	if err != nil {
		return nil, err
	}
	if err := s.assembleViews(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserRepoImpl) GetUserByID(ctx context.Context, id uint64) (*model.User, error) {
	user := &model.User{}
	err := s.db.WithContext(ctx).First(user, id).Error
	if err != nil {
		return nil, err
	}
	if err := s.assembleViews(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// assembleViews rebuilds the four derived id lists from the junction
// tables. Deleted posts are excluded from the authored list.
func (s *UserRepoImpl) assembleViews(ctx context.Context, user *model.User) error {
	err := s.db.WithContext(ctx).Model(&model.InterestUser{}).
		Where("user_id = ?", user.ID).
		Pluck("interest_id", &user.InterestIDs).Error
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Model(&model.Post{}).
		Where("user_id = ? AND is_deleted = ?", user.ID, false).
		Order("id").
		Pluck("id", &user.PostIDs).Error
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Model(&model.UserFollow{}).
		Where("follower_id = ?", user.ID).
		Pluck("followee_id", &user.FollowingIDs).Error
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Model(&model.UserFollow{}).
		Where("followee_id = ?", user.ID).
		Pluck("follower_id", &user.FollowerIDs).Error
}

func (s *UserRepoImpl) UpdatePassword(ctx context.Context, username string, passwordHash string) error {
	return s.db.WithContext(ctx).Model(&model.User{}).
		Where("username = ?", username).
		Update("password", passwordHash).Error
}

func (s *UserRepoImpl) UpdateEmail(ctx context.Context, username string, email string) error {
	return s.db.WithContext(ctx).Model(&model.User{}).
		Where("username = ?", username).
		Update("email", email).Error
}

func (s *UserRepoImpl) UpdateOnline(ctx context.Context, username string, online bool) error {
	return s.db.WithContext(ctx).Model(&model.User{}).
		Where("username = ?", username).
		Update("is_online", online).Error
}

func (s *UserRepoImpl) AllUserIDs(ctx context.Context) ([]uint64, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.User{}).
		Order("id").
		Pluck("id", &ids).Error
	return ids, err
}
