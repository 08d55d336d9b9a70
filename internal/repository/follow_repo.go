package repository

import (
	"context"

	"novepus/internal/model"

	"gorm.io/gorm"
)

type FollowRepo interface {
	Follow(ctx context.Context, followerID uint64, followeeID uint64) error
	Unfollow(ctx context.Context, followerID uint64, followeeID uint64) (int64, error)
	IsFollowing(ctx context.Context, followerID uint64, followeeID uint64) (bool, error)
	FollowingIDsOf(ctx context.Context, userID uint64) ([]uint64, error)
	FollowerIDsOf(ctx context.Context, userID uint64) ([]uint64, error)
}

type FollowRepoImpl struct {
	db *gorm.DB
}

func NewFollowRepo(db *gorm.DB) FollowRepo {
	return &FollowRepoImpl{db: db}
}

// Follow relies on the composite primary key for duplicate detection so
// concurrent sessions cannot insert the pair twice. A duplicate surfaces
// as gorm.ErrDuplicatedKey.
func (s *FollowRepoImpl) Follow(ctx context.Context, followerID uint64, followeeID uint64) error {
	return s.db.WithContext(ctx).
		Create(&model.UserFollow{FollowerID: followerID, FolloweeID: followeeID}).Error
}

// Unfollow reports the number of rows removed, zero means the pair never
// existed.
func (s *FollowRepoImpl) Unfollow(ctx context.Context, followerID uint64, followeeID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&model.UserFollow{})
	return result.RowsAffected, result.Error
}

func (s *FollowRepoImpl) IsFollowing(ctx context.Context, followerID uint64, followeeID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.UserFollow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	return count > 0, err
}

func (s *FollowRepoImpl) FollowingIDsOf(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.UserFollow{}).
		Where("follower_id = ?", userID).
		Pluck("followee_id", &ids).Error
	return ids, err
}

func (s *FollowRepoImpl) FollowerIDsOf(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.UserFollow{}).
		Where("followee_id = ?", userID).
		Pluck("follower_id", &ids).Error
	return ids, err
}
