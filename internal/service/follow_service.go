package service

import (
	"context"
	"errors"

	"novepus/internal/dto"
	"novepus/internal/model"
	"novepus/internal/repository"

	"gorm.io/gorm"
)

type FollowService interface {
	Follow(ctx context.Context, follower string, followee string) error
	Unfollow(ctx context.Context, follower string, followee string) error
	IsFollowing(ctx context.Context, follower string, followee string) (bool, error)
	Graph(ctx context.Context, username string) (*dto.FollowGraph, error)
}

type FollowServiceImpl struct {
	followRepo repository.FollowRepo
	userRepo   repository.UserRepo
}

func NewFollowService(followRepo repository.FollowRepo, userRepo repository.UserRepo) FollowService {
	return &FollowServiceImpl{followRepo: followRepo, userRepo: userRepo}
}

func (s *FollowServiceImpl) resolvePair(ctx context.Context, follower string, followee string) (uint64, uint64, error) {
	followerUser, err := s.userRepo.GetUserByName(ctx, follower)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, ErrUserNotFound
		}
		return 0, 0, err
	}
	followeeUser, err := s.userRepo.GetUserByName(ctx, followee)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, ErrUserNotFound
		}
		return 0, 0, err
	}
	return followerUser.ID, followeeUser.ID, nil
}

// Follow inserts the pair and lets the composite key catch duplicates, so
// two concurrent sessions cannot both succeed.
func (s *FollowServiceImpl) Follow(ctx context.Context, follower string, followee string) error {
	if follower == followee {
		return ErrSelfFollow
	}
	followerID, followeeID, err := s.resolvePair(ctx, follower, followee)
	if err != nil {
		return err
	}
	if err := s.followRepo.Follow(ctx, followerID, followeeID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyFollowing
		}
		return err
	}
	return nil
}

func (s *FollowServiceImpl) Unfollow(ctx context.Context, follower string, followee string) error {
	followerID, followeeID, err := s.resolvePair(ctx, follower, followee)
	if err != nil {
		return err
	}
	removed, err := s.followRepo.Unfollow(ctx, followerID, followeeID)
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrNotFollowing
	}
	return nil
}

func (s *FollowServiceImpl) IsFollowing(ctx context.Context, follower string, followee string) (bool, error) {
	followerID, followeeID, err := s.resolvePair(ctx, follower, followee)
	if err != nil {
		return false, err
	}
	return s.followRepo.IsFollowing(ctx, followerID, followeeID)
}

// Graph resolves both sides of the follow relation to full users for
// display.
func (s *FollowServiceImpl) Graph(ctx context.Context, username string) (*dto.FollowGraph, error) {
	user, err := s.userRepo.GetUserByName(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	graph := &dto.FollowGraph{
		Followings: make([]*model.User, 0, len(user.FollowingIDs)),
		Followers:  make([]*model.User, 0, len(user.FollowerIDs)),
	}
	for _, id := range user.FollowingIDs {
		followee, err := s.userRepo.GetUserByID(ctx, id)
		if err != nil {
			return nil, err
		}
		graph.Followings = append(graph.Followings, followee)
	}
	for _, id := range user.FollowerIDs {
		follower, err := s.userRepo.GetUserByID(ctx, id)
		if err != nil {
			return nil, err
		}
		graph.Followers = append(graph.Followers, follower)
	}
	return graph, nil
}
