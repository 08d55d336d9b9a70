package repository

import (
	"context"
	"errors"

	"novepus/internal/model"

	"gorm.io/gorm"
)

type InterestRepo interface {
	AddUserInterest(ctx context.Context, userID uint64, label string) error
	InterestsOfUser(ctx context.Context, userID uint64) ([]string, error)
	LabelsOfPost(ctx context.Context, postID uint64) ([]string, error)
}

type InterestRepoImpl struct {
	db *gorm.DB
}

func NewInterestRepo(db *gorm.DB) InterestRepo {
	return &InterestRepoImpl{db: db}
}

// upsertInterest resolves a label against the catalog, creating the row
// when absent, and returns its id. Safe to race: losers of the insert
// re-read the winner's row.
func upsertInterest(tx *gorm.DB, label string) (uint64, error) {
	var interest model.Interest
	err := tx.Where("label = ?", label).First(&interest).Error
	if err == nil {
		return interest.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	interest = model.Interest{Label: label}
	if err := tx.Create(&interest).Error; err == nil {
		return interest.ID, nil
	}
	// Lost the race to a concurrent insert, the row exists now.
	if err := tx.Where("label = ?", label).First(&interest).Error; err != nil {
		return 0, err
	}
	return interest.ID, nil
}

func (s *InterestRepoImpl) AddUserInterest(ctx context.Context, userID uint64, label string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		interestID, err := upsertInterest(tx, label)
		if err != nil {
			return err
		}
		junction := &model.InterestUser{InterestID: interestID, UserID: userID}
		return tx.Where(junction).FirstOrCreate(junction).Error
	})
}

func (s *InterestRepoImpl) InterestsOfUser(ctx context.Context, userID uint64) ([]string, error) {
	var labels []string
	err := s.db.WithContext(ctx).Table("interest_users").
		Select("interests.label").
		Joins("JOIN interests ON interests.id = interest_users.interest_id").
		Where("interest_users.user_id = ?", userID).
		Order("interests.id").
		Scan(&labels).Error
	return labels, err
}

func (s *InterestRepoImpl) LabelsOfPost(ctx context.Context, postID uint64) ([]string, error) {
	var labels []string
	err := s.db.WithContext(ctx).Table("interest_posts").
		Select("interests.label").
		Joins("JOIN interests ON interests.id = interest_posts.interest_id").
		Where("interest_posts.post_id = ?", postID).
		Order("interests.id").
		Scan(&labels).Error
	return labels, err
}
