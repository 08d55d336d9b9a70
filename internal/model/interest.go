package model

import (
	"time"
)

type Interest struct {
	ID        uint64 `gorm:"primaryKey"`
	Label     string `gorm:"type:varchar(50);not null;uniqueIndex:idx_interest_label"`
	CreatedAt time.Time
}

func (Interest) TableName() string {
	return "interests"
}

type InterestUser struct {
	InterestID uint64 `gorm:"primaryKey"`
	UserID     uint64 `gorm:"primaryKey;index:idx_interest_users_user_id"`
}

func (InterestUser) TableName() string {
	return "interest_users"
}

type InterestPost struct {
	InterestID uint64 `gorm:"primaryKey"`
	PostID     uint64 `gorm:"primaryKey;index:idx_interest_posts_post_id"`
}

func (InterestPost) TableName() string {
	return "interest_posts"
}
