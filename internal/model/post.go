package model

import (
	"time"
)

type Post struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;index:idx_user_id"`
	Title     string `gorm:"type:varchar(30);not null"`
	Content   string `gorm:"not null"`
	IsDeleted bool   `gorm:"type:tinyint(1);not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User User `gorm:"foreignKey:UserID;references:ID"`

	// Interest labels attached to the post, resolved through
	// interest_posts on fetch.
	Labels []string `gorm:"-"`
}

func (Post) TableName() string {
	return "posts"
}
