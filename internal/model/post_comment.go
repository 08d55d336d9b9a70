package model

import (
	"time"
)

// PostComment rows are immutable after creation.
type PostComment struct {
	ID        uint64 `gorm:"primaryKey"`
	PostID    uint64 `gorm:"not null;index:idx_post_comments_post_id"`
	UserID    uint64 `gorm:"not null"`
	Content   string `gorm:"type:varchar(1000);not null"`
	CreatedAt time.Time

	User User `gorm:"foreignKey:UserID;references:ID"`
}

func (PostComment) TableName() string {
	return "post_comments"
}
