package model

import (
	"time"
)

type PostLike struct {
	UserID    uint64    `gorm:"primaryKey"`
	PostID    uint64    `gorm:"primaryKey;index:idx_post_likes_post_id"`
	CreatedAt time.Time
}

func (PostLike) TableName() string {
	return "post_likes"
}
