package model

import "time"

type UserFollow struct {
	FollowerID uint64    `gorm:"primaryKey"`
	FolloweeID uint64    `gorm:"primaryKey;index:idx_followee_id"`
	CreatedAt  time.Time
}

func (UserFollow) TableName() string {
	return "user_follows"
}
