package model

import (
	"time"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	Username  string `gorm:"type:varchar(15);not null;uniqueIndex:idx_username"`
	Password  string `gorm:"type:varchar(255);not null"`
	Email     string `gorm:"type:varchar(28)"`
	IsOnline  bool   `gorm:"type:tinyint(1);not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Derived views. The repository rebuilds these from the junction
	// tables on every fetch, they are never persisted or cached.
	InterestIDs  []uint64 `gorm:"-"`
	PostIDs      []uint64 `gorm:"-"`
	FollowingIDs []uint64 `gorm:"-"`
	FollowerIDs  []uint64 `gorm:"-"`
}

func (User) TableName() string {
	return "users"
}
