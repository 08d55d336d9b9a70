package model

import (
	"time"
)

// Message is a directed edge between two users, addressed by username so
// that system notices (sender "Admin") need no user row. Deletion is a
// status flag shared by both parties, the row is never removed.
type Message struct {
	ID        uint64 `gorm:"primaryKey"`
	Sender    string `gorm:"type:varchar(15);not null;index:idx_sender"`
	Receiver  string `gorm:"type:varchar(15);not null;index:idx_receiver"`
	Content   string `gorm:"not null"`
	IsDeleted bool   `gorm:"type:tinyint(1);not null;default:0"`
	CreatedAt time.Time
}

func (Message) TableName() string {
	return "messages"
}
