package model

import "time"

type Message struct {
	ID        uint64 `gorm:"primaryKey"`
	MessageID string `gorm:"uniqueIndex;size:36;not null"`
	Sender    string `gorm:"not null;size:32;index:idx_sender"`
	Recipient string `gorm:"not null;size:32;index:idx_recipient"`
	Body      string `gorm:"type:text;not null"`
	IsRead    bool   `gorm:"not null;default:false"`
	ReadAt    *time.Time
	CreatedAt time.Time
}
