package model

import "time"

type User struct {
	ID             uint64 `gorm:"primaryKey"`
	Username       string `gorm:"uniqueIndex;size:32;not null"`
	Password       string `gorm:"size:64;not null"` // sha256 hex
	Plan           string `gorm:"size:16;not null;default:'azul'"`
	ImageURL       string `gorm:"size:500"`
	Likes          int64  `gorm:"not null;default:0"`
	Followers      int64  `gorm:"not null;default:0"`
	Following      int64  `gorm:"not null;default:0"`
	LikesAvailable int64  `gorm:"not null;default:0"`
	LikesEarned    int64  `gorm:"not null;default:0"`
	MoneyEarned    int64  `gorm:"not null;default:0"`
	LastSeenAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
