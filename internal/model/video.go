package model

import "time"

type Video struct {
	ID           uint64 `gorm:"primaryKey"`
	VideoID      string `gorm:"uniqueIndex;size:36;not null"`
	Username     string `gorm:"not null;index:idx_video_user_time,priority:1;size:32"`
	Title        string `gorm:"size:200;not null"`
	Description  string `gorm:"type:text"`
	VideoURL     string `gorm:"size:500;not null"`
	ThumbnailURL string `gorm:"size:500;not null"`
	MusicURL     string `gorm:"size:500"`
	MusicName    string `gorm:"size:200"`
	Likes        int64  `gorm:"not null;default:0"`
	Views        int64  `gorm:"not null;default:0"`
	Comments     int64  `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"index:idx_video_user_time,priority:2,sort:desc"`
	UpdatedAt    time.Time
}
