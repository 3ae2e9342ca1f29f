package model

import "time"

// Like 点赞记录，(video_id, username) 唯一，由数据库兜底防重
type Like struct {
	ID        uint64 `gorm:"primaryKey"`
	VideoID   string `gorm:"not null;size:36;uniqueIndex:uk_video_username"`
	Username  string `gorm:"not null;size:32;uniqueIndex:uk_video_username"`
	CreatedAt time.Time
}

func (Like) TableName() string {
	return "likes"
}
