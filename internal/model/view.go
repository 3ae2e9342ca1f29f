package model

import "time"

// View 播放流水，追加写，不做唯一约束（重复播放也计数）
type View struct {
	ID        uint64 `gorm:"primaryKey"`
	VideoID   string `gorm:"not null;size:36;index"`
	Username  string `gorm:"not null;size:32"`
	CreatedAt time.Time
}

func (View) TableName() string {
	return "views"
}
