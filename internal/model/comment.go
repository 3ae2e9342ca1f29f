package model

import "time"

// Comment 评论。ImageURL 是发表时刻的头像快照，之后改头像不回填历史评论
type Comment struct {
	ID          uint64 `gorm:"primaryKey"`
	CommentID   string `gorm:"uniqueIndex;size:36;not null"`
	VideoID     string `gorm:"not null;size:36;index"`
	Username    string `gorm:"not null;size:32"`
	CommentText string `gorm:"type:text;not null"`
	Edited      bool   `gorm:"not null;default:false"`
	ImageURL    string `gorm:"size:500"`
	CreatedAt   time.Time
}
