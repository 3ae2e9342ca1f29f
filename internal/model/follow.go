package model

import "time"

type Follow struct {
	ID        uint64 `gorm:"primaryKey"`
	Follower  string `gorm:"not null;size:32;uniqueIndex:uk_follower_following;index:idx_follower"`
	Following string `gorm:"not null;size:32;uniqueIndex:uk_follower_following;index:idx_following"`
	CreatedAt time.Time
}

// TableName sets table name for Follow
func (Follow) TableName() string {
	return "follows"
}

// EngagementOutbox 互动事件监控表
type EngagementOutbox struct {
	ID        uint64 `gorm:"primaryKey"`
	EventType string `gorm:"size:16;not null"` // follow / like
	Actor     string `gorm:"size:32;not null"`
	Target    string `gorm:"size:64;not null"`
	Payload   string `gorm:"type:json;not null"`
	Status    int8   `gorm:"not null;default:0;comment:'0=pending,1=sent,2=failed'"`
	Retry     int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (EngagementOutbox) TableName() string { return "engagement_outbox" }
