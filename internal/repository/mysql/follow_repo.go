package mysql

import (
	"context"
	"encoding/json"
	"time"

	"Lee_Clips/internal/model"

	"gorm.io/gorm"
)

type FollowRepository struct {
	DB *gorm.DB
}

type OutboxRepository struct {
	DB *gorm.DB
}

// Create 建立关注边并成对调两个计数器。(follower, following) 唯一键冲突
// 直接抛给上层，三条语句同一事务，任何一条失败全部回滚
func (r *FollowRepository) Create(ctx context.Context, follower, following string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&model.Follow{Follower: follower, Following: following}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.User{}).
			Where("username = ?", follower).
			UpdateColumn("following", gorm.Expr("following + 1")).
			Error; err != nil {
			return err
		}
		if err := tx.Model(&model.User{}).
			Where("username = ?", following).
			UpdateColumn("followers", gorm.Expr("followers + 1")).
			Error; err != nil {
			return err
		}
		return insertOutbox(tx, "follow", follower, following)
	})
}

func (r *FollowRepository) IsFollowing(ctx context.Context, follower, following string) (bool, error) {
	var n int64
	if err := r.DB.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower = ? AND following = ?", follower, following).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// 插入outbox事件表
func insertOutbox(tx *gorm.DB, event, actor, target string) error {
	payload, _ := json.Marshal(map[string]any{
		"event_time": time.Now().UTC().Format(time.RFC3339Nano),
		"actor":      actor,
		"target":     target,
	})
	ob := &model.EngagementOutbox{
		EventType: event,
		Actor:     actor,
		Target:    target,
		Payload:   string(payload),
		Status:    0,
	}
	return tx.Create(ob).Error
}

// List outbox查询
func (r *OutboxRepository) List(ctx context.Context, batchSize int) ([]model.EngagementOutbox, error) {
	var list []model.EngagementOutbox
	if err := r.DB.WithContext(ctx).
		Where("status = 0").
		Order("id ASC").
		Limit(batchSize).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// RetryUpdate 投递失败，记一次重试
func (r *OutboxRepository) RetryUpdate(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.EngagementOutbox{}).Where("id = ?", id).
		Updates(map[string]any{"status": 2, "retry": gorm.Expr("retry + 1")}).Error
}

// SuccessUpdate 投递成功
func (r *OutboxRepository) SuccessUpdate(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.EngagementOutbox{}).Where("id = ?", id).
		Update("status", 1).Error
}
