package mysql

import (
	"context"

	"Lee_Clips/internal/model"

	"gorm.io/gorm"
)

type LikeRepository struct {
	DB *gorm.DB
}

// Create 点赞。插入和计数同一事务，唯一键冲突原样抛给上层判重，
// 计数失败整体回滚，不会出现行和计数对不上
func (r *LikeRepository) Create(ctx context.Context, videoID, username string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&model.Like{VideoID: videoID, Username: username}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Video{}).
			Where("video_id = ?", videoID).
			UpdateColumn("likes", gorm.Expr("likes + 1")).
			Error; err != nil {
			return err
		}
		return insertOutbox(tx, "like", username, videoID)
	})
}

func (r *LikeRepository) IsLiked(ctx context.Context, videoID, username string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.Like{}).
		Where("video_id = ? AND username = ?", videoID, username).
		Count(&count).Error
	return count > 0, err
}
