package mysql

import (
	"context"

	"Lee_Clips/internal/model"

	"gorm.io/gorm"
)

type ViewRepository struct {
	DB *gorm.DB
}

// Create 记录一次播放并返回自增后的计数。不判重，同一用户反复看反复计。
// 视频不存在时流水照常落库、计数返回 0（历史行为）
func (r *ViewRepository) Create(ctx context.Context, videoID, username string) (int64, error) {
	var views int64
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&model.View{VideoID: videoID, Username: username}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Video{}).
			Where("video_id = ?", videoID).
			UpdateColumn("views", gorm.Expr("views + 1")).
			Error; err != nil {
			return err
		}
		return tx.Model(&model.Video{}).
			Select("views").
			Where("video_id = ?", videoID).
			Scan(&views).Error
	})
	return views, err
}
