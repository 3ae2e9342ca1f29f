package mysql

import (
	"context"
	"time"

	"Lee_Clips/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

// CommentRow 返回给前端的评论行，头像用的是落库快照
type CommentRow struct {
	CommentID   string    `json:"comment_id"`
	Username    string    `json:"username"`
	CommentText string    `json:"commentText"`
	CreatedAt   time.Time `json:"timestamp"`
	Edited      bool      `json:"edited"`
	ImageURL    string    `json:"image_url"`
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Model(&model.Video{}).
			Where("video_id = ?", comment.VideoID).
			UpdateColumn("comments", gorm.Expr("comments + 1")).
			Error
	})
}

func (r *CommentRepository) ListByVideo(ctx context.Context, videoID string) ([]CommentRow, error) {
	rows := make([]CommentRow, 0)
	err := r.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Select("comment_id", "username", "comment_text", "created_at", "edited", "image_url").
		Where("video_id = ?", videoID).
		Order("created_at DESC").
		Scan(&rows).Error
	return rows, err
}
