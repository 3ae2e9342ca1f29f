package service

import (
	"context"
	"errors"

	"Lee_Clips/internal/model"
	"Lee_Clips/internal/repository/mysql"
	"Lee_Clips/internal/repository/redis"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAlreadyLiked  = errors.New("video already liked")
	ErrVideoNotFound = errors.New("video not found")
)

type EngagementService struct {
	likes    *mysql.LikeRepository
	views    *mysql.ViewRepository
	comments *mysql.CommentRepository
	users    *mysql.UserRepository
	videos   *mysql.VideoRepository
	cache    *redis.StatsRepository
}

func NewEngagementService(db *gorm.DB) *EngagementService {
	return &EngagementService{
		likes:    &mysql.LikeRepository{DB: db},
		views:    &mysql.ViewRepository{DB: db},
		comments: &mysql.CommentRepository{DB: db},
		users:    &mysql.UserRepository{DB: db},
		videos:   &mysql.VideoRepository{DB: db},
		cache:    redis.NewStatsRepository(),
	}
}

// Like 同一用户对同一视频只能点一次，重复点报冲突、计数不动
func (s *EngagementService) Like(ctx context.Context, videoID, username string) error {
	if err := s.likes.Create(ctx, videoID, username); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyLiked
		}
		return err
	}
	s.cache.Invalidate(ctx, videoID)
	return nil
}

// RecordView 每次调用都 +1，返回新值
func (s *EngagementService) RecordView(ctx context.Context, videoID, username string) (int64, error) {
	views, err := s.views.Create(ctx, videoID, username)
	if err != nil {
		return 0, err
	}
	s.cache.Invalidate(ctx, videoID)
	return views, nil
}

// AddComment 评论行里固化发表时刻的头像，用户不存在就存空串（历史行为）
func (s *EngagementService) AddComment(ctx context.Context, videoID, username, text string) (string, error) {
	avatar, err := s.users.AvatarOf(username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}
	comment := &model.Comment{
		CommentID:   uuid.NewString(),
		VideoID:     videoID,
		Username:    username,
		CommentText: text,
		ImageURL:    avatar,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return "", err
	}
	s.cache.Invalidate(ctx, videoID)
	return comment.CommentID, nil
}

func (s *EngagementService) ListComments(ctx context.Context, videoID string) ([]mysql.CommentRow, error) {
	return s.comments.ListByVideo(ctx, videoID)
}

// VideoStats 统计位读缓存，miss 回源视频表再回填
func (s *EngagementService) VideoStats(ctx context.Context, videoID string) (*redis.VideoStats, error) {
	if stats, err := s.cache.Get(ctx, videoID); err == nil {
		return stats, nil
	}
	video, err := s.videos.FindByVideoID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	stats := &redis.VideoStats{
		Likes:    video.Likes,
		Views:    video.Views,
		Comments: video.Comments,
	}
	s.cache.Set(ctx, videoID, stats)
	return stats, nil
}
