package service

import (
	"errors"

	"Lee_Clips/internal/model"
	"Lee_Clips/internal/repository/mysql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidVideo = errors.New("invalid video fields")

type VideoService struct {
	repo *mysql.VideoRepository
}

func NewVideoService(db *gorm.DB) *VideoService {
	return &VideoService{
		repo: &mysql.VideoRepository{DB: db},
	}
}

// SaveVideo 元数据落库，媒体文件本身不经过后端。ID 应用层生成
func (s *VideoService) SaveVideo(username, title, description, videoURL, thumbnailURL, musicURL string) (string, error) {
	if username == "" || title == "" || videoURL == "" || thumbnailURL == "" {
		return "", ErrInvalidVideo
	}
	video := &model.Video{
		VideoID:      uuid.NewString(),
		Username:     username,
		Title:        title,
		Description:  description,
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
		MusicURL:     musicURL,
		MusicName:    musicURL,
	}
	if err := s.repo.Create(video); err != nil {
		return "", err
	}
	return video.VideoID, nil
}

func (s *VideoService) UserVideos(username string) ([]model.Video, error) {
	return s.repo.ListByUsername(username)
}

func (s *VideoService) Feed(viewer string) ([]mysql.FeedItem, error) {
	return s.repo.Feed(viewer)
}
