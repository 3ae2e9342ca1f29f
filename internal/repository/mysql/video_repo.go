package mysql

import (
	"Lee_Clips/internal/model"

	"gorm.io/gorm"
)

type VideoRepository struct {
	DB *gorm.DB
}

// FeedItem 信息流一行，字段名跟老前端对齐
type FeedItem struct {
	VideoID      string `json:"video_id"`
	Username     string `json:"user"`
	Title        string `json:"titulo"`
	Description  string `json:"description"`
	VideoURL     string `json:"video_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	MusicName    string `json:"music"`
	Likes        int64  `json:"likes"`
	Views        int64  `json:"visualizaciones"`
	Comments     int64  `json:"comments"`
	ImageURL     string `json:"profile_img"`
	IsLiked      bool   `json:"is_liked"`
	IsFollowing  bool   `json:"is_following"`
}

func (r *VideoRepository) Create(video *model.Video) error {
	return r.DB.Create(video).Error
}

func (r *VideoRepository) FindByVideoID(videoID string) (*model.Video, error) {
	var video model.Video
	err := r.DB.Where("video_id = ?", videoID).First(&video).Error
	return &video, err
}

func (r *VideoRepository) ListByUsername(username string) ([]model.Video, error) {
	var list []model.Video
	err := r.DB.
		Where("username = ?", username).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// Feed 全量信息流。viewer 可为空串，两个 LEFT JOIN 都落空，布尔位全 false
func (r *VideoRepository) Feed(viewer string) ([]FeedItem, error) {
	items := make([]FeedItem, 0)
	err := r.DB.Raw(`
		SELECT v.video_id, v.username, v.title, v.description,
		       v.video_url, v.thumbnail_url, v.music_name,
		       v.likes, v.views, v.comments,
		       u.image_url,
		       CASE WHEN l.username IS NOT NULL THEN 1 ELSE 0 END AS is_liked,
		       CASE WHEN f.follower IS NOT NULL THEN 1 ELSE 0 END AS is_following
		FROM videos v
		JOIN users u ON v.username = u.username
		LEFT JOIN likes l ON v.video_id = l.video_id AND l.username = ?
		LEFT JOIN follows f ON v.username = f.following AND f.follower = ?
		ORDER BY v.created_at DESC`,
		viewer, viewer,
	).Scan(&items).Error
	return items, err
}
