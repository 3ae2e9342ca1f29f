package handler

import (
	"errors"
	"net/http"
	"time"

	"Lee_Clips/internal/model"
	"Lee_Clips/internal/service"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	svc *service.VideoService
}

// SaveVideoReq 字段名沿用老前端的西语命名
type SaveVideoReq struct {
	Username     string `json:"usuario"`
	Title        string `json:"titulo"`
	Description  string `json:"descripcion"`
	VideoURL     string `json:"videoUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
	MusicURL     string `json:"musicUrl"`
}

// UserVideoResp 个人页视频行
type UserVideoResp struct {
	VideoID      string    `json:"video_id"`
	Title        string    `json:"titulo"`
	Description  string    `json:"descripcion"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	MusicName    string    `json:"music_name"`
	Likes        int64     `json:"likes"`
	Views        int64     `json:"visualizaciones"`
	Comments     int64     `json:"comentarios"`
	UploadedAt   time.Time `json:"fecha_subida"`
}

func NewVideoHandler(svc *service.VideoService) *VideoHandler {
	return &VideoHandler{svc: svc}
}

// Save 保存视频元数据
func (h *VideoHandler) Save(c *gin.Context) {
	var req SaveVideoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Title == "" || req.VideoURL == "" || req.ThumbnailURL == "" {
		fail(c, http.StatusBadRequest, "usuario, titulo, videoUrl and thumbnailUrl are required")
		return
	}

	videoID, err := h.svc.SaveVideo(req.Username, req.Title, req.Description,
		req.VideoURL, req.ThumbnailURL, req.MusicURL)
	if err != nil {
		if errors.Is(err, service.ErrInvalidVideo) {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		failInternal(c, err)
		return
	}
	ok(c, gin.H{"videoId": videoID})
}

// UserVideos 个人页视频列表
func (h *VideoHandler) UserVideos(c *gin.Context) {
	username := c.Query("user")
	if username == "" {
		fail(c, http.StatusBadRequest, "user is required")
		return
	}

	videos, err := h.svc.UserVideos(username)
	if err != nil {
		failInternal(c, err)
		return
	}
	resp := make([]UserVideoResp, 0, len(videos))
	for _, v := range videos {
		resp = append(resp, toUserVideo(v))
	}
	ok(c, resp)
}

// Feed 信息流。user 不传也行，点赞/关注位全 false
func (h *VideoHandler) Feed(c *gin.Context) {
	viewer := c.Query("user")

	items, err := h.svc.Feed(viewer)
	if err != nil {
		failInternal(c, err)
		return
	}
	ok(c, items)
}

func toUserVideo(v model.Video) UserVideoResp {
	return UserVideoResp{
		VideoID:      v.VideoID,
		Title:        v.Title,
		Description:  v.Description,
		VideoURL:     v.VideoURL,
		ThumbnailURL: v.ThumbnailURL,
		MusicName:    v.MusicName,
		Likes:        v.Likes,
		Views:        v.Views,
		Comments:     v.Comments,
		UploadedAt:   v.CreatedAt,
	}
}
