package handler

import (
	"errors"
	"net/http"

	"Lee_Clips/internal/service"

	"github.com/gin-gonic/gin"
)

type EngagementHandler struct {
	svc *service.EngagementService
}

type LikeReq struct {
	VideoID  string `json:"videoId"`
	Username string `json:"username"`
}

type RecordViewReq struct {
	VideoID  string `json:"videoId"`
	Username string `json:"username"`
}

type AddCommentReq struct {
	VideoID     string `json:"videoId"`
	Username    string `json:"username"`
	CommentText string `json:"commentText"`
}

func NewEngagementHandler(svc *service.EngagementService) *EngagementHandler {
	return &EngagementHandler{svc: svc}
}

// Like 点赞接口，重复点赞 400
func (h *EngagementHandler) Like(c *gin.Context) {
	var req LikeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.VideoID == "" || req.Username == "" {
		fail(c, http.StatusBadRequest, "videoId and username are required")
		return
	}

	if err := h.svc.Like(c.Request.Context(), req.VideoID, req.Username); err != nil {
		if errors.Is(err, service.ErrAlreadyLiked) {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		failInternal(c, err)
		return
	}
	okMsg(c, "like recorded", nil)
}

// RecordView 播放上报，返回新计数
func (h *EngagementHandler) RecordView(c *gin.Context) {
	var req RecordViewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.VideoID == "" || req.Username == "" {
		fail(c, http.StatusBadRequest, "videoId and username are required")
		return
	}

	views, err := h.svc.RecordView(c.Request.Context(), req.VideoID, req.Username)
	if err != nil {
		failInternal(c, err)
		return
	}
	ok(c, gin.H{"newViewCount": views})
}

// Comments 评论列表
func (h *EngagementHandler) Comments(c *gin.Context) {
	videoID := c.Query("videoId")
	if videoID == "" {
		fail(c, http.StatusBadRequest, "videoId is required")
		return
	}

	rows, err := h.svc.ListComments(c.Request.Context(), videoID)
	if err != nil {
		failInternal(c, err)
		return
	}
	ok(c, rows)
}

// AddComment 发评论
func (h *EngagementHandler) AddComment(c *gin.Context) {
	var req AddCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.VideoID == "" || req.Username == "" || req.CommentText == "" {
		fail(c, http.StatusBadRequest, "videoId, username and commentText are required")
		return
	}

	commentID, err := h.svc.AddComment(c.Request.Context(), req.VideoID, req.Username, req.CommentText)
	if err != nil {
		failInternal(c, err)
		return
	}
	ok(c, gin.H{"commentId": commentID})
}

// Stats 视频统计位，走缓存
func (h *EngagementHandler) Stats(c *gin.Context) {
	videoID := c.Query("videoId")
	if videoID == "" {
		fail(c, http.StatusBadRequest, "videoId is required")
		return
	}

	stats, err := h.svc.VideoStats(c.Request.Context(), videoID)
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			fail(c, http.StatusNotFound, err.Error())
			return
		}
		failInternal(c, err)
		return
	}
	ok(c, stats)
}
