package handler

import (
	"errors"
	"fmt"
	"net/http"

	"Lee_Clips/internal/service"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	svc *service.FollowService
}

type followReq struct {
	Follower  string `json:"follower"`
	Following string `json:"following"`
}

func NewFollowHandler(svc *service.FollowService) *FollowHandler {
	return &FollowHandler{svc: svc}
}

// Follow 关注接口
func (h *FollowHandler) Follow(c *gin.Context) {
	var req followReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Follower == "" || req.Following == "" {
		fail(c, http.StatusBadRequest, "follower and following are required")
		return
	}

	if err := h.svc.Follow(c.Request.Context(), req.Follower, req.Following); err != nil {
		if errors.Is(err, service.ErrSelfFollow) || errors.Is(err, service.ErrAlreadyFollowing) {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		failInternal(c, err)
		return
	}
	okMsg(c, fmt.Sprintf("now following @%s", req.Following), nil)
}
