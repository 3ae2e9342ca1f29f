package handler

import (
	"errors"
	"net/http"

	"Lee_Clips/internal/model"
	"Lee_Clips/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc *service.UserService
}

// RegisterReq 注册请求体
type RegisterReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	ImageURL string `json:"imageUrl"`
}

type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ProfileResp 公开资料字段
type ProfileResp struct {
	Username  string `json:"username"`
	ImageURL  string `json:"image_url"`
	Plan      string `json:"plan"`
	Likes     int64  `json:"likes"`
	Followers int64  `json:"followers"`
	Following int64  `json:"following"`
}

// LoginResp 登录快照，比公开资料多几个钱包位
type LoginResp struct {
	ProfileResp
	LikesAvailable int64 `json:"likes_disponibles"`
	LikesEarned    int64 `json:"likes_ganados"`
	MoneyEarned    int64 `json:"dinero_ganado"`
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register 注册接口
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" || req.ImageURL == "" {
		fail(c, http.StatusBadRequest, "username, password and imageUrl are required")
		return
	}

	if err := h.svc.Register(req.Username, req.Password, req.ImageURL); err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			fail(c, http.StatusConflict, err.Error())
			return
		}
		failInternal(c, err)
		return
	}
	okMsg(c, "registered", nil)
}

// Login 登录接口
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		fail(c, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			fail(c, http.StatusUnauthorized, err.Error())
			return
		}
		failInternal(c, err)
		return
	}
	ok(c, LoginResp{
		ProfileResp:    toProfile(user),
		LikesAvailable: user.LikesAvailable,
		LikesEarned:    user.LikesEarned,
		MoneyEarned:    user.MoneyEarned,
	})
}

// Profile 公开资料接口
func (h *UserHandler) Profile(c *gin.Context) {
	username := c.Query("user")
	if username == "" {
		fail(c, http.StatusBadRequest, "user is required")
		return
	}

	user, err := h.svc.GetProfile(username)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			fail(c, http.StatusNotFound, err.Error())
			return
		}
		failInternal(c, err)
		return
	}
	ok(c, toProfile(user))
}

func toProfile(u *model.User) ProfileResp {
	return ProfileResp{
		Username:  u.Username,
		ImageURL:  u.ImageURL,
		Plan:      u.Plan,
		Likes:     u.Likes,
		Followers: u.Followers,
		Following: u.Following,
	}
}
