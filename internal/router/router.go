package router

import (
	"Lee_Clips/internal/handler"
	"Lee_Clips/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// InitRouter 老前端的路由是平铺在 /api 下的，保持不变
func InitRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	user := handler.NewUserHandler(service.NewUserService(db))
	video := handler.NewVideoHandler(service.NewVideoService(db))
	engagement := handler.NewEngagementHandler(service.NewEngagementService(db))
	follow := handler.NewFollowHandler(service.NewFollowService(db))
	message := handler.NewMessageHandler(service.NewMessageService(db))

	api := r.Group("/api")
	{
		// 账号
		api.POST("/register", user.Register)
		api.POST("/login", user.Login)
		api.GET("/user-profile", user.Profile)

		// 视频
		api.GET("/user-videos", video.UserVideos)
		api.GET("/all-videos", video.Feed)
		api.POST("/save-video", video.Save)

		// 互动
		api.POST("/like-video", engagement.Like)
		api.POST("/record-view", engagement.RecordView)
		api.GET("/comments", engagement.Comments)
		api.POST("/add-comment", engagement.AddComment)
		api.GET("/video-stats", engagement.Stats)
		api.POST("/follow-user", follow.Follow)

		// 私信
		api.GET("/conversations", message.Conversations)
		api.GET("/messages", message.History)
		api.POST("/send-message", message.Send)
		api.POST("/mark-as-read", message.MarkAsRead)
	}

	return r
}
