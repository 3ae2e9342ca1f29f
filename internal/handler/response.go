package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// envelope 统一响应壳 {success, message?, data?}
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

func okMsg(c *gin.Context, msg string, data any) {
	c.JSON(http.StatusOK, envelope{Success: true, Message: msg, Data: data})
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, envelope{Success: false, Message: msg})
}

// failInternal 500 给客户端的是固定文案，细节只进日志
func failInternal(c *gin.Context, err error) {
	log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	c.JSON(http.StatusInternalServerError, envelope{Success: false, Message: "internal server error"})
}
