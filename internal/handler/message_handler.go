package handler

import (
	"net/http"
	"time"

	"Lee_Clips/internal/model"
	"Lee_Clips/internal/service"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	svc *service.MessageService
}

type sendMessageReq struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Message string `json:"message"`
}

type markAsReadReq struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// MessageResp 聊天记录一行
type MessageResp struct {
	MessageID string     `json:"message_id"`
	From      string     `json:"from"`
	To        string     `json:"to"`
	Message   string     `json:"message"`
	Read      bool       `json:"read"`
	Timestamp time.Time  `json:"timestamp"`
	ReadAt    *time.Time `json:"read_at"`
}

func NewMessageHandler(svc *service.MessageService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

// Send 发私信
func (h *MessageHandler) Send(c *gin.Context) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.From == "" || req.To == "" || req.Message == "" {
		fail(c, http.StatusBadRequest, "from, to and message are required")
		return
	}

	messageID, err := h.svc.Send(c.Request.Context(), req.From, req.To, req.Message)
	if err != nil {
		failInternal(c, err)
		return
	}
	ok(c, gin.H{"messageId": messageID})
}

// History 两人之间的全量聊天记录
func (h *MessageHandler) History(c *gin.Context) {
	user1 := c.Query("user1")
	user2 := c.Query("user2")
	if user1 == "" || user2 == "" {
		fail(c, http.StatusBadRequest, "user1 and user2 are required")
		return
	}

	messages, err := h.svc.History(c.Request.Context(), user1, user2)
	if err != nil {
		failInternal(c, err)
		return
	}
	resp := make([]MessageResp, 0, len(messages))
	for _, m := range messages {
		resp = append(resp, toMessage(m))
	}
	ok(c, resp)
}

// Conversations 会话列表
func (h *MessageHandler) Conversations(c *gin.Context) {
	username := c.Query("user")
	if username == "" {
		fail(c, http.StatusBadRequest, "user is required")
		return
	}

	summaries, err := h.svc.Conversations(c.Request.Context(), username)
	if err != nil {
		failInternal(c, err)
		return
	}
	ok(c, summaries)
}

// MarkAsRead 只清 from→to 这一个方向
func (h *MessageHandler) MarkAsRead(c *gin.Context) {
	var req markAsReadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.From == "" || req.To == "" {
		fail(c, http.StatusBadRequest, "from and to are required")
		return
	}

	if err := h.svc.MarkAsRead(c.Request.Context(), req.From, req.To); err != nil {
		failInternal(c, err)
		return
	}
	ok(c, nil)
}

func toMessage(m model.Message) MessageResp {
	return MessageResp{
		MessageID: m.MessageID,
		From:      m.Sender,
		To:        m.Recipient,
		Message:   m.Body,
		Read:      m.IsRead,
		Timestamp: m.CreatedAt,
		ReadAt:    m.ReadAt,
	}
}
