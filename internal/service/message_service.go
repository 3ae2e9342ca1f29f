package service

import (
	"context"
	"time"

	"Lee_Clips/internal/model"
	"Lee_Clips/internal/repository/mysql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageService struct {
	repo *mysql.MessageRepository
}

// LastMessage 会话里最新一条
type LastMessage struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	From      string    `json:"from"`
}

// ConversationSummary 会话列表一行：对端、最新消息和未读角标
type ConversationSummary struct {
	Username    string      `json:"username"`
	ImageURL    string      `json:"imageUrl"`
	LastMessage LastMessage `json:"lastMessage"`
	UnreadCount int64       `json:"unreadCount"`
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{
		repo: &mysql.MessageRepository{DB: db},
	}
}

// Send 收件人不校验存在，消息静默等待（历史行为）
func (s *MessageService) Send(ctx context.Context, from, to, body string) (string, error) {
	msg := &model.Message{
		MessageID: uuid.NewString(),
		Sender:    from,
		Recipient: to,
		Body:      body,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return "", err
	}
	return msg.MessageID, nil
}

func (s *MessageService) History(ctx context.Context, user1, user2 string) ([]model.Message, error) {
	return s.repo.History(ctx, user1, user2)
}

// Conversations 消息按时间倒序扫一遍，每个对端第一次出现的就是
// 最新一条；对端出现顺序即会话的时间倒序。未读数单独聚合一次
func (s *MessageService) Conversations(ctx context.Context, username string) ([]ConversationSummary, error) {
	messages, err := s.repo.ListInvolving(ctx, username)
	if err != nil {
		return nil, err
	}
	unread, err := s.repo.UnreadCounts(ctx, username)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	summaries := make([]ConversationSummary, 0)
	peers := make([]string, 0)
	for _, msg := range messages {
		peer := msg.Sender
		if msg.Sender == username {
			peer = msg.Recipient
		}
		if seen[peer] {
			continue
		}
		seen[peer] = true
		peers = append(peers, peer)
		summaries = append(summaries, ConversationSummary{
			Username: peer,
			LastMessage: LastMessage{
				Text:      msg.Body,
				Timestamp: msg.CreatedAt,
				From:      msg.Sender,
			},
			UnreadCount: unread[peer],
		})
	}

	avatars, err := s.repo.AvatarsFor(ctx, peers)
	if err != nil {
		return nil, err
	}
	for i := range summaries {
		summaries[i].ImageURL = avatars[summaries[i].Username]
	}
	return summaries, nil
}

func (s *MessageService) MarkAsRead(ctx context.Context, from, to string) error {
	return s.repo.MarkAsRead(ctx, from, to)
}
