package mysql

import (
	"context"
	"time"

	"Lee_Clips/internal/model"

	"gorm.io/gorm"
)

type MessageRepository struct {
	DB *gorm.DB
}

// unreadPair GROUP BY 未读数的一行
type unreadPair struct {
	Sender string
	Count  int64
}

func (r *MessageRepository) Create(ctx context.Context, msg *model.Message) error {
	return r.DB.WithContext(ctx).Create(msg).Error
}

// History 双向全量聊天记录，按时间升序，不分页
func (r *MessageRepository) History(ctx context.Context, user1, user2 string) ([]model.Message, error) {
	var list []model.Message
	err := r.DB.WithContext(ctx).
		Where("(sender = ? AND recipient = ?) OR (sender = ? AND recipient = ?)",
			user1, user2, user2, user1).
		Order("created_at ASC, id ASC").
		Find(&list).Error
	return list, err
}

// ListInvolving 取某用户全部往来消息，时间倒序。会话列表在内存里
// 按对端分组取每组第一条（即最新一条）
func (r *MessageRepository) ListInvolving(ctx context.Context, username string) ([]model.Message, error) {
	var list []model.Message
	err := r.DB.WithContext(ctx).
		Where("sender = ? OR recipient = ?", username, username).
		Order("created_at DESC, id DESC").
		Find(&list).Error
	return list, err
}

// UnreadCounts 发给 username 的未读数，按对端聚合
func (r *MessageRepository) UnreadCounts(ctx context.Context, username string) (map[string]int64, error) {
	var rows []unreadPair
	err := r.DB.WithContext(ctx).
		Model(&model.Message{}).
		Select("sender", "COUNT(*) AS count").
		Where("recipient = ? AND is_read = ?", username, false).
		Group("sender").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Sender] = row.Count
	}
	return counts, nil
}

// MarkAsRead 只翻 from→to 方向的未读，反方向不动
func (r *MessageRepository) MarkAsRead(ctx context.Context, from, to string) error {
	now := time.Now()
	return r.DB.WithContext(ctx).
		Model(&model.Message{}).
		Where("sender = ? AND recipient = ? AND is_read = ?", from, to, false).
		Updates(map[string]any{"is_read": true, "read_at": now}).Error
}

// AvatarsFor 批量查头像，会话列表用
func (r *MessageRepository) AvatarsFor(ctx context.Context, usernames []string) (map[string]string, error) {
	if len(usernames) == 0 {
		return map[string]string{}, nil
	}
	var users []model.User
	err := r.DB.WithContext(ctx).
		Select("username", "image_url").
		Where("username IN ?", usernames).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	avatars := make(map[string]string, len(users))
	for _, u := range users {
		avatars[u.Username] = u.ImageURL
	}
	return avatars, nil
}
