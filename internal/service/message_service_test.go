package service

import (
	"context"
	"testing"

	"Lee_Clips/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendAndHistory(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMessageService(db)
	ctx := context.Background()

	id1, err := svc.Send(ctx, "alice", "bob", "hola")
	require.NoError(t, err)
	require.NotEmpty(t, id1)
	_, err = svc.Send(ctx, "bob", "alice", "hey")
	require.NoError(t, err)
	_, err = svc.Send(ctx, "alice", "carol", "otra")
	require.NoError(t, err)

	// 双向合并、升序，不带第三人的消息
	history, err := svc.History(ctx, "alice", "bob")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "hola", history[0].Body)
	assert.Equal(t, "hey", history[1].Body)
	assert.False(t, history[0].IsRead)
	assert.Nil(t, history[0].ReadAt)
}

func TestConversations(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMessageService(db)
	ctx := context.Background()
	createTestUser(t, db, "bob", "http://b")
	createTestUser(t, db, "carol", "http://c")

	_, err := svc.Send(ctx, "alice", "bob", "first to bob")
	require.NoError(t, err)
	_, err = svc.Send(ctx, "bob", "alice", "bob reply 1")
	require.NoError(t, err)
	_, err = svc.Send(ctx, "bob", "alice", "bob reply 2")
	require.NoError(t, err)
	_, err = svc.Send(ctx, "carol", "alice", "from carol")
	require.NoError(t, err)

	summaries, err := svc.Conversations(ctx, "alice")
	require.NoError(t, err)
	// 每个对端只出一行
	require.Len(t, summaries, 2)

	// 最新会话排前面：carol 的消息最晚
	assert.Equal(t, "carol", summaries[0].Username)
	assert.Equal(t, "from carol", summaries[0].LastMessage.Text)
	assert.Equal(t, "carol", summaries[0].LastMessage.From)
	assert.Equal(t, int64(1), summaries[0].UnreadCount)
	assert.Equal(t, "http://c", summaries[0].ImageURL)

	// bob 的行取的是双方往来里时间最大的一条
	assert.Equal(t, "bob", summaries[1].Username)
	assert.Equal(t, "bob reply 2", summaries[1].LastMessage.Text)
	// 未读只数发给 alice 的，alice 发出去的不算
	assert.Equal(t, int64(2), summaries[1].UnreadCount)
	assert.Equal(t, "http://b", summaries[1].ImageURL)
}

func TestConversationsEmpty(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMessageService(db)

	summaries, err := svc.Conversations(context.Background(), "loner")
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestMarkAsRead(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMessageService(db)
	ctx := context.Background()

	_, err := svc.Send(ctx, "alice", "bob", "uno")
	require.NoError(t, err)
	_, err = svc.Send(ctx, "alice", "bob", "dos")
	require.NoError(t, err)
	_, err = svc.Send(ctx, "bob", "alice", "tres")
	require.NoError(t, err)

	// 只清 alice→bob 方向
	require.NoError(t, svc.MarkAsRead(ctx, "alice", "bob"))

	var fromAlice []model.Message
	require.NoError(t, db.Where("sender = ?", "alice").Find(&fromAlice).Error)
	require.Len(t, fromAlice, 2)
	for _, m := range fromAlice {
		assert.True(t, m.IsRead)
		assert.NotNil(t, m.ReadAt)
	}

	var fromBob model.Message
	require.NoError(t, db.Where("sender = ?", "bob").First(&fromBob).Error)
	assert.False(t, fromBob.IsRead)
	assert.Nil(t, fromBob.ReadAt)
}
