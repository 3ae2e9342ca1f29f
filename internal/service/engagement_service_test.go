package service

import (
	"context"
	"testing"

	"Lee_Clips/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLike(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEngagementService(db)
	ctx := context.Background()
	createTestUser(t, db, "alice", "http://a")
	createTestVideo(t, db, "v1", "alice")

	require.NoError(t, svc.Like(ctx, "v1", "bob"))

	var video model.Video
	require.NoError(t, db.Where("video_id = ?", "v1").First(&video).Error)
	assert.Equal(t, int64(1), video.Likes)

	// 同一对 (video, user) 第二次要报冲突，计数不动
	assert.ErrorIs(t, svc.Like(ctx, "v1", "bob"), ErrAlreadyLiked)
	require.NoError(t, db.Where("video_id = ?", "v1").First(&video).Error)
	assert.Equal(t, int64(1), video.Likes)

	// 换个用户可以继续点
	require.NoError(t, svc.Like(ctx, "v1", "carol"))
	require.NoError(t, db.Where("video_id = ?", "v1").First(&video).Error)
	assert.Equal(t, int64(2), video.Likes)
}

func TestRecordView(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEngagementService(db)
	ctx := context.Background()
	createTestUser(t, db, "alice", "http://a")
	createTestVideo(t, db, "v1", "alice")

	// 不判重：同一用户连着看，每次都 +1 并返回新值
	for i := int64(1); i <= 3; i++ {
		views, err := svc.RecordView(ctx, "v1", "bob")
		require.NoError(t, err)
		assert.Equal(t, i, views)
	}

	var rows int64
	db.Model(&model.View{}).Where("video_id = ?", "v1").Count(&rows)
	assert.Equal(t, int64(3), rows)
}

func TestRecordViewUnknownVideo(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEngagementService(db)

	// 视频不存在时历史行为是流水照记、计数返回 0
	views, err := svc.RecordView(context.Background(), "ghost", "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(0), views)
}

func TestAddCommentSnapshotsAvatar(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEngagementService(db)
	ctx := context.Background()
	createTestUser(t, db, "alice", "http://a")
	createTestUser(t, db, "bob", "http://old-avatar")
	createTestVideo(t, db, "v1", "alice")

	commentID, err := svc.AddComment(ctx, "v1", "bob", "nice")
	require.NoError(t, err)
	require.NotEmpty(t, commentID)

	var video model.Video
	require.NoError(t, db.Where("video_id = ?", "v1").First(&video).Error)
	assert.Equal(t, int64(1), video.Comments)

	// 之后换头像，老评论里的快照不能跟着变
	require.NoError(t, db.Model(&model.User{}).
		Where("username = ?", "bob").
		Update("image_url", "http://new-avatar").Error)

	rows, err := svc.ListComments(ctx, "v1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, commentID, rows[0].CommentID)
	assert.Equal(t, "nice", rows[0].CommentText)
	assert.Equal(t, "http://old-avatar", rows[0].ImageURL)
	assert.False(t, rows[0].Edited)
}

func TestAddCommentUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEngagementService(db)
	ctx := context.Background()
	createTestUser(t, db, "alice", "http://a")
	createTestVideo(t, db, "v1", "alice")

	// 用户不存在时评论照发，头像快照为空串（历史行为）
	_, err := svc.AddComment(ctx, "v1", "ghost", "hola")
	require.NoError(t, err)

	rows, err := svc.ListComments(ctx, "v1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].ImageURL)
}

func TestListCommentsOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEngagementService(db)
	ctx := context.Background()
	createTestUser(t, db, "alice", "http://a")
	createTestVideo(t, db, "v1", "alice")

	first, err := svc.AddComment(ctx, "v1", "alice", "first")
	require.NoError(t, err)
	second, err := svc.AddComment(ctx, "v1", "alice", "second")
	require.NoError(t, err)

	rows, err := svc.ListComments(ctx, "v1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// 时间倒序，新评论在前；同秒落库时顺序未定义，这里只校验集合
	got := []string{rows[0].CommentID, rows[1].CommentID}
	assert.ElementsMatch(t, []string{first, second}, got)
}
