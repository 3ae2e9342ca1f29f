package service

import (
	"testing"

	"Lee_Clips/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterDuplicate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	require.NoError(t, svc.Register("alice", "pw", "http://img"))
	// 第二次同名必须报冲突
	assert.ErrorIs(t, svc.Register("alice", "pw2", "http://img2"), ErrUsernameTaken)

	var count int64
	db.Model(&model.User{}).Where("username = ?", "alice").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRegisterDefaults(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	require.NoError(t, svc.Register("bob", "pw", "http://img"))

	var user model.User
	require.NoError(t, db.Where("username = ?", "bob").First(&user).Error)
	assert.Equal(t, "azul", user.Plan)
	assert.Len(t, user.Password, 64) // sha256 hex 落库，不存明文
	assert.NotEqual(t, "pw", user.Password)
	assert.Zero(t, user.Likes)
	assert.Zero(t, user.Followers)
	assert.Zero(t, user.Following)
	assert.Nil(t, user.LastSeenAt)
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	require.NoError(t, svc.Register("alice", "pw", "http://img"))

	user, err := svc.Login("alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "http://img", user.ImageURL)

	// 登录成功要刷最后在线时间
	var stored model.User
	require.NoError(t, db.Where("username = ?", "alice").First(&stored).Error)
	assert.NotNil(t, stored.LastSeenAt)
}

func TestLoginBadCredentials(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	require.NoError(t, svc.Register("alice", "pw", "http://img"))

	// 密码错和用户不存在报同一个错，不给枚举用户名的机会
	_, err := svc.Login("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetProfile(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	require.NoError(t, svc.Register("alice", "pw", "http://img"))

	user, err := svc.GetProfile("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = svc.GetProfile("nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
