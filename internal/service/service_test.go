package service

import (
	"fmt"
	"sync/atomic"
	"testing"

	"Lee_Clips/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// setupTestDB 每个测试一个独立的内存库。cache=shared 是因为 gorm
// 会开多个连接，不共享的话新连接看不到表
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.Like{},
		&model.View{},
		&model.Comment{},
		&model.Follow{},
		&model.Message{},
		&model.EngagementOutbox{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username, avatar string) {
	t.Helper()
	user := &model.User{Username: username, Password: "x", Plan: "azul", ImageURL: avatar}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
}

func createTestVideo(t *testing.T, db *gorm.DB, videoID, username string) {
	t.Helper()
	video := &model.Video{
		VideoID:      videoID,
		Username:     username,
		Title:        "t",
		VideoURL:     "http://v",
		ThumbnailURL: "http://t",
	}
	if err := db.Create(video).Error; err != nil {
		t.Fatalf("failed to create video %s: %v", videoID, err)
	}
}
