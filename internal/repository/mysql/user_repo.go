package mysql

import (
	"time"

	"Lee_Clips/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	return &user, err
}

// FindByCredentials 用户名+摘要精确匹配，查不到时不区分是谁错的
func (r *UserRepository) FindByCredentials(username, passwordHash string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("username = ? AND password = ?", username, passwordHash).First(&user).Error
	return &user, err
}

func (r *UserRepository) TouchLastSeen(username string) error {
	now := time.Now()
	return r.DB.Model(&model.User{}).
		Where("username = ?", username).
		UpdateColumn("last_seen_at", now).Error
}

// AvatarOf 查头像，用户不存在返回空串（历史行为，评论快照依赖它）
func (r *UserRepository) AvatarOf(username string) (string, error) {
	var user model.User
	err := r.DB.Select("image_url").Where("username = ?", username).First(&user).Error
	if err != nil {
		return "", err
	}
	return user.ImageURL, nil
}
