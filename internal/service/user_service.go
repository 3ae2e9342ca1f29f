package service

import (
	"errors"

	"Lee_Clips/internal/model"
	"Lee_Clips/internal/pkg"
	"Lee_Clips/internal/repository/mysql"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)

type UserService struct {
	repo *mysql.UserRepository
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		repo: &mysql.UserRepository{DB: db},
	}
}

// Register 重名靠唯一索引兜底，不做先查后插（并发下查了也白查）
func (s *UserService) Register(username, password, imageURL string) error {
	user := &model.User{
		Username: username,
		Password: pkg.HashPassword(password),
		Plan:     "azul",
		ImageURL: imageURL,
	}
	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

// Login 成功顺手刷一下最后在线时间。查不到统一报凭证错误，
// 不区分用户不存在还是密码不对
func (s *UserService) Login(username, password string) (*model.User, error) {
	user, err := s.repo.FindByCredentials(username, pkg.HashPassword(password))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := s.repo.TouchLastSeen(username); err != nil {
		// 在线时间刷失败不影响登录
		log.Warn().Err(err).Str("username", username).Msg("touch last seen failed")
	}
	return user, nil
}

func (s *UserService) GetProfile(username string) (*model.User, error) {
	user, err := s.repo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
