package service

import (
	"context"
	"errors"

	"Lee_Clips/internal/repository/mysql"

	"gorm.io/gorm"
)

var (
	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrAlreadyFollowing = errors.New("already following this user")
)

type FollowService struct {
	repo *mysql.FollowRepository
}

func NewFollowService(db *gorm.DB) *FollowService {
	return &FollowService{
		repo: &mysql.FollowRepository{DB: db},
	}
}

// Follow 自关注直接拒，重复边靠唯一键冲突
func (s *FollowService) Follow(ctx context.Context, follower, following string) error {
	if follower == following {
		return ErrSelfFollow
	}
	if err := s.repo.Create(ctx, follower, following); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyFollowing
		}
		return err
	}
	return nil
}

func (s *FollowService) IsFollowing(ctx context.Context, follower, following string) (bool, error) {
	return s.repo.IsFollowing(ctx, follower, following)
}
