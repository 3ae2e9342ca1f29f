package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	VideoStatsPrefix = "video:stats"
	VideoStatsTTL    = 60 * time.Second
)

var ErrCacheMiss = errors.New("stats cache miss")

// VideoStats 三个冷统计位，hash 一把存
type VideoStats struct {
	Likes    int64 `json:"likes"`
	Views    int64 `json:"visualizaciones"`
	Comments int64 `json:"comments"`
}

type StatsRepository struct {
	Client *redis.Client
}

func NewStatsRepository() *StatsRepository {
	return &StatsRepository{Client: Client}
}

func statsKey(videoID string) string {
	return fmt.Sprintf("%s:%s", VideoStatsPrefix, videoID)
}

// Get 读缓存，miss 或 redis 不可用都返回 ErrCacheMiss，由调用方回源
func (r *StatsRepository) Get(ctx context.Context, videoID string) (*VideoStats, error) {
	if r.Client == nil {
		return nil, ErrCacheMiss
	}
	vals, err := r.Client.HGetAll(ctx, statsKey(videoID)).Result()
	if err != nil || len(vals) == 0 {
		return nil, ErrCacheMiss
	}
	stats := &VideoStats{
		Likes:    parseCount(vals["likes"]),
		Views:    parseCount(vals["views"]),
		Comments: parseCount(vals["comments"]),
	}
	return stats, nil
}

// Set 回填缓存，带 TTL，失败忽略
func (r *StatsRepository) Set(ctx context.Context, videoID string, stats *VideoStats) {
	if r.Client == nil {
		return
	}
	key := statsKey(videoID)
	pipe := r.Client.TxPipeline()
	pipe.HSet(ctx, key,
		"likes", stats.Likes,
		"views", stats.Views,
		"comments", stats.Comments,
	)
	pipe.Expire(ctx, key, VideoStatsTTL)
	_, _ = pipe.Exec(ctx)
}

// Invalidate 写侧删 key，读侧惰性重建。删失败也忽略，TTL 兜底
func (r *StatsRepository) Invalidate(ctx context.Context, videoID string) {
	if r.Client == nil {
		return
	}
	_ = r.Client.Del(ctx, statsKey(videoID)).Err()
}

func parseCount(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}
