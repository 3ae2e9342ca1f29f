package service

import (
	"context"
	"time"

	"Lee_Clips/internal/model"
	"Lee_Clips/internal/pkg"
	"Lee_Clips/internal/repository/mysql"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type Sender func(ctx context.Context, ob *model.EngagementOutbox) error

// OutboxRelayer 互动事件投递器：定时扫 outbox 表，把 pending 的
// like/follow 事件交给 sender，失败记重试
type OutboxRelayer struct {
	repo      *mysql.OutboxRepository
	batchSize int
	interval  time.Duration
	sender    Sender
}

func NewOutboxRelayer(db *gorm.DB, sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      &mysql.OutboxRepository{DB: db},
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
	}
}

// Run outbox启动器
func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.List(ctx, r.batchSize)
	if err != nil {
		log.Error().Err(err).Msg("outbox query failed")
		return
	}
	for i := range rows {
		ob := rows[i]
		if err = r.sender(ctx, &ob); err != nil {
			_ = r.repo.RetryUpdate(ctx, ob.ID)
			continue
		}
		_ = r.repo.SuccessUpdate(ctx, ob.ID)
	}
}

// LogSender 默认 sender：没配 Kafka 时只打日志
func LogSender(ctx context.Context, ob *model.EngagementOutbox) error {
	log.Info().
		Str("event", ob.EventType).
		Str("actor", ob.Actor).
		Str("target", ob.Target).
		RawJSON("payload", []byte(ob.Payload)).
		Msg("outbox send")
	return nil
}

// KafkaSender 把 outbox 事件交给 Kafka producer
func KafkaSender(producer *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ob *model.EngagementOutbox) error {
		return producer.Send(ctx, ob.Actor, []byte(ob.Payload))
	}
}
