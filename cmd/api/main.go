package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"Lee_Clips/internal/config"
	"Lee_Clips/internal/model"
	"Lee_Clips/internal/pkg"
	"Lee_Clips/internal/repository/mysql"
	"Lee_Clips/internal/repository/redis"
	"Lee_Clips/internal/router"
	"Lee_Clips/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := mysql.InitDB(cfg.DatabaseDSN); err != nil {
		log.Fatal().Err(err).Msg("mysql init failed")
	}

	// redis 可选，没配就只走数据库
	if cfg.RedisAddr != "" {
		if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
			log.Fatal().Err(err).Msg("redis init failed")
		}
		defer redis.Close()
	}

	// 自动建表（开发阶段 OK）
	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.Like{},
		&model.View{},
		&model.Comment{},
		&model.Follow{},
		&model.Message{},
		&model.EngagementOutbox{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto migrate failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// outbox 投递：配了 Kafka 走 producer，否则打日志
	sender := service.LogSender
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("kafka init failed")
		}
		defer producer.Close()
		sender = service.KafkaSender(producer)
	}
	go service.NewOutboxRelayer(mysql.DB, sender).Run(ctx)

	r := router.InitRouter(mysql.DB)
	log.Info().Str("addr", cfg.ServerAddr).Msg("api server starting")
	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
