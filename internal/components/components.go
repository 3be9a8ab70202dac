package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"patrolwatch/internal/api"
	"patrolwatch/internal/config"
	"patrolwatch/internal/hub"
	"patrolwatch/internal/redis"
	"patrolwatch/internal/service"
	"patrolwatch/internal/storage/postgres"
	"patrolwatch/internal/workers"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Hub        *hub.Hub

	sweeper *workers.ComplianceSweeper
	pump    *workers.EventPump
	sender  *workers.WebhookSender
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("initializing postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("initializing redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	zoneCache := redis.NewZoneCache(redisClient, 5*time.Minute)
	eventQueue := redis.NewEventQueue(redisClient.Client, "events:queue")
	webhookQueue := redis.NewWebhookQueue(redisClient.Client, "webhooks:queue")

	zoneSvc := service.NewZoneService(storage.Zones, zoneCache, logger, cfg.Patrol.DefaultRiskRadiusM, cfg.Patrol.DefaultTimezone)
	patrolSvc := service.NewPatrolService(storage.Sessions, storage.Plans, eventQueue, logger, cfg.Patrol.RecentSessionCap)
	complianceSvc := service.NewComplianceService(
		zoneSvc,
		storage.Checkins,
		storage.Visits,
		storage.Violations,
		storage.Sessions,
		storage.Notifications,
		eventQueue,
		logger,
		cfg.Patrol.StaleAfter,
	)
	alertSvc := service.NewAlertService(storage.Alerts, eventQueue, webhookQueue, logger)
	statsSvc := service.NewStatsService(storage.Stat, storage.Violations, alertSvc, logger, cfg.Patrol.ActiveWindow)

	svc := service.NewService(patrolSvc, complianceSvc, alertSvc, zoneSvc, statsSvc)

	fanoutHub := hub.New(logger)

	httpServer := api.NewServer(cfg, logger, svc, fanoutHub)
	logger.Info("initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		Hub:        fanoutHub,
		sweeper:    workers.NewComplianceSweeper(complianceSvc, cfg.Patrol.EvalInterval, logger),
		pump:       workers.NewEventPump(eventQueue, fanoutHub, logger),
		sender:     workers.NewWebhookSender(logger, cfg.Webhook, webhookQueue),
	}, nil
}

// StartBackground launches the hub loop and the workers. They all stop when
// ctx is cancelled.
func (c *Components) StartBackground(ctx context.Context, wg *sync.WaitGroup) {
	wg.Add(4)
	go func() {
		defer wg.Done()
		c.Hub.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		c.sweeper.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		c.pump.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		c.sender.Run(ctx)
	}()
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("component shutdown started")

	c.Hub.Shutdown()
	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("all components stopped",
		slog.Duration("latency", time.Since(start)))
}
