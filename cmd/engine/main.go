package main

import (
	"context"
	"errors"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	runhandler "github.com/aletkin/carminder/internal/api/handlers/run"
	subhandler "github.com/aletkin/carminder/internal/api/handlers/subscription"
	"github.com/aletkin/carminder/internal/api/router"
	"github.com/aletkin/carminder/internal/api/server"
	"github.com/aletkin/carminder/internal/config"
	"github.com/aletkin/carminder/internal/engine"
	reminderrepo "github.com/aletkin/carminder/internal/repository/reminder"
	subrepo "github.com/aletkin/carminder/internal/repository/subscription"
	vehiclerepo "github.com/aletkin/carminder/internal/repository/vehicle"
	"github.com/aletkin/carminder/internal/scheduler"
	"github.com/aletkin/carminder/internal/service/notify"
	"github.com/aletkin/carminder/internal/service/odometer"
	subsvc "github.com/aletkin/carminder/internal/service/subscription"
	"github.com/aletkin/carminder/internal/service/urgency"
	"github.com/aletkin/carminder/pkg/webpush"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)

	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	pushClient := webpush.NewClient(
		cfg.WebPush.VAPIDPublicKey,
		cfg.WebPush.VAPIDPrivateKey,
		cfg.WebPush.Subscriber,
		cfg.WebPush.TTL,
	)

	if err := pushClient.Validate(); err != nil {
		// Startup proceeds so subscriptions can still be registered; runs
		// will abort until the key pair is provided.
		zlog.Logger.Warn().Err(err).Msg("push transport not configured, engine runs will fail")
	}

	vehicles := vehiclerepo.NewRepository(db)
	reminders := reminderrepo.NewRepository(db)
	subscriptions := subrepo.NewRepository(db)

	registry := subsvc.NewRegistry(subscriptions, rdb, cfg.Engine.SubscriptionCacheTTL)
	resolver := odometer.NewResolver(vehicles)
	classifier := urgency.NewClassifier(cfg.Engine.UrgencyThresholdKm, cfg.Engine.UrgencyThresholdDays)
	gate := notify.NewGate(cfg.Engine.CooldownHours)
	dispatcher := notify.NewDispatcher(pushClient, registry, reminders, cfg.Engine.IconURL, cfg.Engine.MaxInFlight)

	eng := engine.New(vehicles, reminders, resolver, registry, classifier, gate, dispatcher, pushClient, cfg.Retry)

	sched := scheduler.New(eng, cfg.Scheduler.Cron, 5*time.Minute)
	if err := sched.Start(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to start scheduler")
	}

	runHandler := runhandler.NewHandler(eng)
	subHandler := subhandler.NewHandler(registry, val, cfg)

	r := router.New(runHandler, subHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	sched.Stop()

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}
}
