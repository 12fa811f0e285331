package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/prajwalpc099d/ProjectVault/config"
	"github.com/prajwalpc099d/ProjectVault/internal/auth"
	"github.com/prajwalpc099d/ProjectVault/internal/bootstrap"
	cronjob "github.com/prajwalpc099d/ProjectVault/internal/recommendations/cron"
	"github.com/prajwalpc099d/ProjectVault/internal/storage/postgres"
)

const serviceName = "projectvault-api"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := bootstrap.NewLogger(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fb, err := auth.InitializeFirebase(ctx, &cfg.Firebase)
	if err != nil {
		logger.Fatal("firebase init failed", zap.Error(err))
	}
	defer fb.Firestore.Close()

	db, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		logger.Fatal("postgres init failed", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		logger.Fatal("schema init failed", zap.Error(err))
	}

	redisClient, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		logger.Fatal("redis init failed", zap.Error(err))
	}
	defer redisClient.Close()

	router, recSvc := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		AuthClient:  fb.Auth,
		Firestore:   fb.Firestore,
		DB:          db,
		Redis:       redisClient,
		Recs:        cfg.Recommendations,
		Log:         logger,
	})

	scheduler := cronjob.NewScheduler(recSvc, cfg.Recommendations.RefreshCron, logger)
	if err := scheduler.Start(); err != nil {
		logger.Fatal("scheduler start failed", zap.Error(err))
	}
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
