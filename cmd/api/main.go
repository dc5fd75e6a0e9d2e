package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cs2hub/stats-api/internal/config"
	"github.com/cs2hub/stats-api/internal/handlers"
	"github.com/cs2hub/stats-api/internal/logic"
	"github.com/cs2hub/stats-api/internal/steam"
	"github.com/cs2hub/stats-api/internal/store"
	"github.com/cs2hub/stats-api/internal/worker"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Postgres
	pool, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		sugar.Fatalw("Failed to create Postgres pool", "error", err)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		sugar.Fatalw("Failed to ping Postgres", "error", err)
	}

	st := store.New(pool, logger)
	if err := st.Migrate(ctx); err != nil {
		sugar.Fatalw("Failed to run migrations", "error", err)
	}

	// Redis
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		sugar.Fatalw("Invalid Redis URL", "error", err)
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		sugar.Fatalw("Failed to ping Redis", "error", err)
	}

	// Steam sync
	steamClient := steam.NewClient(cfg.SteamAPIKey, cfg.SteamTimeout)
	syncService := steam.NewSyncService(steamClient, st, steam.NewRedisCache(redisClient), cfg.SteamCacheTTL, logger)

	profileService := logic.NewProfileService(st, logger)

	// Background refresher
	refresher := worker.NewRefresher(worker.RefresherConfig{
		Workers:   cfg.RefreshWorkers,
		QueueSize: cfg.RefreshQueueSize,
		Interval:  cfg.RefreshInterval,
		Staleness: cfg.RefreshStaleness,
		Sync:      syncService,
		Store:     st,
		Logger:    logger,
	})
	refresher.Start(ctx)

	handler := handlers.New(handlers.Config{
		Postgres:   pool,
		Redis:      redisClient,
		Logger:     logger,
		Store:      st,
		Profile:    profileService,
		Sync:       syncService,
		AdminToken: cfg.AdminToken,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler.Routes(cfg.AllowedOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sugar.Infow("Server listening", "port", cfg.Port, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugar.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("Server shutdown failed", "error", err)
	}

	refresher.Stop()
	sugar.Info("Shutdown complete")
}
