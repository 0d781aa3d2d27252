package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"viralclip-ads/internal/adapter/affiliate"
	"viralclip-ads/internal/adapter/gemini"
	httpadapter "viralclip-ads/internal/adapter/http"
	"viralclip-ads/internal/adapter/memory"
	"viralclip-ads/internal/adapter/postgres"
	redisstore "viralclip-ads/internal/adapter/redis"
	"viralclip-ads/internal/adapter/usecase"
	"viralclip-ads/internal/config"
	"viralclip-ads/internal/config/configs"
	"viralclip-ads/internal/core/port"
	"viralclip-ads/internal/db"
)

// main is the entry point of the ad service. It loads configuration,
// selects the ad store backend (running migrations for postgres when
// asked), wires the Gemini generator and starts the HTTP server. On
// receiving a termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("ad store connection error", slog.Any("error", err))
		return
	}
	defer closeStore()

	var generator port.AdGenerator
	gen, err := gemini.NewGenerator(ctx, cfg.Gemini)
	if err != nil {
		logger.Warn("gemini unavailable, serving fallback ads", slog.Any("error", err))
		generator = gemini.Unavailable{Err: err}
	} else {
		defer gen.Close()
		generator = gen
	}

	resolver := affiliate.NewResolver(cfg.Affiliate.Links, cfg.Affiliate.DefaultLink)
	svc := usecase.NewAdUseCase(store, generator, resolver,
		usecase.WithLogger(logger),
		usecase.WithStorageKey(cfg.Store.Key),
	)

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("store", cfg.Store.Backend))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}

// openStore connects the configured ad store backend. The returned func
// releases its connections.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.AdStore, func(), error) {
	backend, err := cfg.Store.Normalized()
	if err != nil {
		return nil, nil, err
	}

	switch backend {
	case configs.BackendPostgres:
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
			} else {
				logger.Info("migrations applied successfully")
			}
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewAdStore(pool), pool.Close, nil

	case configs.BackendRedis:
		rdb, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("redis client connected", slog.String("addr", cfg.Redis.Addr))
		return redisstore.NewAdStore(rdb, cfg.Redis.KeyPrefix), func() { _ = rdb.Close() }, nil

	default:
		return memory.NewAdStore(), func() {}, nil
	}
}
