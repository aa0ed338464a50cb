// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"vendor-advisor/internal/common/config"
	"vendor-advisor/internal/common/database"
	"vendor-advisor/internal/common/logger"
	"vendor-advisor/internal/common/observability"
	"vendor-advisor/internal/engine/orchestrator"
	"vendor-advisor/internal/server"
	"vendor-advisor/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootstrap := logger.New("info", "console")
		bootstrap.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	log.Info("starting decision engine", map[string]interface{}{
		"name":        cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	})

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		zapLog.Fatal("postgres init failed", zap.Error(err))
	}
	defer pg.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := pg.Ping(ctx); err != nil {
		cancel()
		zapLog.Fatal("postgres ping failed", zap.Error(err))
	}
	cancel()

	rdb, err := database.NewRedis(cfg.Database.Redis)
	if err != nil {
		zapLog.Fatal("redis init failed", zap.Error(err))
	}
	defer rdb.Close()

	cacheTTL := time.Duration(cfg.Engine.SnapshotCacheTTL) * time.Second
	st := store.NewCached(
		store.New(pg.DB, log),
		store.NewSnapshotCache(rdb.Client, cacheTTL, log),
	)

	engine := orchestrator.New(log)
	srv := server.New(cfg.Server, st, engine, pg, obs, log)

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      srv,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("http server listening", map[string]interface{}{
			"addr": cfg.Server.Addr(),
		})
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info("shutting down", nil)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("http shutdown failed", nil)
	}

	log.Info("stopped", nil)
}
