package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blog-admin-service/internal/app"
	"blog-admin-service/internal/infrastructure/config"
	"blog-admin-service/internal/infrastructure/logger"
	prometheus_metrics "blog-admin-service/internal/infrastructure/outbound/metrics/prometheus"
)

func main() {
	cfg := config.MustLoad()
	ctx := context.Background()
	log := logger.New(cfg.Env)

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()

	application, err := app.New(ctx, cfg, log, metrics)
	if err != nil {
		log.Error("Failed to build application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer application.Close()

	metrics.SetServiceHealth(true)
	log.Info("Post service ready",
		slog.String("storage", cfg.Storage.Driver),
		slog.String("cache", cfg.Cache.Driver),
		slog.Bool("atomic_writes", cfg.Posts.AtomicWrites))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	opsDone := make(chan bool, 1)
	go func() {
		if err := application.Ops.Run(); err != nil {
			log.Error("Ops server error", slog.String("error", err.Error()))
		}
		opsDone <- true
	}()

	select {
	case <-quit:
	case <-opsDone:
		log.Error("Ops server stopped unexpectedly")
		metrics.SetServiceHealth(false)
		return
	}
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := application.Ops.Shutdown(shutdownCtx); err != nil {
		log.Error("Ops server shutdown error", slog.String("error", err.Error()))
	}
	<-opsDone

	log.Info("Server exited")
}
