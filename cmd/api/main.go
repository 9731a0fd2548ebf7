package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	adapter "todolist/internal/adapter/http"
	"todolist/internal/telemetry"
	"todolist/pkg/config"
)

func main() {
	ctx := context.Background()

	logger, err := telemetry.NewRequestLogger("todolist")

	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	defer logger.Sync()

	tel, err := telemetry.InitTelemetry(telemetry.TelemetryConfig{
		ServiceName:    "todolist",
		ServiceVersion: "1.0.0",
		MetricsPort:    envOr("METRICS_PORT", "9091"),
		OTLPEndpoint:   envOr("OTLP_ENDPOINT", "localhost:4317"),
	})

	if err != nil {
		log.Fatal("Failed to initialize telemetry:", err)
	}

	defer tel.Shutdown(ctx)

	metrics := telemetry.NewAppMetrics(tel.PrometheusRegistry)
	metrics.StartSystemMetrics(ctx)

	cfg := config.GetDefaultConfig()

	if os.Getenv("GIN_MODE") == "release" {
		cfg.Environment = "production"
	}

	server, err := adapter.BuildServer(ctx, cfg, metrics, logger)

	if err != nil {
		log.Fatal("Failed to build server:", err)
	}

	defer server.Close()

	go func() {
		slog.Info("Server starting",
			"addr", server.HTTP.Addr,
			"environment", cfg.Environment,
			"rate_limit_enabled", cfg.RateLimitEnabled)

		if err := server.HTTP.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.HTTP.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
