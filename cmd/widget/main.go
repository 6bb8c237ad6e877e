package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/couchcryptid/weather-widget/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/weather-widget/internal/adapter/kafka"
	"github.com/couchcryptid/weather-widget/internal/adapter/openmeteo"
	"github.com/couchcryptid/weather-widget/internal/adapter/probe"
	"github.com/couchcryptid/weather-widget/internal/config"
	"github.com/couchcryptid/weather-widget/internal/domain"
	"github.com/couchcryptid/weather-widget/internal/lookup"
	"github.com/couchcryptid/weather-widget/internal/observability"
)

const (
	breakerThreshold = 5
	breakerCooldown  = 30 * time.Second
	probeCity        = "nairobi"
)

type alwaysReady struct{}

func (alwaysReady) CheckReadiness(context.Context) error { return nil }

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	forecast := openmeteo.NewClient(cfg.ForecastBaseURL, cfg.ForecastTimeout, cfg.LookupDelay, metrics, logger)

	var client domain.WeatherClient = forecast
	if cfg.ForecastRateLimit > 0 {
		client = openmeteo.NewRateLimitedClient(client, cfg.ForecastRateLimit, cfg.ForecastRateBurst)
		logger.Info("forecast rate limiting enabled", "rps", cfg.ForecastRateLimit, "burst", cfg.ForecastRateBurst)
	}
	if cfg.ForecastBreakerEnabled {
		client = openmeteo.NewBreakerClient(client, breakerThreshold, breakerCooldown, logger)
		logger.Info("forecast circuit breaker enabled", "threshold", breakerThreshold, "cooldown", breakerCooldown)
	}

	// Lookup events are feature-flagged via KAFKA_BROKERS.
	var (
		events lookup.EventPublisher
		writer *kafkaadapter.Writer
	)
	if cfg.EventsEnabled() {
		writer = kafkaadapter.NewWriter(cfg.KafkaBrokers, cfg.KafkaTopic, metrics, logger)
		events = writer
		logger.Info("lookup events enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	} else {
		logger.Info("lookup events disabled")
	}

	var (
		ready httpadapter.ReadinessChecker = alwaysReady{}
		prb   *probe.Probe
	)
	if cfg.ProbeInterval > 0 {
		city, _ := domain.LookupCity(probeCity)
		prb = probe.New(forecast, city, cfg.ProbeInterval, metrics, logger)
		if err := prb.Start(); err != nil {
			logger.Error("failed to start upstream probe", "error", err)
			os.Exit(1)
		}
		ready = prb
	}

	widget := lookup.NewService(client, cfg.Icons(), events, metrics, logger)
	srv := httpadapter.NewServer(cfg.HTTPAddr, widget, ready, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if prb != nil {
		prb.Stop()
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
