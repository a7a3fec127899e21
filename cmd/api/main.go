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

	"go.uber.org/zap"

	"github.com/heyemlee/quicklink-app/docs"
	"github.com/heyemlee/quicklink-app/internal/auth"
	"github.com/heyemlee/quicklink-app/internal/clock"
	"github.com/heyemlee/quicklink-app/internal/config"
	"github.com/heyemlee/quicklink-app/internal/handler"
	"github.com/heyemlee/quicklink-app/internal/idgen"
	"github.com/heyemlee/quicklink-app/internal/logger"
	"github.com/heyemlee/quicklink-app/internal/metrics"
	"github.com/heyemlee/quicklink-app/internal/notify"
	"github.com/heyemlee/quicklink-app/internal/queue/sqs"
	"github.com/heyemlee/quicklink-app/internal/repository/eventstore"
	"github.com/heyemlee/quicklink-app/internal/repository/postgres"
	"github.com/heyemlee/quicklink-app/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title QuickLink Analytics API
// @version 1.0
// @description Visitor event ingestion and owner analytics for QuickLink cards.
// @host localhost:8080
// @BasePath /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Service.Environment)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting API service",
		zap.String("environment", cfg.Service.Environment),
		zap.String("port", cfg.Service.APIPort),
		zap.String("ingest_mode", cfg.Service.IngestMode),
		zap.String("event_store", cfg.Service.EventStore))

	// Configure Swagger host dynamically
	docs.SwaggerInfo.Host = cfg.Service.Host

	ctx := context.Background()

	// Owners and sessions always live in PostgreSQL
	pg, err := postgres.New(ctx, cfg.Postgres, log)
	if err != nil {
		log.Fatal("Failed to initialize PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := pg.Close(); err != nil {
			log.Error("Failed to close PostgreSQL", zap.Error(err))
		}
	}()

	events, closeEvents, err := eventstore.Open(ctx, cfg, pg, log)
	if err != nil {
		log.Fatal("Failed to initialize event store", zap.Error(err))
	}
	defer func() {
		if err := closeEvents(); err != nil {
			log.Error("Failed to close event store", zap.Error(err))
		}
	}()

	notifier, err := newNotifier(cfg.NATS, log)
	if err != nil {
		log.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer func() {
		if err := notifier.Close(); err != nil {
			log.Error("Failed to close notifier", zap.Error(err))
		}
	}()

	m := metrics.New(true)
	clk := clock.System{}

	eventCfg := service.EventServiceConfig{
		Owners:   pg,
		Store:    events,
		Notifier: notifier,
		Subject:  cfg.NATS.Subject,
		IDs:      idgen.Generator(idgen.NewEventID),
		Clock:    clk,
		Metrics:  m,
	}

	if cfg.Service.IngestMode == config.IngestModeQueue {
		sqsClient, err := sqs.NewClient(ctx, cfg.SQS, log)
		if err != nil {
			log.Fatal("Failed to create SQS client", zap.Error(err))
		}
		eventCfg.Publisher = sqsClient
	}

	eventService := service.NewEventService(eventCfg, log)
	analyticsService := service.NewAnalyticsService(events, pg, clk, cfg.Service.DefaultOwnerSlug, m, log)

	h := handler.NewHandler(handler.Dependencies{
		Events:    eventService,
		Analytics: analyticsService,
		Store:     events,
		Sessions:  auth.NewStoreResolver(pg, clk),
		Metrics:   m.Handler(),
	}, log)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Service.APIPort),
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("API server starting", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start API server", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down API server gracefully")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to shut down API server", zap.Error(err))
	}
}

func newNotifier(cfg config.NATS, log *zap.Logger) (notify.Publisher, error) {
	if cfg.URL == "" {
		log.Info("NATS_URL not set, event notifications disabled")
		return &notify.NoopPublisher{}, nil
	}

	publisher, err := notify.NewNATSPublisher(cfg.URL)
	if err != nil {
		return nil, err
	}

	log.Info("Publishing event notifications", zap.String("subject", cfg.Subject))
	return publisher, nil
}
