package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/heyemlee/quicklink-app/internal/config"
	"github.com/heyemlee/quicklink-app/internal/consumer"
	"github.com/heyemlee/quicklink-app/internal/logger"
	"github.com/heyemlee/quicklink-app/internal/metrics"
	"github.com/heyemlee/quicklink-app/internal/queue/sqs"
	"github.com/heyemlee/quicklink-app/internal/repository/eventstore"
	"github.com/heyemlee/quicklink-app/internal/repository/postgres"
)

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

	log.Info("Starting consumer service",
		zap.String("environment", cfg.Service.Environment),
		zap.String("event_store", cfg.Service.EventStore))

	ctx := context.Background()

	pg, err := postgres.New(ctx, cfg.Postgres, log)
	if err != nil {
		log.Fatal("Failed to initialize PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := pg.Close(); err != nil {
			log.Error("Failed to close PostgreSQL", zap.Error(err))
		}
	}()

	repo, closeRepo, err := eventstore.Open(ctx, cfg, pg, log)
	if err != nil {
		log.Fatal("Failed to initialize event store", zap.Error(err))
	}
	defer func() {
		if err := closeRepo(); err != nil {
			log.Error("Failed to close event store", zap.Error(err))
		}
	}()

	sqsClient, err := sqs.NewClient(ctx, cfg.SQS, log)
	if err != nil {
		log.Fatal("Failed to create SQS client", zap.Error(err))
	}

	m := metrics.New(true)
	c := consumer.NewConsumer(cfg, sqsClient, repo, m, log)

	// Health check and metrics endpoint
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := repo.Ping(r.Context()); err != nil {
			log.Warn("Health check failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("/metrics", m.Handler())

	healthSrv := &http.Server{
		Addr:              ":" + cfg.Consumer.HealthCheckPort,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("Health check server starting", zap.String("address", healthSrv.Addr))
		if err := healthSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Health check server error", zap.Error(err))
		}
	}()

	consumerCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	log.Info("Consumer starting")

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := c.Start(consumerCtx); err != nil {
			log.Error("Consumer error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down consumer gracefully")
	cancel()
	<-done

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err := healthSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to shut down health server", zap.Error(err))
	}
}
