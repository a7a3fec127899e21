package consumer

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/heyemlee/quicklink-app/internal/domain"
	"github.com/heyemlee/quicklink-app/internal/metrics"
	"github.com/heyemlee/quicklink-app/internal/repository"
)

type BatchWriterConfig struct {
	MaxBatchSize int
	FlushTimeout time.Duration
}

// BatchWriter groups envelopes and writes them to the event store, acking
// on success and nacking the whole batch on failure.
type BatchWriter struct {
	repository repository.EventRepository
	observer   BatchObserver
	config     BatchWriterConfig
	log        *zap.Logger
}

// NewBatchWriter creates a batch writer. observer may be nil.
func NewBatchWriter(repo repository.EventRepository, observer BatchObserver, config BatchWriterConfig, log *zap.Logger) *BatchWriter {
	if observer == nil {
		observer = noopObserver{}
	}
	return &BatchWriter{
		repository: repo,
		observer:   observer,
		config:     config,
		log:        log,
	}
}

// Start batches envelopes from in until in closes or ctx is done. Pending
// envelopes are flushed before returning.
func (w *BatchWriter) Start(ctx context.Context, in <-chan *Envelope) {
	ticker := time.NewTicker(w.config.FlushTimeout)
	defer ticker.Stop()

	batch := make([]*Envelope, 0, w.config.MaxBatchSize)

	flush := func(ctx context.Context, reason string) {
		if len(batch) == 0 {
			return
		}
		w.log.Debug("Flushing batch", zap.String("reason", reason), zap.Int("envelope_count", len(batch)))
		w.processBatch(ctx, batch)
		batch = make([]*Envelope, 0, w.config.MaxBatchSize)
	}

	for {
		select {
		case <-ctx.Done():
			w.log.Info("Batch writer shutting down")
			// ctx is already cancelled, the final flush gets its own deadline
			final, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.config.FlushTimeout)
			flush(final, "shutdown")
			cancel()
			return

		case envelope, ok := <-in:
			if !ok {
				w.log.Info("Batch writer input channel closed")
				flush(ctx, "input closed")
				return
			}

			batch = append(batch, envelope)
			if len(batch) >= w.config.MaxBatchSize {
				flush(ctx, "size")
				ticker.Reset(w.config.FlushTimeout)
			}

		case <-ticker.C:
			flush(ctx, "timeout")
		}
	}
}

// processBatch inserts the batch. Ids that already exist count as written.
func (w *BatchWriter) processBatch(ctx context.Context, envelopes []*Envelope) {
	events := make([]*domain.Event, len(envelopes))
	for i, env := range envelopes {
		events[i] = env.Event
	}

	inserted, err := w.repository.InsertBatch(ctx, events)
	if err != nil {
		w.log.Error("Failed to insert batch",
			zap.Error(err),
			zap.Int("event_count", len(events)))
		w.observer.ObserveBatch(metrics.ResultFailed, len(events))
		w.nackAll(ctx, envelopes)
		return
	}

	if inserted < len(events) {
		w.log.Info("Batch contained redelivered events",
			zap.Int("inserted", inserted),
			zap.Int("received", len(events)))
	}

	w.observer.ObserveBatch(metrics.ResultAccepted, inserted)
	w.ackAll(ctx, envelopes)
}

func (w *BatchWriter) ackAll(ctx context.Context, envelopes []*Envelope) {
	for _, env := range envelopes {
		if err := env.Ack(ctx); err != nil {
			w.log.Error("Failed to ack envelope", zap.String("event_id", env.Event.ID), zap.Error(err))
		}
	}
}

func (w *BatchWriter) nackAll(ctx context.Context, envelopes []*Envelope) {
	for _, env := range envelopes {
		if err := env.Nack(ctx); err != nil {
			w.log.Error("Failed to nack envelope", zap.String("event_id", env.Event.ID), zap.Error(err))
		}
	}
}
