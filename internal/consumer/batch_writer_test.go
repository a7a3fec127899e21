package consumer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/heyemlee/quicklink-app/internal/domain"
	"github.com/heyemlee/quicklink-app/internal/metrics"
)

func batchOf(n int) interface{} {
	return mock.MatchedBy(func(events []*domain.Event) bool {
		return len(events) == n
	})
}

func TestBatchWriter_FlushesAtMaxBatchSize(t *testing.T) {
	mockRepo := new(MockEventRepository)
	observer := newRecordingObserver()
	rec := newAckRecorder(3)

	writer := NewBatchWriter(mockRepo, observer, BatchWriterConfig{
		MaxBatchSize: 3,
		FlushTimeout: 10 * time.Second,
	}, zap.NewNop())

	mockRepo.On("InsertBatch", mock.Anything, batchOf(3)).Return(3, nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan *Envelope, 3)
	go writer.Start(ctx, in)

	in <- rec.envelope("evt_1")
	in <- rec.envelope("evt_2")
	in <- rec.envelope("evt_3")

	assert.ElementsMatch(t, []string{"evt_1", "evt_2", "evt_3"}, collect(rec.acked, 3, time.Second))
	assert.Equal(t, 3, observer.count(metrics.ResultAccepted))
	mockRepo.AssertExpectations(t)
}

func TestBatchWriter_FlushesOnTimeout(t *testing.T) {
	mockRepo := new(MockEventRepository)
	rec := newAckRecorder(2)

	writer := NewBatchWriter(mockRepo, nil, BatchWriterConfig{
		MaxBatchSize: 10,
		FlushTimeout: 30 * time.Millisecond,
	}, zap.NewNop())

	mockRepo.On("InsertBatch", mock.Anything, batchOf(2)).Return(2, nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan *Envelope, 2)
	go writer.Start(ctx, in)

	in <- rec.envelope("evt_1")
	in <- rec.envelope("evt_2")

	assert.Len(t, collect(rec.acked, 2, time.Second), 2)
	mockRepo.AssertExpectations(t)
}

func TestBatchWriter_InsertFailureNacksBatch(t *testing.T) {
	mockRepo := new(MockEventRepository)
	observer := newRecordingObserver()
	rec := newAckRecorder(2)

	writer := NewBatchWriter(mockRepo, observer, BatchWriterConfig{
		MaxBatchSize: 2,
		FlushTimeout: 10 * time.Second,
	}, zap.NewNop())

	mockRepo.On("InsertBatch", mock.Anything, batchOf(2)).Return(0, errors.New("database connection error")).Once()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan *Envelope, 2)
	go writer.Start(ctx, in)

	in <- rec.envelope("evt_1")
	in <- rec.envelope("evt_2")

	assert.ElementsMatch(t, []string{"evt_1", "evt_2"}, collect(rec.nacked, 2, time.Second))
	assert.Empty(t, rec.acked)
	assert.Equal(t, 2, observer.count(metrics.ResultFailed))
	mockRepo.AssertExpectations(t)
}

// Redelivered messages whose ids already exist are still acked.
func TestBatchWriter_DuplicatesAreAcked(t *testing.T) {
	mockRepo := new(MockEventRepository)
	observer := newRecordingObserver()
	rec := newAckRecorder(3)

	writer := NewBatchWriter(mockRepo, observer, BatchWriterConfig{
		MaxBatchSize: 3,
		FlushTimeout: 10 * time.Second,
	}, zap.NewNop())

	mockRepo.On("InsertBatch", mock.Anything, batchOf(3)).Return(2, nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan *Envelope, 3)
	go writer.Start(ctx, in)

	in <- rec.envelope("evt_1")
	in <- rec.envelope("evt_2")
	in <- rec.envelope("evt_2")

	assert.Len(t, collect(rec.acked, 3, time.Second), 3)
	assert.Empty(t, rec.nacked)
	assert.Equal(t, 2, observer.count(metrics.ResultAccepted))
	mockRepo.AssertExpectations(t)
}

func TestBatchWriter_FlushesPendingOnShutdown(t *testing.T) {
	mockRepo := new(MockEventRepository)
	rec := newAckRecorder(2)

	writer := NewBatchWriter(mockRepo, nil, BatchWriterConfig{
		MaxBatchSize: 10,
		FlushTimeout: time.Second,
	}, zap.NewNop())

	mockRepo.On("InsertBatch", mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() == nil
	}), batchOf(2)).Return(2, nil).Once()

	ctx, cancel := context.WithCancel(context.Background())

	in := make(chan *Envelope, 2)
	in <- rec.envelope("evt_1")
	in <- rec.envelope("evt_2")

	done := make(chan struct{})
	go func() {
		writer.Start(ctx, in)
		close(done)
	}()

	// let the writer pick both envelopes up before cancelling
	assert.Eventually(t, func() bool { return len(in) == 0 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("batch writer did not stop")
	}

	assert.Len(t, collect(rec.acked, 2, 100*time.Millisecond), 2)
	mockRepo.AssertExpectations(t)
}

func TestBatchWriter_FlushesWhenInputCloses(t *testing.T) {
	mockRepo := new(MockEventRepository)
	rec := newAckRecorder(1)

	writer := NewBatchWriter(mockRepo, nil, BatchWriterConfig{
		MaxBatchSize: 10,
		FlushTimeout: 10 * time.Second,
	}, zap.NewNop())

	mockRepo.On("InsertBatch", mock.Anything, batchOf(1)).Return(1, nil).Once()

	in := make(chan *Envelope, 1)
	in <- rec.envelope("evt_1")
	close(in)

	writer.Start(context.Background(), in)

	assert.Equal(t, []string{"evt_1"}, collect(rec.acked, 1, 100*time.Millisecond))
	mockRepo.AssertExpectations(t)
}

func TestBatchWriter_EmptyBatchNotFlushed(t *testing.T) {
	mockRepo := new(MockEventRepository)

	writer := NewBatchWriter(mockRepo, nil, BatchWriterConfig{
		MaxBatchSize: 10,
		FlushTimeout: 10 * time.Millisecond,
	}, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	writer.Start(ctx, make(chan *Envelope))

	mockRepo.AssertNotCalled(t, "InsertBatch", mock.Anything, mock.Anything)
}

func TestBatchWriter_MultipleBatches(t *testing.T) {
	mockRepo := new(MockEventRepository)
	rec := newAckRecorder(4)

	writer := NewBatchWriter(mockRepo, nil, BatchWriterConfig{
		MaxBatchSize: 2,
		FlushTimeout: 10 * time.Second,
	}, zap.NewNop())

	mockRepo.On("InsertBatch", mock.Anything, batchOf(2)).Return(2, nil).Twice()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan *Envelope, 4)
	go writer.Start(ctx, in)

	for _, id := range []string{"evt_1", "evt_2", "evt_3", "evt_4"} {
		in <- rec.envelope(id)
	}

	assert.Len(t, collect(rec.acked, 4, time.Second), 4)
	mockRepo.AssertNumberOfCalls(t, "InsertBatch", 2)
}
