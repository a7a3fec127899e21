package consumer

import (
	"context"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/mock"

	"github.com/heyemlee/quicklink-app/internal/domain"
	"github.com/heyemlee/quicklink-app/internal/repository"
)

const testQueueURL = "https://sqs.us-east-1.amazonaws.com/123/quicklink-events"

var testCreatedAt = time.Date(2025, time.October, 16, 9, 0, 0, 0, time.UTC)

// MockQueueConsumer is a mock implementation of queue.QueueConsumer
type MockQueueConsumer struct {
	mock.Mock
}

func (m *MockQueueConsumer) ReceiveMessages(ctx context.Context, input *sqs.ReceiveMessageInput) (*sqs.ReceiveMessageOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqs.ReceiveMessageOutput), args.Error(1)
}

func (m *MockQueueConsumer) DeleteMessage(ctx context.Context, input *sqs.DeleteMessageInput) (*sqs.DeleteMessageOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqs.DeleteMessageOutput), args.Error(1)
}

func (m *MockQueueConsumer) ChangeMessageVisibility(ctx context.Context, input *sqs.ChangeMessageVisibilityInput) (*sqs.ChangeMessageVisibilityOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqs.ChangeMessageVisibilityOutput), args.Error(1)
}

func (m *MockQueueConsumer) QueueURL() string {
	args := m.Called()
	return args.String(0)
}

// MockEventRepository is a mock implementation of repository.EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Append(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) InsertBatch(ctx context.Context, events []*domain.Event) (int, error) {
	args := m.Called(ctx, events)
	return args.Int(0), args.Error(1)
}

func (m *MockEventRepository) QueryByOwnerAndRange(ctx context.Context, query repository.EventQuery) ([]*domain.Event, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Event), args.Error(1)
}

func (m *MockEventRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEventRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockMessageParser is a mock implementation of MessageParser
type MockMessageParser struct {
	mock.Mock
}

func (m *MockMessageParser) Parse(body []byte) (*domain.Event, error) {
	args := m.Called(body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

// recordingObserver captures ObserveBatch calls.
type recordingObserver struct {
	mu     sync.Mutex
	counts map[string]int
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{counts: make(map[string]int)}
}

func (o *recordingObserver) ObserveBatch(result string, n int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.counts[result] += n
}

func (o *recordingObserver) count(result string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.counts[result]
}

func testEvent(id string) *domain.Event {
	e := domain.NewEvent("owner-1", domain.EventTypePageView, "", "", "visitor-1")
	e.ID = id
	e.CreatedAt = testCreatedAt
	return e
}

// ackRecorder builds envelopes whose ack/nack report the event id on channels.
type ackRecorder struct {
	acked  chan string
	nacked chan string
}

func newAckRecorder(size int) *ackRecorder {
	return &ackRecorder{
		acked:  make(chan string, size),
		nacked: make(chan string, size),
	}
}

func (r *ackRecorder) envelope(id string) *Envelope {
	return NewEnvelope(testEvent(id),
		func(context.Context) error { r.acked <- id; return nil },
		func(context.Context) error { r.nacked <- id; return nil },
	)
}

// collect reads n ids from ch or gives up after timeout.
func collect(ch <-chan string, n int, timeout time.Duration) []string {
	var ids []string
	deadline := time.After(timeout)
	for len(ids) < n {
		select {
		case id := <-ch:
			ids = append(ids, id)
		case <-deadline:
			return ids
		}
	}
	return ids
}
