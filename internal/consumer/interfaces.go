package consumer

import (
	"github.com/heyemlee/quicklink-app/internal/domain"
)

// MessageParser defines the interface for parsing raw message bytes into events
type MessageParser interface {
	Parse(body []byte) (*domain.Event, error)
}

// BatchObserver records batch outcomes. metrics.Metrics satisfies it.
type BatchObserver interface {
	ObserveBatch(result string, n int)
}

type noopObserver struct{}

func (noopObserver) ObserveBatch(string, int) {}
