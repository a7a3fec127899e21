package service

import (
	"context"
	"time"

	"github.com/heyemlee/quicklink-app/internal/analytics"
	"github.com/heyemlee/quicklink-app/internal/dto"
)

// EventServicer defines the ingestion operations used by the handler
type EventServicer interface {
	TrackEvent(ctx context.Context, req *dto.TrackEventRequest) (string, error)
}

// AnalyticsServicer defines the dashboard read operations used by the handler
type AnalyticsServicer interface {
	GetAnalytics(ctx context.Context, ownerID string, query *dto.AnalyticsQuery) (*analytics.Report, error)
	DefaultOwnerSlug(ctx context.Context) (string, error)
}

// IDGenerator issues event ids. idgen.Generator satisfies it.
type IDGenerator interface {
	NewID() (string, error)
}

// Recorder receives service metrics. metrics.Metrics satisfies it.
type Recorder interface {
	ObserveIngest(eventType, result string)
	ObserveQuery(period string, d time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) ObserveIngest(string, string) {}
func (noopRecorder) ObserveQuery(string, time.Duration) {}
