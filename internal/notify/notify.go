// Package notify announces recorded analytics events to other services.
package notify

import (
	"context"
	"time"

	"github.com/heyemlee/quicklink-app/internal/domain"
)

// SubjectEventRecorded is the default subject for recorded events.
const SubjectEventRecorded = "quicklink.analytics.recorded"

// EventRecorded is the notification payload. VisitorID is left out.
type EventRecorded struct {
	ID           string               `json:"id"`
	OwnerID      string               `json:"ownerId"`
	EventType    domain.EventType     `json:"eventType"`
	Platform     *string              `json:"platform"`
	PlatformType *domain.PlatformType `json:"platformType"`
	CreatedAt    time.Time            `json:"createdAt"`
}

func NewEventRecorded(e *domain.Event) EventRecorded {
	return EventRecorded{
		ID:           e.ID,
		OwnerID:      e.OwnerID,
		EventType:    e.EventType,
		Platform:     e.Platform,
		PlatformType: e.PlatformType,
		CreatedAt:    e.CreatedAt,
	}
}

// Publisher is the interface for emitting notifications.
type Publisher interface {
	Publish(ctx context.Context, subject string, payload any) error
	Close() error
}
