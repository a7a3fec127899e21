package clickhouse

import (
	"time"

	"github.com/heyemlee/quicklink-app/internal/domain"
)

// eventRow mirrors one analytics_events row in eventColumns order.
type eventRow struct {
	ID           string
	OwnerID      string
	EventType    string
	Platform     *string
	PlatformType *string
	VisitorID    *string
	CreatedAt    time.Time
}

func toRow(e *domain.Event) []any {
	var platformType *string
	if e.PlatformType != nil {
		s := string(*e.PlatformType)
		platformType = &s
	}

	return []any{
		e.ID,
		e.OwnerID,
		string(e.EventType),
		e.Platform,
		platformType,
		e.VisitorID,
		e.CreatedAt.UTC(),
	}
}

func (r *eventRow) dest() []any {
	return []any{
		&r.ID,
		&r.OwnerID,
		&r.EventType,
		&r.Platform,
		&r.PlatformType,
		&r.VisitorID,
		&r.CreatedAt,
	}
}

func (r *eventRow) event() *domain.Event {
	e := &domain.Event{
		ID:        r.ID,
		OwnerID:   r.OwnerID,
		EventType: domain.EventType(r.EventType),
		Platform:  r.Platform,
		VisitorID: r.VisitorID,
		CreatedAt: r.CreatedAt,
	}
	if r.PlatformType != nil {
		pt := domain.PlatformType(*r.PlatformType)
		e.PlatformType = &pt
	}
	return e
}
