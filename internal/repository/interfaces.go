package repository

import (
	"context"
	"time"

	"github.com/heyemlee/quicklink-app/internal/domain"
)

// EventQuery selects one owner's events in an inclusive time range.
type EventQuery struct {
	OwnerID string
	From    time.Time
	To      time.Time
}

// EventRepository defines the interface for event storage operations
type EventRepository interface {
	// Append stores a single event
	Append(ctx context.Context, event *domain.Event) error

	// InsertBatch stores a batch of events and returns how many were written.
	// Events whose id already exists are skipped.
	InsertBatch(ctx context.Context, events []*domain.Event) (int, error)

	// QueryByOwnerAndRange returns the owner's events with From <= createdAt <= To,
	// newest first
	QueryByOwnerAndRange(ctx context.Context, query EventQuery) ([]*domain.Event, error)

	// Ping checks if the database connection is alive
	Ping(ctx context.Context) error

	// Close closes the repository and releases resources
	Close() error
}

// OwnerRepository reads owner records maintained by the profile service.
type OwnerRepository interface {
	// FindBySlug returns domain.ErrOwnerNotFound when no owner has the slug
	FindBySlug(ctx context.Context, slug string) (*domain.Owner, error)
}

// SessionRepository looks up owner sessions by the sha256 of their token.
type SessionRepository interface {
	// FindSession returns domain.ErrUnauthorized when the hash is unknown or
	// the session expired before now
	FindSession(ctx context.Context, tokenHash string, now time.Time) (*domain.Session, error)
}
