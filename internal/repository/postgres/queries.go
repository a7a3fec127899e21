package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/heyemlee/quicklink-app/internal/domain"
	"github.com/heyemlee/quicklink-app/internal/repository"
)

// eventColumns is the column list used for SELECT statements on analytics_events.
const eventColumns = `id, owner_id, event_type, platform, platform_type, visitor_id, created_at`

// executor is the interface satisfied by both *sql.DB and *sql.Tx.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// queryInsertEvent returns 1 when the row was written and 0 when the id existed.
func queryInsertEvent(ctx context.Context, db executor, e *domain.Event) (int, error) {
	res, err := db.ExecContext(ctx, `
		INSERT INTO analytics_events (`+eventColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING`,
		e.ID,
		e.OwnerID,
		string(e.EventType),
		nullString(e.PlatformName()),
		nullString(string(e.PlatformKind())),
		nullString(e.Visitor()),
		e.CreatedAt,
	)
	if err != nil {
		return 0, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func queryEventsByOwnerAndRange(ctx context.Context, db executor, q repository.EventQuery) ([]*domain.Event, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT `+eventColumns+`
		FROM analytics_events
		WHERE owner_id = $1 AND created_at >= $2 AND created_at <= $3
		ORDER BY created_at DESC, id DESC`,
		q.OwnerID, q.From, q.To,
	)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	return events, nil
}

func queryOwnerBySlug(ctx context.Context, db executor, slug string) (*domain.Owner, error) {
	row := db.QueryRowContext(ctx, `
		SELECT id, slug, follow_platforms, review_platforms, created_at
		FROM owners WHERE slug = $1`, slug)

	var o domain.Owner
	err := row.Scan(&o.ID, &o.Slug, &o.FollowPlatforms, &o.ReviewPlatforms, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOwnerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query owner: %w", err)
	}
	return &o, nil
}

func querySession(ctx context.Context, db executor, tokenHash string, now time.Time) (*domain.Session, error) {
	row := db.QueryRowContext(ctx, `
		SELECT owner_id, expires_at
		FROM owner_sessions
		WHERE token_hash = $1 AND expires_at > $2`, tokenHash, now)

	var s domain.Session
	err := row.Scan(&s.OwnerID, &s.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("query session: %w", err)
	}
	return &s, nil
}
