package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"go.uber.org/zap"

	"github.com/heyemlee/quicklink-app/internal/domain"
	"github.com/heyemlee/quicklink-app/internal/repository"
)

const eventColumns = `id, owner_id, event_type, platform, platform_type, visitor_id, created_at`

// Repository implements EventRepository for ClickHouse. Redelivered events
// collapse on (owner_id, created_at, id) through ReplacingMergeTree and reads
// use FINAL.
type Repository struct {
	client *Client
	log    *zap.Logger
}

var _ repository.EventRepository = (*Repository)(nil)

func NewRepository(client *Client, log *zap.Logger) *Repository {
	return &Repository{
		client: client,
		log:    log,
	}
}

// InitSchema creates the events table if it does not exist.
func (r *Repository) InitSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS analytics_events (
		id String,
		owner_id String,
		event_type LowCardinality(String),
		platform Nullable(String),
		platform_type LowCardinality(Nullable(String)),
		visitor_id Nullable(String),
		created_at DateTime64(3, 'UTC'),
		version UInt64
	) ENGINE = ReplacingMergeTree(version)
	PARTITION BY toYYYYMM(created_at)
	ORDER BY (owner_id, created_at, id)
	SETTINGS index_granularity = 8192
	`

	if err := r.client.Conn().Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create analytics_events table: %w", err)
	}

	r.log.Info("ClickHouse schema initialized")
	return nil
}

func (r *Repository) Append(ctx context.Context, event *domain.Event) error {
	_, err := r.InsertBatch(ctx, []*domain.Event{event})
	return err
}

// InsertBatch sends the events as one native batch. The count is the number
// sent; duplicates are only removed at merge time.
func (r *Repository) InsertBatch(ctx context.Context, events []*domain.Event) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	batch, err := r.client.Conn().PrepareBatch(ctx, "INSERT INTO analytics_events ("+eventColumns+", version)")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare batch: %w", err)
	}

	version := uint64(time.Now().UnixNano())
	for _, event := range events {
		if err := batch.Append(append(toRow(event), version)...); err != nil {
			return 0, fmt.Errorf("failed to append event %s to batch: %w", event.ID, err)
		}
	}

	if err := batch.Send(); err != nil {
		return 0, fmt.Errorf("failed to send batch: %w", err)
	}

	return len(events), nil
}

func (r *Repository) QueryByOwnerAndRange(ctx context.Context, query repository.EventQuery) ([]*domain.Event, error) {
	rows, err := r.client.Conn().Query(ctx, `
		SELECT `+eventColumns+`
		FROM analytics_events FINAL
		WHERE owner_id = ? AND created_at >= ? AND created_at <= ?
		ORDER BY created_at DESC, id DESC`,
		query.OwnerID, query.From, query.To,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer func(rows driver.Rows) {
		if err := rows.Close(); err != nil {
			r.log.Error("Failed to close event rows", zap.Error(err))
		}
	}(rows)

	events := make([]*domain.Event, 0)
	for rows.Next() {
		var row eventRow
		if err := rows.Scan(row.dest()...); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, row.event())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}

	return events, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Conn().Ping(ctx)
}

func (r *Repository) Close() error {
	return r.client.Close()
}
