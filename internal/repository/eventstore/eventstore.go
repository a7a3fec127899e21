// Package eventstore picks the event store backend named by EVENT_STORE.
package eventstore

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/heyemlee/quicklink-app/internal/config"
	"github.com/heyemlee/quicklink-app/internal/repository"
	"github.com/heyemlee/quicklink-app/internal/repository/clickhouse"
	"github.com/heyemlee/quicklink-app/internal/repository/postgres"
)

// Open returns the configured event store and a func releasing it. The
// postgres driver reuses pg, which the caller keeps ownership of.
func Open(ctx context.Context, cfg *config.Config, pg *postgres.Store, log *zap.Logger) (repository.EventRepository, func() error, error) {
	switch cfg.Service.EventStore {
	case config.EventStorePostgres, "":
		return pg, func() error { return nil }, nil

	case config.EventStoreClickHouse:
		client, err := clickhouse.NewClient(ctx, &cfg.ClickHouse, log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create ClickHouse client: %w", err)
		}

		repo := clickhouse.NewRepository(client, log)
		if err := repo.InitSchema(ctx); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to initialize ClickHouse schema: %w", err)
		}
		return repo, repo.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported event store %q", cfg.Service.EventStore)
	}
}
