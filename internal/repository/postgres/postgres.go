// Package postgres implements the owner, session and event repositories
// backed by PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/heyemlee/quicklink-app/internal/config"
	"github.com/heyemlee/quicklink-app/internal/domain"
	"github.com/heyemlee/quicklink-app/internal/repository"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store is the PostgreSQL repository for owners, sessions and events.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

var (
	_ repository.EventRepository   = (*Store)(nil)
	_ repository.OwnerRepository   = (*Store)(nil)
	_ repository.SessionRepository = (*Store)(nil)
)

// Open connects to the database and configures the pool. It does not
// migrate; use New for that.
func Open(ctx context.Context, cfg config.Postgres, log *zap.Logger) (*Store, error) {
	db, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeSec) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info("PostgreSQL connection established",
		zap.Int("maxOpenConns", cfg.MaxOpenConns),
		zap.Int("maxIdleConns", cfg.MaxIdleConns))

	return NewWithDB(db, log), nil
}

// New opens the database and applies pending migrations.
func New(ctx context.Context, cfg config.Postgres, log *zap.Logger) (*Store, error) {
	s, err := Open(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if _, err := s.Migrate(); err != nil {
		s.db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return s, nil
}

// NewWithDB wraps an existing handle.
func NewWithDB(db *sql.DB, log *zap.Logger) *Store {
	return &Store{db: db, log: log}
}

// Migrate applies every pending migration and returns the resulting schema version.
func (s *Store) Migrate() (uint, error) {
	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return 0, fmt.Errorf("create migration source: %w", err)
	}

	dbDriver, err := postgres.WithInstance(s.db, &postgres.Config{})
	if err != nil {
		return 0, fmt.Errorf("create migration db driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", dbDriver)
	if err != nil {
		return 0, fmt.Errorf("create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("schema version %d is dirty", version)
	}

	s.log.Info("PostgreSQL schema up to date", zap.Uint("version", version))
	return version, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Append(ctx context.Context, event *domain.Event) error {
	_, err := queryInsertEvent(ctx, s.db, event)
	return err
}

// InsertBatch writes the batch in one transaction. Ids that already exist
// are skipped, so redelivered queue messages are harmless.
func (s *Store) InsertBatch(ctx context.Context, events []*domain.Event) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}

	inserted := 0
	for _, event := range events {
		n, err := queryInsertEvent(ctx, tx, event)
		if err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("insert event %s: %w", event.ID, err)
		}
		inserted += n
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	if skipped := len(events) - inserted; skipped > 0 {
		s.log.Info("Skipped duplicate events", zap.Int("skipped", skipped))
	}

	return inserted, nil
}

func (s *Store) QueryByOwnerAndRange(ctx context.Context, query repository.EventQuery) ([]*domain.Event, error) {
	return queryEventsByOwnerAndRange(ctx, s.db, query)
}

func (s *Store) FindBySlug(ctx context.Context, slug string) (*domain.Owner, error) {
	return queryOwnerBySlug(ctx, s.db, slug)
}

func (s *Store) FindSession(ctx context.Context, tokenHash string, now time.Time) (*domain.Session, error) {
	return querySession(ctx, s.db, tokenHash, now)
}
