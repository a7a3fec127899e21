package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/heyemlee/quicklink-app/internal/analytics"
	"github.com/heyemlee/quicklink-app/internal/clock"
	"github.com/heyemlee/quicklink-app/internal/domain"
	"github.com/heyemlee/quicklink-app/internal/dto"
	"github.com/heyemlee/quicklink-app/internal/period"
	"github.com/heyemlee/quicklink-app/internal/repository"
)

// AnalyticsService builds dashboard reports. It reads the clock once per
// request and hands that instant to both the resolver and the engine.
type AnalyticsService struct {
	events           repository.EventRepository
	owners           repository.OwnerRepository
	clock            clock.Clock
	defaultOwnerSlug string
	metrics          Recorder
	log              *zap.Logger
}

func NewAnalyticsService(events repository.EventRepository, owners repository.OwnerRepository, clk clock.Clock, defaultOwnerSlug string, recorder Recorder, log *zap.Logger) *AnalyticsService {
	if clk == nil {
		clk = clock.System{}
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &AnalyticsService{
		events:           events,
		owners:           owners,
		clock:            clk,
		defaultOwnerSlug: defaultOwnerSlug,
		metrics:          recorder,
		log:              log,
	}
}

func (s *AnalyticsService) GetAnalytics(ctx context.Context, ownerID string, query *dto.AnalyticsQuery) (*analytics.Report, error) {
	sel, err := period.ParseSelector(query.All, query.Year, query.Month)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	now := s.clock.Now()
	window := period.Resolve(sel, now)

	events, err := s.events.QueryByOwnerAndRange(ctx, repository.EventQuery{
		OwnerID: ownerID,
		From:    window.Start,
		To:      window.End,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query events: %w", domain.ErrStoreUnavailable, err)
	}

	report := analytics.Aggregate(events, sel, window, now)
	s.metrics.ObserveQuery(sel.Kind(), time.Since(started))

	s.log.Debug("Analytics report built",
		zap.String("owner_id", ownerID),
		zap.String("period", window.Label),
		zap.Int("event_count", len(events)))

	return report, nil
}

// GetAnalyticsForSlug is GetAnalytics for an owner named by slug.
func (s *AnalyticsService) GetAnalyticsForSlug(ctx context.Context, slug string, query *dto.AnalyticsQuery) (*analytics.Report, error) {
	owner, err := s.findOwner(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.GetAnalytics(ctx, owner.ID, query)
}

// DefaultOwnerSlug returns the configured public owner. Nothing is guessed
// when the setting is empty.
func (s *AnalyticsService) DefaultOwnerSlug(ctx context.Context) (string, error) {
	if s.defaultOwnerSlug == "" {
		return "", fmt.Errorf("%w: no default owner configured", domain.ErrOwnerNotFound)
	}

	owner, err := s.findOwner(ctx, s.defaultOwnerSlug)
	if err != nil {
		return "", err
	}
	return owner.Slug, nil
}

func (s *AnalyticsService) findOwner(ctx context.Context, slug string) (*domain.Owner, error) {
	owner, err := s.owners.FindBySlug(ctx, slug)
	if err == nil {
		return owner, nil
	}
	if errors.Is(err, domain.ErrOwnerNotFound) {
		return nil, err
	}
	return nil, fmt.Errorf("%w: failed to look up owner: %w", domain.ErrStoreUnavailable, err)
}
