package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/heyemlee/quicklink-app/internal/clock"
	"github.com/heyemlee/quicklink-app/internal/domain"
	"github.com/heyemlee/quicklink-app/internal/dto"
	"github.com/heyemlee/quicklink-app/internal/metrics"
	"github.com/heyemlee/quicklink-app/internal/notify"
	"github.com/heyemlee/quicklink-app/internal/queue"
	"github.com/heyemlee/quicklink-app/internal/repository"
)

// EventService validates and records visitor events. With a queue publisher
// the event is handed to the queue instead of being appended in-request.
type EventService struct {
	owners    repository.OwnerRepository
	store     repository.EventRepository
	publisher queue.QueuePublisher
	notifier  notify.Publisher
	subject   string
	ids       IDGenerator
	clock     clock.Clock
	metrics   Recorder
	log       *zap.Logger
}

type EventServiceConfig struct {
	Owners repository.OwnerRepository
	Store  repository.EventRepository
	// Publisher switches the service to queued ingestion when set.
	Publisher queue.QueuePublisher
	Notifier  notify.Publisher
	Subject   string
	IDs       IDGenerator
	Clock     clock.Clock
	Metrics   Recorder
}

func NewEventService(cfg EventServiceConfig, log *zap.Logger) *EventService {
	s := &EventService{
		owners:    cfg.Owners,
		store:     cfg.Store,
		publisher: cfg.Publisher,
		notifier:  cfg.Notifier,
		subject:   cfg.Subject,
		ids:       cfg.IDs,
		clock:     cfg.Clock,
		metrics:   cfg.Metrics,
		log:       log,
	}
	if s.notifier == nil {
		s.notifier = &notify.NoopPublisher{}
	}
	if s.subject == "" {
		s.subject = notify.SubjectEventRecorded
	}
	if s.clock == nil {
		s.clock = clock.System{}
	}
	if s.metrics == nil {
		s.metrics = noopRecorder{}
	}
	return s
}

// TrackEvent validates req, resolves the owner and records one event,
// returning its id. Checks run in a fixed order and stop at the first failure.
func (s *EventService) TrackEvent(ctx context.Context, req *dto.TrackEventRequest) (string, error) {
	eventType := domain.EventType(req.EventType)

	event, err := s.buildEvent(ctx, req)
	if err != nil {
		result := metrics.ResultFailed
		if domain.IsClientError(err) {
			result = metrics.ResultRejected
		}
		if !eventType.Valid() {
			eventType = ""
		}
		s.metrics.ObserveIngest(string(eventType), result)
		return "", err
	}

	if err := s.deliver(ctx, event); err != nil {
		s.metrics.ObserveIngest(string(eventType), metrics.ResultFailed)
		return "", fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}

	s.metrics.ObserveIngest(string(eventType), metrics.ResultAccepted)
	return event.ID, nil
}

func (s *EventService) buildEvent(ctx context.Context, req *dto.TrackEventRequest) (*domain.Event, error) {
	if req.Slug == "" || req.EventType == "" {
		return nil, domain.ErrMissingParameter
	}

	eventType := domain.EventType(req.EventType)
	if !eventType.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidEventType, req.EventType)
	}

	platformType := domain.PlatformType(req.PlatformType)
	if eventType == domain.EventTypePlatformClick {
		if req.Platform == "" || req.PlatformType == "" {
			return nil, domain.ErrMissingPlatformFields
		}
		if !platformType.Valid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPlatformType, req.PlatformType)
		}
	}

	owner, err := s.owners.FindBySlug(ctx, req.Slug)
	if errors.Is(err, domain.ErrOwnerNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to look up owner: %w", domain.ErrStoreUnavailable, err)
	}

	if eventType == domain.EventTypePlatformClick && !owner.Offers(platformType, req.Platform) {
		s.log.Warn("Click on a platform the owner has not enabled",
			zap.String("owner_id", owner.ID),
			zap.String("platform", req.Platform),
			zap.String("platform_type", req.PlatformType))
	}

	id, err := s.ids.NewID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate event id: %w", err)
	}

	event := domain.NewEvent(owner.ID, eventType, req.Platform, platformType, req.VisitorID)
	event.ID = id
	event.CreatedAt = s.clock.Now()

	return event, nil
}

func (s *EventService) deliver(ctx context.Context, event *domain.Event) error {
	if s.publisher != nil {
		if err := s.publisher.PublishEvent(ctx, event); err != nil {
			return fmt.Errorf("failed to publish event to queue: %w", err)
		}
		return nil
	}

	if err := s.store.Append(ctx, event); err != nil {
		return fmt.Errorf("failed to append event: %w", err)
	}

	if err := s.notifier.Publish(ctx, s.subject, notify.NewEventRecorded(event)); err != nil {
		s.log.Warn("Failed to publish event notification",
			zap.String("event_id", event.ID),
			zap.Error(err))
	}

	return nil
}
