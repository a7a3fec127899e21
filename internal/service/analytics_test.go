package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/heyemlee/quicklink-app/internal/clock"
	"github.com/heyemlee/quicklink-app/internal/domain"
	"github.com/heyemlee/quicklink-app/internal/dto"
	"github.com/heyemlee/quicklink-app/internal/repository"
)

func newTestAnalyticsService(defaultSlug string) (*AnalyticsService, *MockEventRepository, *MockOwnerRepository, *MockRecorder) {
	events := new(MockEventRepository)
	owners := new(MockOwnerRepository)
	recorder := new(MockRecorder)
	svc := NewAnalyticsService(events, owners, clock.Fixed(testNow), defaultSlug, recorder, zap.NewNop())
	return svc, events, owners, recorder
}

func pageView(id string, at time.Time, visitor string) *domain.Event {
	e := domain.NewEvent("owner-1", domain.EventTypePageView, "", "", visitor)
	e.ID = id
	e.CreatedAt = at
	return e
}

func TestAnalyticsService_GetAnalytics_Default(t *testing.T) {
	svc, events, _, recorder := newTestAnalyticsService("")

	want := repository.EventQuery{
		OwnerID: "owner-1",
		From:    testNow.AddDate(0, 0, -30),
		To:      testNow,
	}
	events.On("QueryByOwnerAndRange", mock.Anything, want).Return([]*domain.Event{
		pageView("e2", testNow.Add(-time.Hour), "v1"),
		pageView("e1", testNow.Add(-26*time.Hour), "v1"),
	}, nil).Once()
	recorder.On("ObserveQuery", "default", mock.AnythingOfType("time.Duration")).Once()

	report, err := svc.GetAnalytics(context.Background(), "owner-1", &dto.AnalyticsQuery{})

	require.NoError(t, err)
	assert.Equal(t, 2, report.Summary.TotalViews)
	assert.Equal(t, 1, report.Summary.UniqueVisitors)
	assert.Equal(t, "Last 30 Days", report.Summary.Period)
	assert.Len(t, report.Trends.Daily, 7)
	assert.Len(t, report.RecentActivities, 2)
	events.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestAnalyticsService_GetAnalytics_PastMonth(t *testing.T) {
	svc, events, _, recorder := newTestAnalyticsService("")

	events.On("QueryByOwnerAndRange", mock.Anything, mock.MatchedBy(func(q repository.EventQuery) bool {
		return q.From.Equal(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)) &&
			q.To.Equal(time.Date(2025, time.June, 30, 23, 59, 59, int(999*time.Millisecond), time.UTC))
	})).Return([]*domain.Event{}, nil).Once()
	recorder.On("ObserveQuery", "month", mock.Anything).Once()

	report, err := svc.GetAnalytics(context.Background(), "owner-1", &dto.AnalyticsQuery{Year: "2025", Month: "6"})

	require.NoError(t, err)
	assert.Equal(t, "June 2025", report.Summary.Period)
	assert.Empty(t, report.RecentActivities)
	events.AssertExpectations(t)
}

func TestAnalyticsService_GetAnalytics_AllTimeUsesMonthlySeries(t *testing.T) {
	svc, events, _, recorder := newTestAnalyticsService("")

	events.On("QueryByOwnerAndRange", mock.Anything, mock.MatchedBy(func(q repository.EventQuery) bool {
		return q.From.Equal(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)) && q.To.Equal(testNow)
	})).Return([]*domain.Event{
		pageView("e2", time.Date(2025, time.March, 2, 8, 0, 0, 0, time.UTC), ""),
		pageView("e1", time.Date(2025, time.February, 2, 8, 0, 0, 0, time.UTC), ""),
	}, nil).Once()
	recorder.On("ObserveQuery", "all", mock.Anything).Once()

	report, err := svc.GetAnalytics(context.Background(), "owner-1", &dto.AnalyticsQuery{All: "true"})

	require.NoError(t, err)
	require.Len(t, report.Trends.Daily, 2)
	assert.Equal(t, "2025-02", report.Trends.Daily[0].Date)
	assert.Equal(t, "2025-03", report.Trends.Daily[1].Date)
}

func TestAnalyticsService_GetAnalytics_InvalidPeriod(t *testing.T) {
	svc, events, _, recorder := newTestAnalyticsService("")

	_, err := svc.GetAnalytics(context.Background(), "owner-1", &dto.AnalyticsQuery{Year: "2025", Month: "13"})

	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
	events.AssertNotCalled(t, "QueryByOwnerAndRange", mock.Anything, mock.Anything)
	recorder.AssertNotCalled(t, "ObserveQuery", mock.Anything, mock.Anything)
}

func TestAnalyticsService_GetAnalytics_StoreFailure(t *testing.T) {
	svc, events, _, _ := newTestAnalyticsService("")

	events.On("QueryByOwnerAndRange", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	report, err := svc.GetAnalytics(context.Background(), "owner-1", &dto.AnalyticsQuery{})

	assert.Nil(t, report)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestAnalyticsService_GetAnalyticsForSlug(t *testing.T) {
	svc, events, owners, recorder := newTestAnalyticsService("")

	owners.On("FindBySlug", mock.Anything, "alice").Return(testOwner(), nil)
	events.On("QueryByOwnerAndRange", mock.Anything, mock.MatchedBy(func(q repository.EventQuery) bool {
		return q.OwnerID == "owner-1"
	})).Return([]*domain.Event{}, nil).Once()
	recorder.On("ObserveQuery", "year", mock.Anything).Once()

	report, err := svc.GetAnalyticsForSlug(context.Background(), "alice", &dto.AnalyticsQuery{Year: "2024"})

	require.NoError(t, err)
	assert.Equal(t, "2024", report.Summary.Period)
	events.AssertExpectations(t)
}

func TestAnalyticsService_GetAnalyticsForSlug_UnknownOwner(t *testing.T) {
	svc, _, owners, _ := newTestAnalyticsService("")

	owners.On("FindBySlug", mock.Anything, "nobody").Return(nil, domain.ErrOwnerNotFound)

	_, err := svc.GetAnalyticsForSlug(context.Background(), "nobody", &dto.AnalyticsQuery{})

	assert.ErrorIs(t, err, domain.ErrOwnerNotFound)
}

func TestAnalyticsService_DefaultOwnerSlug(t *testing.T) {
	t.Run("configured owner exists", func(t *testing.T) {
		svc, _, owners, _ := newTestAnalyticsService("alice")
		owners.On("FindBySlug", mock.Anything, "alice").Return(testOwner(), nil)

		slug, err := svc.DefaultOwnerSlug(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "alice", slug)
	})

	t.Run("not configured", func(t *testing.T) {
		svc, _, owners, _ := newTestAnalyticsService("")

		_, err := svc.DefaultOwnerSlug(context.Background())

		assert.ErrorIs(t, err, domain.ErrOwnerNotFound)
		owners.AssertNotCalled(t, "FindBySlug", mock.Anything, mock.Anything)
	})

	t.Run("configured owner missing", func(t *testing.T) {
		svc, _, owners, _ := newTestAnalyticsService("ghost")
		owners.On("FindBySlug", mock.Anything, "ghost").Return(nil, domain.ErrOwnerNotFound)

		_, err := svc.DefaultOwnerSlug(context.Background())

		assert.ErrorIs(t, err, domain.ErrOwnerNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, _, owners, _ := newTestAnalyticsService("alice")
		owners.On("FindBySlug", mock.Anything, "alice").Return(nil, errors.New("timeout"))

		_, err := svc.DefaultOwnerSlug(context.Background())

		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})
}
