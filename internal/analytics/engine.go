// Package analytics aggregates an owner's raw event log into the dashboard
// report: summary counts, platform rankings, trends, hourly distribution
// and the recent activity feed.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/heyemlee/quicklink-app/internal/domain"
	"github.com/heyemlee/quicklink-app/internal/period"
)

const (
	// RecentActivityLimit caps the activity feed.
	RecentActivityLimit = 20
	// MonthlyTrendLimit caps the all-time monthly series.
	MonthlyTrendLimit = 12
	// DailyTrendDays is the length of the trailing daily series.
	DailyTrendDays = 7

	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
)

// Aggregate builds the report for events, which must be the store result for
// window ordered by CreatedAt descending. now is the request's single clock
// reading; its location drives every calendar and hour-of-day bucket.
func Aggregate(events []*domain.Event, sel period.Selector, window period.Window, now time.Time) *Report {
	loc := now.Location()

	report := &Report{
		Summary:       summarize(events),
		PlatformStats: rankPlatforms(events),
		Trends: Trends{
			Hourly: hourlyDistribution(events, loc),
		},
		RecentActivities: recentActivities(events),
	}

	report.Summary.Period = window.Label
	report.Summary.DateRange = DateRange{Start: window.Start, End: window.End}

	if sel.All {
		report.Trends.Daily = monthlyTrend(events, loc)
	} else {
		report.Trends.Daily = dailyTrend(events, now)
	}

	return report
}

func summarize(events []*domain.Event) Summary {
	var s Summary
	visitors := make(map[string]struct{})

	for _, e := range events {
		switch e.EventType {
		case domain.EventTypePageView:
			s.TotalViews++
		case domain.EventTypeSaveContact:
			s.TotalSaveContacts++
		case domain.EventTypePlatformClick:
			s.TotalPlatformClicks++
		}

		if v := e.Visitor(); v != "" {
			visitors[v] = struct{}{}
		}
	}

	s.UniqueVisitors = len(visitors)
	return s
}

// rankPlatforms groups clicks by platform id. The first platformType seen for
// an id is kept for all of its clicks.
func rankPlatforms(events []*domain.Event) PlatformStats {
	var order []*PlatformStat
	byPlatform := make(map[string]*PlatformStat)

	for _, e := range events {
		if e.EventType != domain.EventTypePlatformClick {
			continue
		}
		name := e.PlatformName()
		if name == "" {
			continue
		}

		stat, ok := byPlatform[name]
		if !ok {
			stat = &PlatformStat{Platform: name, PlatformType: e.PlatformKind()}
			byPlatform[name] = stat
			order = append(order, stat)
		}
		stat.Count++
	}

	stats := PlatformStats{
		Follow: make([]PlatformStat, 0),
		Review: make([]PlatformStat, 0),
	}
	for _, stat := range order {
		switch stat.PlatformType {
		case domain.PlatformTypeFollow:
			stats.Follow = append(stats.Follow, *stat)
		case domain.PlatformTypeReview:
			stats.Review = append(stats.Review, *stat)
		}
	}

	rankByCount(stats.Follow)
	rankByCount(stats.Review)

	return stats
}

// rankByCount sorts descending by count, keeping first-seen order on ties,
// and fills Percent relative to the top entry.
func rankByCount(stats []PlatformStat) {
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})

	if len(stats) == 0 || stats[0].Count == 0 {
		return
	}
	top := float64(stats[0].Count)
	for i := range stats {
		stats[i].Percent = math.Round(float64(stats[i].Count)*1000/top) / 10
	}
}

// monthlyTrend counts page views per calendar month. Only months with views
// appear, ascending, and only the latest MonthlyTrendLimit are kept.
func monthlyTrend(events []*domain.Event, loc *time.Location) []TrendPoint {
	counts := make(map[string]int)
	for _, e := range events {
		if e.EventType != domain.EventTypePageView {
			continue
		}
		counts[e.CreatedAt.In(loc).Format(monthLayout)]++
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if len(keys) > MonthlyTrendLimit {
		keys = keys[len(keys)-MonthlyTrendLimit:]
	}

	points := make([]TrendPoint, 0, len(keys))
	for _, k := range keys {
		points = append(points, TrendPoint{Date: k, Count: counts[k]})
	}
	return points
}

// dailyTrend always covers the DailyTrendDays calendar days ending on now's
// date, whatever window the events were fetched for. Empty days count zero.
func dailyTrend(events []*domain.Event, now time.Time) []TrendPoint {
	loc := now.Location()

	counts := make(map[string]int)
	for _, e := range events {
		if e.EventType != domain.EventTypePageView {
			continue
		}
		counts[e.CreatedAt.In(loc).Format(dayLayout)]++
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	points := make([]TrendPoint, DailyTrendDays)
	for i := range points {
		key := today.AddDate(0, 0, i-(DailyTrendDays-1)).Format(dayLayout)
		points[i] = TrendPoint{Date: key, Count: counts[key]}
	}
	return points
}

func hourlyDistribution(events []*domain.Event, loc *time.Location) []HourBucket {
	buckets := make([]HourBucket, 24)
	for h := range buckets {
		buckets[h].Hour = h
	}
	for _, e := range events {
		buckets[e.CreatedAt.In(loc).Hour()].Count++
	}
	return buckets
}

func recentActivities(events []*domain.Event) []Activity {
	n := len(events)
	if n > RecentActivityLimit {
		n = RecentActivityLimit
	}

	activities := make([]Activity, 0, n)
	for _, e := range events[:n] {
		activities = append(activities, Activity{
			EventType:    e.EventType,
			Platform:     e.Platform,
			PlatformType: e.PlatformType,
			CreatedAt:    e.CreatedAt,
		})
	}
	return activities
}
