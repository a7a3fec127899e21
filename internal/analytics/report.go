package analytics

import (
	"time"

	"github.com/heyemlee/quicklink-app/internal/domain"
)

// Report is the dashboard payload for one owner and one period.
type Report struct {
	Summary          Summary       `json:"summary" yaml:"summary"`
	PlatformStats    PlatformStats `json:"platformStats" yaml:"platformStats"`
	Trends           Trends        `json:"trends" yaml:"trends"`
	RecentActivities []Activity    `json:"recentActivities" yaml:"recentActivities"`
}

type Summary struct {
	TotalViews          int       `json:"totalViews" yaml:"totalViews"`
	TotalSaveContacts   int       `json:"totalSaveContacts" yaml:"totalSaveContacts"`
	TotalPlatformClicks int       `json:"totalPlatformClicks" yaml:"totalPlatformClicks"`
	UniqueVisitors      int       `json:"uniqueVisitors" yaml:"uniqueVisitors"`
	Period              string    `json:"period" yaml:"period"`
	DateRange           DateRange `json:"dateRange" yaml:"dateRange"`
}

type DateRange struct {
	Start time.Time `json:"start" yaml:"start"`
	End   time.Time `json:"end" yaml:"end"`
}

// PlatformStat is the click count for one platform. Percent is the count
// relative to the top platform of the same list.
type PlatformStat struct {
	Platform     string              `json:"platform" yaml:"platform"`
	PlatformType domain.PlatformType `json:"platformType" yaml:"platformType"`
	Count        int                 `json:"count" yaml:"count"`
	Percent      float64             `json:"percent" yaml:"percent"`
}

type PlatformStats struct {
	Follow []PlatformStat `json:"follow" yaml:"follow"`
	Review []PlatformStat `json:"review" yaml:"review"`
}

// TrendPoint is a calendar bucket keyed YYYY-MM-DD (daily) or YYYY-MM (monthly).
type TrendPoint struct {
	Date  string `json:"date" yaml:"date"`
	Count int    `json:"count" yaml:"count"`
}

type HourBucket struct {
	Hour  int `json:"hour" yaml:"hour"`
	Count int `json:"count" yaml:"count"`
}

type Trends struct {
	Daily  []TrendPoint `json:"daily" yaml:"daily"`
	Hourly []HourBucket `json:"hourly" yaml:"hourly"`
}

type Activity struct {
	EventType    domain.EventType     `json:"eventType" yaml:"eventType"`
	Platform     *string              `json:"platform" yaml:"platform"`
	PlatformType *domain.PlatformType `json:"platformType" yaml:"platformType"`
	CreatedAt    time.Time            `json:"createdAt" yaml:"createdAt"`
}
