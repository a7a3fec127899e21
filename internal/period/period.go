// Package period turns the dashboard's all/year/month query parameters into
// a concrete reporting window.
package period

import (
	"fmt"
	"strconv"
	"time"

	"github.com/heyemlee/quicklink-app/internal/domain"
)

// Selector is a parsed period selection. Year and Month are zero when absent.
type Selector struct {
	All   bool
	Year  int
	Month int
}

// Kind names the selector shape: "all", "month", "year" or "default".
func (s Selector) Kind() string {
	switch {
	case s.All:
		return "all"
	case s.Year != 0 && s.Month != 0:
		return "month"
	case s.Year != 0:
		return "year"
	default:
		return "default"
	}
}

// Window is a resolved reporting range. Both bounds are inclusive.
type Window struct {
	Start time.Time
	End   time.Time
	Label string
}

// ParseSelector reads the raw query values. all must be exactly "true";
// month is only honoured together with year.
func ParseSelector(all, year, month string) (Selector, error) {
	if all == "true" {
		return Selector{All: true}, nil
	}
	if year == "" {
		return Selector{}, nil
	}

	y, err := strconv.Atoi(year)
	if err != nil || y < 1 || y > 9999 {
		return Selector{}, fmt.Errorf("%w: year %q", domain.ErrInvalidPeriod, year)
	}

	sel := Selector{Year: y}
	if month == "" {
		return sel, nil
	}

	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return Selector{}, fmt.Errorf("%w: month %q", domain.ErrInvalidPeriod, month)
	}
	sel.Month = m

	return sel, nil
}

// AllTimeStart is the first instant covered by the all-time view, in loc.
func AllTimeStart(loc *time.Location) time.Time {
	return time.Date(2025, time.January, 1, 0, 0, 0, 0, loc)
}

// Resolve maps sel to a window relative to now, using now's location for
// calendar boundaries. A month selector naming the current month ends at now.
func Resolve(sel Selector, now time.Time) Window {
	loc := now.Location()

	switch sel.Kind() {
	case "all":
		return Window{
			Start: AllTimeStart(loc),
			End:   now,
			Label: "All Time",
		}

	case "month":
		month := time.Month(sel.Month)
		start := time.Date(sel.Year, month, 1, 0, 0, 0, 0, loc)

		if sel.Year == now.Year() && month == now.Month() {
			return Window{
				Start: start,
				End:   now,
				Label: fmt.Sprintf("%s %d-%d, %d", month, start.Day(), now.Day(), sel.Year),
			}
		}

		return Window{
			Start: start,
			End:   start.AddDate(0, 1, 0).Add(-time.Millisecond),
			Label: fmt.Sprintf("%s %d", month, sel.Year),
		}

	case "year":
		start := time.Date(sel.Year, time.January, 1, 0, 0, 0, 0, loc)
		return Window{
			Start: start,
			End:   start.AddDate(1, 0, 0).Add(-time.Millisecond),
			Label: strconv.Itoa(sel.Year),
		}

	default:
		return Window{
			Start: now.AddDate(0, 0, -30),
			End:   now,
			Label: "Last 30 Days",
		}
	}
}
