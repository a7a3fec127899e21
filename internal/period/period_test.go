package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heyemlee/quicklink-app/internal/domain"
)

var testNow = time.Date(2025, time.October, 16, 14, 30, 0, 0, time.UTC)

func TestParseSelector(t *testing.T) {
	tests := []struct {
		name      string
		all       string
		year      string
		month     string
		want      Selector
		wantKind  string
		wantError bool
	}{
		{name: "empty is default", want: Selector{}, wantKind: "default"},
		{name: "all true", all: "true", year: "2024", month: "3", want: Selector{All: true}, wantKind: "all"},
		{name: "all other value ignored", all: "1", want: Selector{}, wantKind: "default"},
		{name: "year only", year: "2024", want: Selector{Year: 2024}, wantKind: "year"},
		{name: "year and month", year: "2025", month: "6", want: Selector{Year: 2025, Month: 6}, wantKind: "month"},
		{name: "month without year", month: "6", want: Selector{}, wantKind: "default"},
		{name: "bad year", year: "abc", wantError: true},
		{name: "bad month", year: "2025", month: "13", wantError: true},
		{name: "zero month", year: "2025", month: "0", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := ParseSelector(tt.all, tt.year, tt.month)
			if tt.wantError {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, sel)
			assert.Equal(t, tt.wantKind, sel.Kind())
		})
	}
}

func TestResolve_AllTime(t *testing.T) {
	w := Resolve(Selector{All: true}, testNow)

	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, testNow, w.End)
	assert.Equal(t, "All Time", w.Label)
}

func TestResolve_PastMonth(t *testing.T) {
	w := Resolve(Selector{Year: 2025, Month: 6}, testNow)

	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2025, time.June, 30, 23, 59, 59, int(999*time.Millisecond), time.UTC), w.End)
	assert.Equal(t, "June 2025", w.Label)
}

func TestResolve_CurrentMonthTracksNow(t *testing.T) {
	w := Resolve(Selector{Year: 2025, Month: 10}, testNow)

	assert.Equal(t, time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, testNow, w.End)
	assert.Equal(t, "October 1-16, 2025", w.Label)
}

func TestResolve_FebruaryLeapYear(t *testing.T) {
	w := Resolve(Selector{Year: 2024, Month: 2}, testNow)

	assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, int(999*time.Millisecond), time.UTC), w.End)
	assert.Equal(t, "February 2024", w.Label)
}

func TestResolve_Year(t *testing.T) {
	w := Resolve(Selector{Year: 2024}, testNow)

	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2024, time.December, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC), w.End)
	assert.Equal(t, "2024", w.Label)
}

func TestResolve_Default(t *testing.T) {
	w := Resolve(Selector{}, testNow)

	assert.Equal(t, time.Date(2025, time.September, 16, 14, 30, 0, 0, time.UTC), w.Start)
	assert.Equal(t, testNow, w.End)
	assert.Equal(t, "Last 30 Days", w.Label)
}

func TestResolve_UsesLocationOfNow(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	now := time.Date(2025, time.March, 5, 9, 0, 0, 0, loc)

	w := Resolve(Selector{Year: 2025, Month: 1}, now)

	assert.Equal(t, loc, w.Start.Location())
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, loc), w.Start)
}
