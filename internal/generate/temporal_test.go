package generate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSeasonMultiplier(t *testing.T) {
	cases := []struct {
		date time.Time
		want float64
	}{
		{date(2025, time.December, 15), 1.3},
		{date(2026, time.January, 2), 1.3},
		{date(2026, time.July, 20), 1.15},
		{date(2026, time.August, 1), 1.15},
		{date(2026, time.February, 10), 0.9},
		{date(2026, time.March, 31), 0.9},
		{date(2026, time.May, 5), 1.0},
		{date(2026, time.October, 12), 1.0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SeasonMultiplier(tc.date), "month %s", tc.date.Month())
	}
}

func TestWeekdayMultiplier(t *testing.T) {
	// 2026-08-28 is a Friday.
	assert.Equal(t, 1.4, WeekdayMultiplier(date(2026, time.August, 28)))
	assert.Equal(t, 1.3, WeekdayMultiplier(date(2026, time.August, 29)))
	assert.Equal(t, 1.1, WeekdayMultiplier(date(2026, time.August, 30)))
	assert.Equal(t, 1.0, WeekdayMultiplier(date(2026, time.August, 31))) // Monday
	assert.Equal(t, 1.0, WeekdayMultiplier(date(2026, time.August, 26))) // Wednesday
}

func TestMultipliersAreDeterministic(t *testing.T) {
	d := date(2026, time.January, 9)
	for i := 0; i < 10; i++ {
		assert.Equal(t, SeasonMultiplier(d), SeasonMultiplier(d))
		assert.Equal(t, WeekdayMultiplier(d), WeekdayMultiplier(d))
	}
}
