package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func snaps(spent ...float64) []MonthlySnapshot {
	out := make([]MonthlySnapshot, len(spent))
	for i, s := range spent {
		out[i] = MonthlySnapshot{TotalSpent: s}
	}
	return out
}

func TestClassifyTrendHysteresis(t *testing.T) {
	// Exactly 8% above the older average is still inside the band.
	assert.Equal(t, TrendStable, ClassifyTrend(snaps(100, 100, 100, 108, 108, 108)))
	assert.Equal(t, TrendIncreasing, ClassifyTrend(snaps(100, 100, 100, 109, 109, 109)))

	// Exactly 92% is still inside the band; below it flips to decreasing.
	assert.Equal(t, TrendStable, ClassifyTrend(snaps(100, 100, 100, 92, 92, 92)))
	assert.Equal(t, TrendDecreasing, ClassifyTrend(snaps(100, 100, 100, 91, 91, 91)))
}

func TestClassifyTrendShortHistory(t *testing.T) {
	// Fewer than three older months: comparison is a no-op.
	assert.Equal(t, TrendStable, ClassifyTrend(nil))
	assert.Equal(t, TrendStable, ClassifyTrend(snaps(500)))
	assert.Equal(t, TrendStable, ClassifyTrend(snaps(100, 900, 900, 900, 900)))
}

func TestProjectMonthlySpend(t *testing.T) {
	// Weighted blend 0.5/0.3/0.2, most recent weighted highest.
	assert.Equal(t, 230.0, ProjectMonthlySpend(snaps(100, 200, 300), 0))
	// Only the three most recent months participate.
	assert.Equal(t, 155.0, ProjectMonthlySpend(snaps(400, 100, 200, 300, 50), 0))
}

func TestProjectMonthlySpendFallback(t *testing.T) {
	assert.Equal(t, 123.45, ProjectMonthlySpend(snaps(100, 200), 123.45))
	assert.Equal(t, 80.0, ProjectMonthlySpend(nil, 80))
}

func TestRunwayMonths(t *testing.T) {
	assert.Equal(t, 4.0, RunwayMonths(1000, 250))
	assert.Equal(t, 3.3, RunwayMonths(1000, 300))
	assert.Zero(t, RunwayMonths(0, 250))
	assert.Zero(t, RunwayMonths(-50, 250))
	assert.Zero(t, RunwayMonths(1000, 0))
	assert.Zero(t, RunwayMonths(1000, -10))
}

func TestSavingsRate(t *testing.T) {
	assert.Equal(t, 75.0, SavingsRate(1000, 250))
	assert.Equal(t, 0.0, SavingsRate(0, 500))
	assert.Equal(t, 0.0, SavingsRate(1000, 1500)) // clamped at zero
	assert.Equal(t, 100.0, SavingsRate(1000, 0))
	assert.Equal(t, 33.0, SavingsRate(300, 200))
}
