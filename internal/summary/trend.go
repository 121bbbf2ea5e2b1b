package summary

import (
	"math"

	"ledgerlab/internal/core"
)

// Hysteresis band for trend classification. A trend only flips once the
// recent three-month average moves more than 8% past the older one, which
// keeps noisy month-to-month data from flapping between classifications.
const (
	trendUpperBand = 1.08
	trendLowerBand = 0.92
)

// Projection weights over the three most recent months, most recent first.
var projectionWeights = [3]float64{0.5, 0.3, 0.2}

// ClassifyTrend compares the mean spend of the most recent three months to
// the mean of the three before that. With fewer than three older months the
// older average falls back to the recent one, making the comparison a no-op.
func ClassifyTrend(snapshots []MonthlySnapshot) Trend {
	recent := meanSpent(tail(snapshots, 0, 3))
	older := recent
	if olderSnaps := tail(snapshots, 3, 3); len(olderSnaps) == 3 {
		older = meanSpent(olderSnaps)
	}
	switch {
	case recent > older*trendUpperBand:
		return TrendIncreasing
	case recent < older*trendLowerBand:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

// ProjectMonthlySpend blends the three most recent months, weighted toward
// the present. With fewer than three snapshots it falls back to the overall
// monthly average.
func ProjectMonthlySpend(snapshots []MonthlySnapshot, avgMonthly float64) float64 {
	if len(snapshots) < 3 {
		return core.Round2(avgMonthly)
	}
	n := len(snapshots)
	projected := projectionWeights[0]*snapshots[n-1].TotalSpent +
		projectionWeights[1]*snapshots[n-2].TotalSpent +
		projectionWeights[2]*snapshots[n-3].TotalSpent
	return core.Round2(projected)
}

// RunwayMonths is how long the savings balance sustains the projected burn
// rate. Never negative, never NaN: degenerate inputs yield zero.
func RunwayMonths(savingsBalance, projectedMonthlySpend float64) float64 {
	if projectedMonthlySpend <= 0 || savingsBalance <= 0 {
		return 0
	}
	return core.Round1(savingsBalance / projectedMonthlySpend)
}

// SavingsRate is the percentage of observed income retained over the window,
// clamped to [0,100]. Zero income yields zero rather than a division error.
func SavingsRate(totalIncome, totalSpent float64) float64 {
	if totalIncome == 0 {
		return 0
	}
	rate := math.Round(100 * (totalIncome - totalSpent) / totalIncome)
	switch {
	case rate < 0:
		return 0
	case rate > 100:
		return 100
	}
	return rate
}

// tail returns the slice of up to n snapshots ending `skip` entries before
// the chronological end.
func tail(snapshots []MonthlySnapshot, skip, n int) []MonthlySnapshot {
	end := len(snapshots) - skip
	if end <= 0 {
		return nil
	}
	start := end - n
	if start < 0 {
		start = 0
	}
	return snapshots[start:end]
}

func meanSpent(snapshots []MonthlySnapshot) float64 {
	if len(snapshots) == 0 {
		return 0
	}
	var sum float64
	for _, s := range snapshots {
		sum += s.TotalSpent
	}
	return sum / float64(len(snapshots))
}
