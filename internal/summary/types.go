package summary

import "ledgerlab/internal/core"

// Trend classifications produced by the calculator.
const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

type (
	Trend string

	// MonthlySnapshot is one calendar month of activity, keyed YYYY-MM.
	MonthlySnapshot struct {
		Month       string        `json:"month"`
		TotalSpent  float64       `json:"totalSpent"`
		TotalIncome float64       `json:"totalIncome"`
		NetSavings  float64       `json:"netSavings"`
		TopCategory core.Category `json:"topCategory"`
	}

	// WeeklyAverage is the outflow total for one trailing seven-day window
	// anchored at the as-of instant. Week 0 is the most recent.
	WeeklyAverage struct {
		Week   int     `json:"week"`
		Amount float64 `json:"amount"`
	}

	// SeasonalData is the average monthly outflow per season, divided by the
	// number of that season's calendar months actually present in the data.
	SeasonalData struct {
		Winter float64 `json:"winter"`
		Spring float64 `json:"spring"`
		Summer float64 `json:"summer"`
		Autumn float64 `json:"autumn"`
	}

	// TransactionSummary is the aggregate root handed to display and storage
	// collaborators. It is fully derived: recomputing it from the same
	// transaction list and as-of instant yields an identical value.
	TransactionSummary struct {
		TotalSpent            float64            `json:"totalSpent"`
		TotalIncome           float64            `json:"totalIncome"`
		AvgDailySpend         float64            `json:"avgDailySpend"`
		AvgMonthlySpend       float64            `json:"avgMonthlySpend"`
		CategoryTotals        map[string]float64 `json:"categoryTotals"`
		TopCategories         []core.Category    `json:"topCategories"`
		MonthlySnapshots      []MonthlySnapshot  `json:"monthlySnapshots"`
		WeeklyAverages        []WeeklyAverage    `json:"weeklyAverages"`
		SeasonalData          SeasonalData       `json:"seasonalData"`
		SpendingTrend         Trend              `json:"spendingTrend"`
		SavingsRate           float64            `json:"savingsRate"`
		ProjectedMonthlySpend float64            `json:"projectedMonthlySpend"`
		RunwayMonths          float64            `json:"runwayMonths"`
		SavingsBalance        float64            `json:"savingsBalance"`
	}
)
