package summary

import (
	"time"

	"ledgerlab/internal/core"
)

// Summarize is the single entry point collaborators call: aggregation, then
// trend and projection, composed into the TransactionSummary record.
// Synthetic and real ledgers go through this exact path, so both are
// summarized with identical semantics.
//
// The savings balance feeding the runway estimate is derived from observed
// net income over the window, clamped at zero, so the summary stays a pure
// function of the transaction list and the as-of instant.
func Summarize(txs []core.Transaction, asOf time.Time, opts Options) TransactionSummary {
	agg := Aggregate(txs, asOf, opts)

	savings := agg.TotalIncome - agg.TotalSpent
	if savings < 0 {
		savings = 0
	}
	projected := ProjectMonthlySpend(agg.MonthlySnapshots, agg.AvgMonthlySpend)

	return TransactionSummary{
		TotalSpent:            agg.TotalSpent,
		TotalIncome:           agg.TotalIncome,
		AvgDailySpend:         agg.AvgDailySpend,
		AvgMonthlySpend:       agg.AvgMonthlySpend,
		CategoryTotals:        agg.CategoryTotals,
		TopCategories:         agg.TopCategories,
		MonthlySnapshots:      agg.MonthlySnapshots,
		WeeklyAverages:        agg.WeeklyAverages,
		SeasonalData:          agg.SeasonalData,
		SpendingTrend:         ClassifyTrend(agg.MonthlySnapshots),
		SavingsRate:           SavingsRate(agg.TotalIncome, agg.TotalSpent),
		ProjectedMonthlySpend: projected,
		RunwayMonths:          RunwayMonths(savings, projected),
		SavingsBalance:        core.Round2(savings),
	}
}
