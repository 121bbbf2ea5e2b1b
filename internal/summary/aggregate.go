// Package summary derives the normalized financial summary from any
// transaction ledger, synthetic or user-supplied. Every function here is a
// pure transformation over explicit inputs; the as-of instant is always a
// parameter, never a wall-clock read.
package summary

import (
	"math"
	"sort"
	"time"

	"ledgerlab/internal/core"
)

// DefaultWeeklyWindow covers the trailing month for live ledgers; synthetic
// two-year ledgers typically use WeeklyWindowSynthetic.
const (
	DefaultWeeklyWindow   = 4
	WeeklyWindowSynthetic = 12
	fallbackTopCategory   = core.Groceries
	topCategoryLimit      = 5
)

// Options tunes aggregation. The zero value selects defaults.
type Options struct {
	// WeeklyWindow is the number of trailing seven-day buckets to compute.
	WeeklyWindow int
}

func (o Options) weeklyWindow() int {
	if o.WeeklyWindow <= 0 {
		return DefaultWeeklyWindow
	}
	return o.WeeklyWindow
}

// Aggregates is the intermediate product the trend calculator and the
// assembler consume.
type Aggregates struct {
	TotalSpent       float64
	TotalIncome      float64
	AvgDailySpend    float64
	AvgMonthlySpend  float64
	CategoryTotals   map[string]float64
	TopCategories    []core.Category
	MonthlySnapshots []MonthlySnapshot
	WeeklyAverages   []WeeklyAverage
	SeasonalData     SeasonalData
}

// Aggregate computes category, monthly, weekly and seasonal breakdowns over
// the ledger. Empty ledgers produce zeroed aggregates, never an error.
func Aggregate(txs []core.Transaction, asOf time.Time, opts Options) Aggregates {
	agg := Aggregates{CategoryTotals: make(map[string]float64)}

	// Tie-breaks everywhere use first-encountered order of the category, so
	// track insertion order alongside the totals map.
	var catOrder []core.Category
	type monthAccum struct {
		spent, income float64
		catTotals     map[core.Category]float64
		catOrder      []core.Category
	}
	months := make(map[string]*monthAccum)
	var monthKeys []string
	var minDate, maxDate time.Time

	for _, t := range txs {
		if minDate.IsZero() || t.Date.Before(minDate) {
			minDate = t.Date
		}
		if maxDate.IsZero() || t.Date.After(maxDate) {
			maxDate = t.Date
		}

		key := t.Date.Format("2006-01")
		m, ok := months[key]
		if !ok {
			m = &monthAccum{catTotals: make(map[core.Category]float64)}
			months[key] = m
			monthKeys = append(monthKeys, key)
		}

		if t.IsOutflow() {
			out := -t.Amount
			agg.TotalSpent += out
			if _, seen := agg.CategoryTotals[string(t.Category)]; !seen {
				catOrder = append(catOrder, t.Category)
			}
			agg.CategoryTotals[string(t.Category)] += out
			if _, seen := m.catTotals[t.Category]; !seen {
				m.catOrder = append(m.catOrder, t.Category)
			}
			m.catTotals[t.Category] += out
			m.spent += out
		} else {
			agg.TotalIncome += t.Amount
			m.income += t.Amount
		}
	}

	agg.AvgDailySpend = agg.TotalSpent / float64(dayRange(minDate, maxDate))
	agg.AvgMonthlySpend = agg.TotalSpent / float64(monthRange(minDate, maxDate))
	agg.TopCategories = topCategories(agg.CategoryTotals, catOrder)

	sort.Strings(monthKeys)
	for _, key := range monthKeys {
		m := months[key]
		top := fallbackTopCategory
		best := 0.0
		for _, c := range m.catOrder {
			if m.catTotals[c] > best {
				best = m.catTotals[c]
				top = c
			}
		}
		agg.MonthlySnapshots = append(agg.MonthlySnapshots, MonthlySnapshot{
			Month:       key,
			TotalSpent:  core.Round2(m.spent),
			TotalIncome: core.Round2(m.income),
			NetSavings:  core.Round2(m.income - m.spent),
			TopCategory: top,
		})
	}

	agg.WeeklyAverages = weeklyAverages(txs, asOf, opts.weeklyWindow())
	agg.SeasonalData = seasonalData(monthKeys, func(key string) float64 { return months[key].spent })

	agg.TotalSpent = core.Round2(agg.TotalSpent)
	agg.TotalIncome = core.Round2(agg.TotalIncome)
	agg.AvgDailySpend = core.Round2(agg.AvgDailySpend)
	agg.AvgMonthlySpend = core.Round2(agg.AvgMonthlySpend)
	return agg
}

// dayRange spans min to max transaction date, flooring at one day so a
// single-day ledger never divides by zero.
func dayRange(min, max time.Time) int {
	if min.IsZero() || max.IsZero() {
		return 1
	}
	days := int(math.Ceil(max.Sub(min).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

func monthRange(min, max time.Time) int {
	if min.IsZero() || max.IsZero() {
		return 1
	}
	n := (max.Year()-min.Year())*12 + int(max.Month()) - int(min.Month()) + 1
	if n < 1 {
		return 1
	}
	return n
}

func topCategories(totals map[string]float64, order []core.Category) []core.Category {
	top := make([]core.Category, len(order))
	copy(top, order)
	sort.SliceStable(top, func(i, j int) bool {
		return totals[string(top[i])] > totals[string(top[j])]
	})
	if len(top) > topCategoryLimit {
		top = top[:topCategoryLimit]
	}
	return top
}

// weeklyAverages sums outflows per trailing seven-day bucket anchored at
// asOf: week w covers [asOf-7*(w+1) days, asOf-7*w days], both ends inclusive.
func weeklyAverages(txs []core.Transaction, asOf time.Time, weeks int) []WeeklyAverage {
	out := make([]WeeklyAverage, weeks)
	for w := 0; w < weeks; w++ {
		lo := asOf.AddDate(0, 0, -7*(w+1))
		hi := asOf.AddDate(0, 0, -7*w)
		var sum float64
		for _, t := range txs {
			if !t.IsOutflow() {
				continue
			}
			if !t.Date.Before(lo) && !t.Date.After(hi) {
				sum += -t.Amount
			}
		}
		out[w] = WeeklyAverage{Week: w, Amount: core.Round2(sum)}
	}
	return out
}

func seasonOf(month time.Month) int {
	switch month {
	case time.December, time.January, time.February:
		return 0 // winter
	case time.March, time.April, time.May:
		return 1 // spring
	case time.June, time.July, time.August:
		return 2 // summer
	default:
		return 3 // autumn
	}
}

// seasonalData averages monthly outflow per season. The divisor is the count
// of that season's calendar months actually present in the ledger, so a
// partial year is not systematically under- or over-stated.
func seasonalData(keys []string, spentOf func(string) float64) SeasonalData {
	var totals, counts [4]float64
	for _, key := range keys {
		t, err := time.Parse("2006-01", key)
		if err != nil {
			continue
		}
		s := seasonOf(t.Month())
		totals[s] += spentOf(key)
		counts[s]++
	}
	avg := func(s int) float64 {
		if counts[s] == 0 {
			return 0
		}
		return core.Round2(totals[s] / counts[s])
	}
	return SeasonalData{Winter: avg(0), Spring: avg(1), Summer: avg(2), Autumn: avg(3)}
}
