// Package generate fabricates plausible multi-year transaction histories for
// demo personas. Generation is a pure function of the persona, the explicit
// as-of instant and the injected randomness source; there are no wall-clock
// reads anywhere in this package.
package generate

import (
	"errors"
	"sort"
	"time"

	"ledgerlab/internal/core"
)

// DefaultMonths is the generation window used when the caller does not pick
// one: two years ending at the as-of date.
const DefaultMonths = 24

var ErrInvalidWindow = errors.New("invalid generation window: months must be positive")

// Result carries the generated ledger plus the per-month outflow totals
// accumulated while generating, keyed by YYYY-MM.
type Result struct {
	Transactions []core.Transaction
	MonthlySpend map[string]float64
}

// Generator produces synthetic ledgers. It keeps a cursor into the
// subscription vendor pool so successive months cycle through vendors.
type Generator struct {
	rng    Rand
	subIdx int
}

func NewGenerator(rng Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate produces the persona's ledger for the window of the given number
// of months ending at asOf, sorted most-recent-first. The persona's profile
// is re-validated so a hand-built Persona with degenerate ranges fails fast
// rather than producing nonsense amounts.
func (g *Generator) Generate(p core.Persona, asOf time.Time, months int) (Result, error) {
	if months <= 0 {
		return Result{}, ErrInvalidWindow
	}
	if err := p.Profile.Validate(); err != nil {
		return Result{}, err
	}

	res := Result{MonthlySpend: make(map[string]float64)}
	cutoff := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)
	anchor := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC)

	// Oldest month first so draw order, and therefore seeded output, is
	// stable regardless of window length changes at the recent end.
	for offset := months - 1; offset >= 0; offset-- {
		monthStart := anchor.AddDate(0, -offset, 0)
		g.generateMonth(&res, p, monthStart, cutoff, offset)
	}

	sort.SliceStable(res.Transactions, func(i, j int) bool {
		return res.Transactions[i].Date.After(res.Transactions[j].Date)
	})
	return res, nil
}

func (g *Generator) generateMonth(res *Result, p core.Persona, monthStart, cutoff time.Time, monthOffset int) {
	monthEnd := monthStart.AddDate(0, 1, -1)

	// Income lands near the 1st; its variance models bonuses and deductions,
	// not a renegotiated salary, so the base figure stays fixed.
	g.add(res, core.Transaction{
		Date:        monthStart.AddDate(0, 0, g.rng.Intn(3)),
		Description: "Payroll Deposit",
		Amount:      core.Round2(p.MonthlyIncome * uniform(g.rng, 0.95, 1.05)),
		Category:    core.Income,
	}, cutoff)

	g.add(res, core.Transaction{
		Date:        monthStart,
		Description: "Monthly Rent",
		Amount:      -core.RoundToNearest(p.MonthlyIncome*uniform(g.rng, 0.28, 0.40), 50),
		Category:    core.Rent,
	}, cutoff)

	g.add(res, core.Transaction{
		Date:        monthStart.AddDate(0, 0, 5+g.rng.Intn(5)),
		Description: merchantFor(core.Utilities, g.rng),
		Amount:      -core.Round2(uniform(g.rng, 60, 140)),
		Category:    core.Utilities,
	}, cutoff)

	for i, n := 0, 3+g.rng.Intn(4); i < n; i++ {
		vendor := subscriptionVendors[g.subIdx%len(subscriptionVendors)]
		g.subIdx++
		g.add(res, core.Transaction{
			Date:        monthStart.AddDate(0, 0, g.rng.Intn(28)),
			Description: vendor,
			Amount:      -core.Round2(uniform(g.rng, 5, 23)),
			Category:    core.Subscriptions,
		}, cutoff)
	}

	for i, n := 0, g.rng.Intn(3); i < n; i++ {
		g.add(res, core.Transaction{
			Date:        monthStart.AddDate(0, 0, g.rng.Intn(28)),
			Description: merchantFor(core.Transfer, g.rng),
			Amount:      -core.Round2(uniform(g.rng, 20, 120)),
			Category:    core.Transfer,
		}, cutoff)
	}

	for day := monthStart; !day.After(monthEnd) && !day.After(cutoff); day = day.AddDate(0, 0, 1) {
		g.generateDay(res, p, day, cutoff, monthOffset)
	}
}

// Per-day Bernoulli draws for discretionary spend. Probabilities and base
// ranges are tuned for plausibility, not statistical rigor.
func (g *Generator) generateDay(res *Result, p core.Persona, day, cutoff time.Time, monthOffset int) {
	profile := p.Profile
	weekday := WeekdayMultiplier(day)

	g.draw(res, p, day, cutoff, monthOffset, core.Coffee, styleProb(profile.SpendingStyle, 0.25, 0.50, 0.75), 3.5, 8)
	g.draw(res, p, day, cutoff, monthOffset, core.Groceries, 0.35, 25, 90)
	g.draw(res, p, day, cutoff, monthOffset, core.Dining, styleProb(profile.SpendingStyle, 0.12, 0.22, 0.38)*weekday, 15, 70)
	g.draw(res, p, day, cutoff, monthOffset, core.Transport, 0.40, 5, 35)
	g.draw(res, p, day, cutoff, monthOffset, core.Shopping, focusProb(profile, core.Shopping, 0.18, 0.08)*weekday, 20, 150)
	g.draw(res, p, day, cutoff, monthOffset, core.Entertainment, focusProb(profile, core.Entertainment, 0.20, 0.10)*weekday, 10, 60)
	g.draw(res, p, day, cutoff, monthOffset, core.Healthcare, 0.03, 15, 120)
	g.draw(res, p, day, cutoff, monthOffset, core.Education, 0.02, 10, 80)
}

func (g *Generator) draw(res *Result, p core.Persona, day, cutoff time.Time, monthOffset int, cat core.Category, prob, min, max float64) {
	if g.rng.Float64() >= prob {
		return
	}
	amount := uniform(g.rng, min, max) *
		styleMultiplier(p.Profile.SpendingStyle) *
		SeasonMultiplier(day) *
		WeekdayMultiplier(day) *
		trendMultiplier(p.Profile.TrendDirection, monthOffset)
	g.add(res, core.Transaction{
		Date:        day,
		Description: merchantFor(cat, g.rng),
		Amount:      -core.Round2(amount),
		Category:    cat,
	}, cutoff)
}

func (g *Generator) add(res *Result, t core.Transaction, cutoff time.Time) {
	if t.Date.After(cutoff) {
		return
	}
	res.Transactions = append(res.Transactions, t)
	if t.Amount < 0 {
		res.MonthlySpend[t.Date.Format("2006-01")] += -t.Amount
	}
}

func styleProb(s core.SpendingStyle, frugal, moderate, spender float64) float64 {
	switch s {
	case core.Frugal:
		return frugal
	case core.Spender:
		return spender
	default:
		return moderate
	}
}

func focusProb(p core.PersonaProfile, c core.Category, focused, base float64) float64 {
	if p.Focused(c) {
		return focused
	}
	return base
}

// styleMultiplier scales all discretionary categories uniformly.
func styleMultiplier(s core.SpendingStyle) float64 {
	switch s {
	case core.Frugal:
		return 0.55
	case core.Spender:
		return 1.2
	default:
		return 0.85
	}
}

// minTrendMultiplier floors the worsening drift so long windows can never
// push the multiplier to zero or flip an outflow's sign.
const minTrendMultiplier = 0.05

// trendMultiplier shifts spend across the window. monthOffset counts months
// before the window's end, so an improving persona spent more the further
// back in time and a worsening one spends more toward the present.
func trendMultiplier(d core.TrendDirection, monthOffset int) float64 {
	switch d {
	case core.Improving:
		return 1 + float64(monthOffset)*0.02
	case core.Worsening:
		m := 1 - float64(monthOffset)*0.015
		if m < minTrendMultiplier {
			return minTrendMultiplier
		}
		return m
	default:
		return 1
	}
}
