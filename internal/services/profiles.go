package services

import "ledgerlab/internal/core"

// NamedProfile pairs a demo persona profile with the human-readable handle
// the seeder uses as its ledger ID.
type NamedProfile struct {
	Name    string
	Profile core.PersonaProfile
}

// DemoProfiles is the fixed set of personas seeded by default: one per
// spending style crossed with distinct trend directions and category
// focuses, so the demo dataset shows every classification the summary
// engine can produce.
func DemoProfiles() []NamedProfile {
	return []NamedProfile{
		{
			Name: "frugal-saver",
			Profile: core.PersonaProfile{
				IncomeRange:    core.Range{Min: 3200, Max: 4200},
				SavingsRange:   core.Range{Min: 15000, Max: 40000},
				SpendingStyle:  core.Frugal,
				TrendDirection: core.Improving,
			},
		},
		{
			Name: "moderate-family",
			Profile: core.PersonaProfile{
				IncomeRange:     core.Range{Min: 5500, Max: 7500},
				SavingsRange:    core.Range{Min: 8000, Max: 25000},
				SpendingStyle:   core.Moderate,
				FocusCategories: []core.Category{core.Groceries, core.Healthcare},
				TrendDirection:  core.Stable,
			},
		},
		{
			Name: "impulse-shopper",
			Profile: core.PersonaProfile{
				IncomeRange:     core.Range{Min: 4000, Max: 5200},
				SavingsRange:    core.Range{Min: 500, Max: 4000},
				SpendingStyle:   core.Spender,
				FocusCategories: []core.Category{core.Shopping, core.Entertainment},
				TrendDirection:  core.Worsening,
			},
		},
		{
			Name: "steady-professional",
			Profile: core.PersonaProfile{
				IncomeRange:    core.Range{Min: 7000, Max: 9500},
				SavingsRange:   core.Range{Min: 20000, Max: 60000},
				SpendingStyle:  core.Moderate,
				TrendDirection: core.Improving,
			},
		},
		{
			Name: "young-spender",
			Profile: core.PersonaProfile{
				IncomeRange:     core.Range{Min: 2800, Max: 3600},
				SavingsRange:    core.Range{Min: 200, Max: 2500},
				SpendingStyle:   core.Spender,
				FocusCategories: []core.Category{core.Entertainment},
				TrendDirection:  core.Stable,
			},
		},
	}
}
