package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"ledgerlab/internal/core"
	"ledgerlab/internal/generate"
	"ledgerlab/internal/ledger"
	"ledgerlab/internal/log"
	"ledgerlab/internal/summary"
)

// SeederConfig tunes batch persona seeding.
type SeederConfig struct {
	// Months is the generation window ending at the as-of date.
	Months int
	// BaseSeed derives each persona's RNG seed (BaseSeed + index), so a
	// fixed base reproduces the entire batch.
	BaseSeed int64
	// WeeklyWindow for the persisted summaries; synthetic multi-year data
	// defaults to the wider window.
	WeeklyWindow int
}

func DefaultSeederConfig() SeederConfig {
	return SeederConfig{
		Months:       generate.DefaultMonths,
		BaseSeed:     1,
		WeeklyWindow: summary.WeeklyWindowSynthetic,
	}
}

// SeedResult reports one seeded persona.
type SeedResult struct {
	Name         string
	Persona      core.Persona
	Transactions int
	Summary      summary.TransactionSummary
}

// Seeder generates demo personas and persists their ledgers and summaries.
type Seeder struct {
	store  ledger.Store
	config SeederConfig
	logger *log.Logger
}

func NewSeeder(store ledger.Store, config SeederConfig, logger *log.Logger) *Seeder {
	if config.Months <= 0 {
		config.Months = generate.DefaultMonths
	}
	if config.WeeklyWindow <= 0 {
		config.WeeklyWindow = summary.WeeklyWindowSynthetic
	}
	return &Seeder{store: store, config: config, logger: logger}
}

// SeedBatch generates one ledger per profile. Personas are independent, so
// the batch fans out one goroutine per profile with no shared state beyond
// the store; results come back in profile order.
func (s *Seeder) SeedBatch(ctx context.Context, profiles []NamedProfile, asOf time.Time) ([]SeedResult, error) {
	results := make([]SeedResult, len(profiles))

	g, ctx := errgroup.WithContext(ctx)
	for i, np := range profiles {
		g.Go(func() error {
			res, err := s.seedOne(ctx, np, asOf, s.config.BaseSeed+int64(i))
			if err != nil {
				return fmt.Errorf("seed persona %q: %w", np.Name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Seeder) seedOne(ctx context.Context, np NamedProfile, asOf time.Time, seed int64) (SeedResult, error) {
	rng := generate.NewSeededRand(seed)

	persona, err := core.NewPersona(np.Profile, rng)
	if err != nil {
		return SeedResult{}, err
	}

	gen, err := generate.NewGenerator(rng).Generate(persona, asOf, s.config.Months)
	if err != nil {
		return SeedResult{}, err
	}

	if err := s.store.AppendTransactions(ctx, np.Name, gen.Transactions); err != nil {
		return SeedResult{}, err
	}

	sum := summary.Summarize(gen.Transactions, asOf, summary.Options{WeeklyWindow: s.config.WeeklyWindow})
	if err := s.store.SaveSummary(ctx, np.Name, sum); err != nil {
		return SeedResult{}, err
	}

	s.logger.Info("persona seeded",
		"persona", np.Name,
		"style", string(np.Profile.SpendingStyle),
		"transactions", len(gen.Transactions),
		"trend", string(sum.SpendingTrend))

	return SeedResult{
		Name:         np.Name,
		Persona:      persona,
		Transactions: len(gen.Transactions),
		Summary:      sum,
	}, nil
}
