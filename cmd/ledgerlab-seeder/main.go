package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"ledgerlab/internal/config"
	"ledgerlab/internal/ledger"
	"ledgerlab/internal/log"
	"ledgerlab/internal/services"
	"ledgerlab/internal/storage"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := log.New(log.Config{Level: slog.LevelInfo, Component: "seeder"})
	log.SetDefault(logger)

	logger.Info("Starting ledgerlab-seeder")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	store, cleanup, err := newStore(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize store", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	defer cleanup()

	asOf, err := cfg.AsOfTime(time.Now().UTC())
	if err != nil {
		logger.Error("Failed to resolve as-of date", "error", err)
		os.Exit(1)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		logger.Info("No seed configured, derived one from the clock", "seed", seed)
	}

	profiles := seedProfiles(cfg.SeedCount)
	seeder := services.NewSeeder(store, services.SeederConfig{
		Months:       cfg.WindowMonths,
		BaseSeed:     seed,
		WeeklyWindow: cfg.WeeklyWindow,
	}, logger)

	results, err := seeder.SeedBatch(ctx, profiles, asOf)
	if err != nil {
		logger.Error("Seeding failed", "error", err)
		os.Exit(1)
	}

	for _, res := range results {
		logger.Info("Seeded ledger",
			"ledger", res.Name,
			"transactions", res.Transactions,
			"avgDailySpend", res.Summary.AvgDailySpend,
			"trend", string(res.Summary.SpendingTrend),
			"runwayMonths", res.Summary.RunwayMonths)
	}
	logger.Info("Seeding complete", "ledgers", len(results), "seed", seed, "asOf", asOf.Format("2006-01-02"))
}

// seedProfiles returns the demo profiles, cycled with numbered names when more
// personas are requested than profiles exist. count <= 0 means one ledger per
// demo profile.
func seedProfiles(count int) []services.NamedProfile {
	base := services.DemoProfiles()
	if count <= 0 || count == len(base) {
		return base
	}
	profiles := make([]services.NamedProfile, count)
	for i := range profiles {
		np := base[i%len(base)]
		if count > len(base) {
			np.Name = fmt.Sprintf("%s-%d", np.Name, i/len(base)+1)
		}
		profiles[i] = np
	}
	return profiles
}

func newStore(cfg *config.Config, logger *log.Logger) (ledger.Store, func(), error) {
	switch cfg.DataBackend {
	case "sqlite":
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Initialized SQLite backend", "path", cfg.SQLiteDBPath)
		return repo, func() { repo.Close() }, nil
	default:
		logger.Info("Initialized memory backend")
		return ledger.NewMemoryStore(), func() {}, nil
	}
}
