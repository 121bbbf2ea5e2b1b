package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"ledgerlab/internal/config"
	"ledgerlab/internal/ledger"
	"ledgerlab/internal/log"
	"ledgerlab/internal/services"
	"ledgerlab/internal/storage"
	"ledgerlab/internal/summary"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := log.New(log.Config{Level: slog.LevelInfo, Component: "ledgerlab"})
	log.SetDefault(logger)

	csvPath := flag.String("csv", "", "load transactions from a CSV file into the ledger before summarizing")
	ledgerID := flag.String("ledger", "default", "ledger to summarize")
	flag.Parse()

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

	svc := services.NewSummaryService(store, summary.Options{WeeklyWindow: cfg.WeeklyWindow}, logger)

	if *csvPath != "" {
		txs, err := ledger.ReadCSVFile(*csvPath)
		if err != nil {
			logger.Error("Failed to read CSV ledger", "error", err, "path", *csvPath)
			os.Exit(1)
		}
		if err := svc.Append(ctx, *ledgerID, txs); err != nil {
			logger.Error("Failed to load transactions", "error", err, "ledger", *ledgerID)
			os.Exit(1)
		}
		logger.Info("Loaded CSV ledger", "path", *csvPath, "ledger", *ledgerID, "transactions", len(txs))
	}

	asOf, err := cfg.AsOfTime(time.Now().UTC())
	if err != nil {
		logger.Error("Failed to resolve as-of date", "error", err)
		os.Exit(1)
	}

	sum, err := svc.Summary(ctx, *ledgerID, asOf)
	if err != nil {
		logger.Error("Failed to summarize ledger", "error", err, "ledger", *ledgerID)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(sum, "", "  ")
	if err != nil {
		logger.Error("Failed to encode summary", "error", err)
		os.Exit(1)
	}
	os.Stdout.Write(append(out, '\n'))
}

// newStore builds the configured ledger backend. The returned cleanup closes
// any underlying resources and is safe to call for the memory backend too.
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
