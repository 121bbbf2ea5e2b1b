package services

import (
	"context"
	"fmt"
	"time"

	"ledgerlab/internal/cache"
	"ledgerlab/internal/core"
	"ledgerlab/internal/ledger"
	"ledgerlab/internal/log"
	"ledgerlab/internal/summary"
)

const (
	summaryCacheSize = 256
	summaryCacheTTL  = 15 * time.Minute
)

// SummaryService orchestrates the pure engine against a ledger backend:
// load, summarize, persist, memoize. The engine stays stateless; all caching
// lives here.
type SummaryService struct {
	store  ledger.Store
	cache  *cache.LRU[summary.TransactionSummary]
	opts   summary.Options
	logger *log.Logger
}

func NewSummaryService(store ledger.Store, opts summary.Options, logger *log.Logger) *SummaryService {
	return &SummaryService{
		store:  store,
		cache:  cache.NewLRU[summary.TransactionSummary](summaryCacheSize, summaryCacheTTL),
		opts:   opts,
		logger: logger,
	}
}

// Summary returns the ledger's summary as of the given instant, recomputing
// and persisting it on cache miss. The same ledger and as-of always yield
// the same summary, so serving the memoized value is safe.
func (s *SummaryService) Summary(ctx context.Context, ledgerID string, asOf time.Time) (summary.TransactionSummary, error) {
	key := cacheKey(ledgerID, asOf)
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	txs, err := s.store.ListTransactions(ctx, ledgerID)
	if err != nil {
		return summary.TransactionSummary{}, fmt.Errorf("load ledger: %w", err)
	}

	sum := summary.Summarize(txs, asOf, s.opts)
	if err := s.store.SaveSummary(ctx, ledgerID, sum); err != nil {
		return summary.TransactionSummary{}, fmt.Errorf("persist summary: %w", err)
	}
	s.cache.Set(key, sum)

	s.logger.Info("summary recomputed",
		"ledger", ledgerID,
		"transactions", len(txs),
		"trend", string(sum.SpendingTrend))
	return sum, nil
}

// Append writes transactions to the ledger and drops any memoized summary
// for it; the next Summary call recomputes from the full list.
func (s *SummaryService) Append(ctx context.Context, ledgerID string, txs []core.Transaction) error {
	if err := s.store.AppendTransactions(ctx, ledgerID, txs); err != nil {
		return fmt.Errorf("append transactions: %w", err)
	}
	// Summaries are keyed per ledger and as-of day; the LRU has no prefix
	// scan, and appends are rare next to reads, so purge the whole cache.
	s.cache.Purge()
	return nil
}

// cacheKey carries the full instant: weekly bucket boundaries are anchored
// to asOf, so two same-day instants can yield different summaries.
func cacheKey(ledgerID string, asOf time.Time) string {
	return ledgerID + "|" + asOf.UTC().Format(time.RFC3339Nano)
}
