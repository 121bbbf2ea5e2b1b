package ledger

import (
	"context"
	"fmt"
	"sync"

	"ledgerlab/internal/core"
	"ledgerlab/internal/summary"
)

// MemoryStore is the default backend: a mutex-guarded in-process store used
// by the CLI's memory mode and by tests.
type MemoryStore struct {
	mu        sync.Mutex
	ledgers   map[string][]core.Transaction
	order     []string
	summaries map[string]summary.TransactionSummary
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		ledgers:   make(map[string][]core.Transaction),
		summaries: make(map[string]summary.TransactionSummary),
	}
}

func (s *MemoryStore) AppendTransactions(_ context.Context, ledgerID string, txs []core.Transaction) error {
	if ledgerID == "" {
		return fmt.Errorf("append transactions: empty ledger id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ledgers[ledgerID]; !ok {
		s.order = append(s.order, ledgerID)
	}
	s.ledgers[ledgerID] = append(s.ledgers[ledgerID], txs...)
	return nil
}

func (s *MemoryStore) ListTransactions(_ context.Context, ledgerID string) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	txs, ok := s.ledgers[ledgerID]
	if !ok {
		return nil, fmt.Errorf("list transactions: unknown ledger %q", ledgerID)
	}
	out := make([]core.Transaction, len(txs))
	copy(out, txs)
	return out, nil
}

func (s *MemoryStore) ListLedgers(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out, nil
}

func (s *MemoryStore) SaveSummary(_ context.Context, ledgerID string, sum summary.TransactionSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summaries[ledgerID] = sum
	return nil
}

func (s *MemoryStore) GetSummary(_ context.Context, ledgerID string) (summary.TransactionSummary, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sum, ok := s.summaries[ledgerID]
	return sum, ok, nil
}
