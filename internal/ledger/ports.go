// Package ledger defines the ports between the summary engine and whatever
// supplies or stores transaction data. The engine itself never touches a
// backend; collaborators feed it transaction slices through these interfaces.
package ledger

import (
	"context"

	"ledgerlab/internal/core"
	"ledgerlab/internal/summary"
)

// Ports for outbound adapters.
type (
	// TransactionReader supplies the full transaction list for a ledger.
	TransactionReader interface {
		ListTransactions(ctx context.Context, ledgerID string) ([]core.Transaction, error)
	}

	// TransactionWriter appends transactions to a ledger, creating it on
	// first write. Appended transactions are read-only thereafter.
	TransactionWriter interface {
		AppendTransactions(ctx context.Context, ledgerID string, txs []core.Transaction) error
	}

	// LedgerLister enumerates known ledger IDs.
	LedgerLister interface {
		ListLedgers(ctx context.Context) ([]string, error)
	}

	// SummaryStore persists the latest computed summary per ledger. The
	// summary is fully derived, so this is a cache of the last computation,
	// not a source of truth.
	SummaryStore interface {
		SaveSummary(ctx context.Context, ledgerID string, s summary.TransactionSummary) error
		GetSummary(ctx context.Context, ledgerID string) (summary.TransactionSummary, bool, error)
	}

	// Store is the full backend surface the services are wired against.
	Store interface {
		TransactionReader
		TransactionWriter
		LedgerLister
		SummaryStore
	}
)
