// Package storage persists ledgers and their latest computed summaries in
// SQLite. Summaries are stored as JSON payloads: they are fully derived, so
// the table is a cache of the last computation, never a source of truth.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ledgerlab/internal/core"
	"ledgerlab/internal/summary"

	_ "modernc.org/sqlite"
)

const dateLayout = "2006-01-02"

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// AppendTransactions implements ledger.TransactionWriter. The ledger row is
// created on first write; the whole batch commits atomically.
func (r *SQLiteRepository) AppendTransactions(ctx context.Context, ledgerID string, txs []core.Transaction) error {
	if ledgerID == "" {
		return fmt.Errorf("append transactions: empty ledger id")
	}

	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx,
		`INSERT INTO ledgers (id) VALUES (?) ON CONFLICT(id) DO NOTHING`, ledgerID); err != nil {
		return fmt.Errorf("ensure ledger row: %w", err)
	}

	stmt, err := dbTx.PrepareContext(ctx,
		`INSERT INTO transactions (ledger_id, tx_date, description, amount, category, tx_timestamp)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range txs {
		var ts sql.NullString
		if !t.Timestamp.IsZero() {
			ts = sql.NullString{String: t.Timestamp.Format(time.RFC3339), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx,
			ledgerID, t.Date.Format(dateLayout), t.Description, t.Amount, string(t.Category), ts); err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("commit transactions: %w", err)
	}
	return nil
}

// ListTransactions implements ledger.TransactionReader, returning the ledger
// most-recent-first.
func (r *SQLiteRepository) ListTransactions(ctx context.Context, ledgerID string) ([]core.Transaction, error) {
	var exists int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM ledgers WHERE id = ?`, ledgerID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("check ledger: %w", err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("list transactions: unknown ledger %q", ledgerID)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT tx_date, description, amount, category, tx_timestamp
		 FROM transactions WHERE ledger_id = ? ORDER BY tx_date DESC, id ASC`, ledgerID)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var txs []core.Transaction
	for rows.Next() {
		var (
			dateStr string
			t       core.Transaction
			ts      sql.NullString
		)
		if err := rows.Scan(&dateStr, &t.Description, &t.Amount, (*string)(&t.Category), &ts); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		if t.Date, err = time.Parse(dateLayout, dateStr); err != nil {
			return nil, fmt.Errorf("parse stored date %q: %w", dateStr, err)
		}
		if ts.Valid {
			if t.Timestamp, err = time.Parse(time.RFC3339, ts.String); err != nil {
				return nil, fmt.Errorf("parse stored timestamp %q: %w", ts.String, err)
			}
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

// ListLedgers implements ledger.LedgerLister.
func (r *SQLiteRepository) ListLedgers(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM ledgers ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query ledgers: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan ledger id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// SaveSummary implements ledger.SummaryStore, upserting the JSON payload.
func (r *SQLiteRepository) SaveSummary(ctx context.Context, ledgerID string, s summary.TransactionSummary) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO summaries (ledger_id, computed_at, payload) VALUES (?, CURRENT_TIMESTAMP, ?)
		 ON CONFLICT(ledger_id) DO UPDATE SET computed_at = CURRENT_TIMESTAMP, payload = excluded.payload`,
		ledgerID, string(payload))
	if err != nil {
		return fmt.Errorf("upsert summary: %w", err)
	}
	return nil
}

// GetSummary implements ledger.SummaryStore.
func (r *SQLiteRepository) GetSummary(ctx context.Context, ledgerID string) (summary.TransactionSummary, bool, error) {
	var payload string
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM summaries WHERE ledger_id = ?`, ledgerID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return summary.TransactionSummary{}, false, nil
	}
	if err != nil {
		return summary.TransactionSummary{}, false, fmt.Errorf("query summary: %w", err)
	}

	var s summary.TransactionSummary
	if err := json.Unmarshal([]byte(payload), &s); err != nil {
		return summary.TransactionSummary{}, false, fmt.Errorf("unmarshal summary: %w", err)
	}
	return s, true, nil
}
