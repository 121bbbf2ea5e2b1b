package ledger

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"ledgerlab/internal/core"
	"ledgerlab/internal/summary"
)

func sampleTxs() []core.Transaction {
	return []core.Transaction{
		{Date: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), Description: "Payroll Deposit", Amount: 3000, Category: core.Income},
		{Date: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), Description: "Monthly Rent", Amount: -1200, Category: core.Rent},
		{Date: time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC), Description: "Trader Joe's", Amount: -82.5, Category: core.Groceries},
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if err := s.AppendTransactions(ctx, "demo", sampleTxs()); err != nil {
		t.Fatalf("append: %v", err)
	}
	got, err := s.ListTransactions(ctx, "demo")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(got))
	}

	ids, err := s.ListLedgers(ctx)
	if err != nil {
		t.Fatalf("list ledgers: %v", err)
	}
	if len(ids) != 1 || ids[0] != "demo" {
		t.Fatalf("expected [demo], got %v", ids)
	}

	if _, err := s.ListTransactions(ctx, "missing"); err == nil {
		t.Fatal("expected error for unknown ledger")
	}
}

func TestMemoryStoreRejectsEmptyLedgerID(t *testing.T) {
	if err := NewMemoryStore().AppendTransactions(context.Background(), "", sampleTxs()); err == nil {
		t.Fatal("expected error for empty ledger id")
	}
}

func TestMemoryStoreSummary(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if _, ok, err := s.GetSummary(ctx, "demo"); err != nil || ok {
		t.Fatalf("expected no summary yet, got ok=%v err=%v", ok, err)
	}

	want := summary.TransactionSummary{TotalSpent: 1282.5, TotalIncome: 3000}
	if err := s.SaveSummary(ctx, "demo", want); err != nil {
		t.Fatalf("save summary: %v", err)
	}
	got, ok, err := s.GetSummary(ctx, "demo")
	if err != nil || !ok {
		t.Fatalf("get summary: ok=%v err=%v", ok, err)
	}
	if got.TotalSpent != want.TotalSpent {
		t.Fatalf("expected %v, got %v", want.TotalSpent, got.TotalSpent)
	}
}

func TestMemoryStoreConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.AppendTransactions(ctx, "demo", sampleTxs())
		}()
	}
	wg.Wait()

	got, err := s.ListTransactions(ctx, "demo")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 16*3 {
		t.Fatalf("expected %d transactions, got %d", 16*3, len(got))
	}
}

func TestCSVRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleTxs()); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := sampleTxs()
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		if !got[i].Date.Equal(want[i].Date) || got[i].Amount != want[i].Amount ||
			got[i].Category != want[i].Category || got[i].Description != want[i].Description {
			t.Fatalf("row %d mismatch: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestReadCSVRejectsBadRows(t *testing.T) {
	cases := []string{
		"date,description\n",
		"date,description,amount,category\nnot-a-date,X,-5,Coffee\n",
		"date,description,amount,category\n2026-08-01,X,abc,Coffee\n",
	}
	for i, in := range cases {
		if _, err := ReadCSV(strings.NewReader(in)); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}
