package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"ledgerlab/internal/core"
)

// CSV layout for plain, already-categorized ledgers. This is not a bank
// statement parser: rows are expected in the engine's own vocabulary.
var csvHeader = []string{"date", "description", "amount", "category"}

const csvDateLayout = "2006-01-02"

// ReadCSV decodes a ledger from r. The header row is required.
func ReadCSV(r io.Reader) ([]core.Transaction, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	if len(header) < len(csvHeader) {
		return nil, fmt.Errorf("read csv header: expected columns %v, got %v", csvHeader, header)
	}

	var txs []core.Transaction
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}
		date, err := time.Parse(csvDateLayout, rec[0])
		if err != nil {
			return nil, fmt.Errorf("parse date on line %d: %w", line, err)
		}
		amount, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("parse amount on line %d: %w", line, err)
		}
		txs = append(txs, core.Transaction{
			Date:        date,
			Description: rec[1],
			Amount:      amount,
			Category:    core.Category(rec[3]),
		})
	}
	return txs, nil
}

// WriteCSV encodes a ledger to w in the same layout ReadCSV accepts.
func WriteCSV(w io.Writer, txs []core.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, t := range txs {
		rec := []string{
			t.Date.Format(csvDateLayout),
			t.Description,
			strconv.FormatFloat(t.Amount, 'f', 2, 64),
			string(t.Category),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSVFile loads a ledger from disk.
func ReadCSVFile(path string) ([]core.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ledger file: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}
