// Package export persists assembled transactions to a CSV file. The file is
// the system of record for the CLI, so appends dedupe by transaction ID with
// first-write-wins semantics.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jstello/SMS-finance-sub000/internal/model"
)

// Header is the CSV header for transactions.csv.
const Header = "id,occurred_at,amount,is_income,description,provider,contact_name,account_info,category_id"

const (
	numFields     = 9
	colID         = 0
	colOccurredAt = 1
	colAmount     = 2
	colIsIncome   = 3
	colDesc       = 4
	colProvider   = 5
	colContact    = 6
	colAccount    = 7
	colCategoryID = 8
)

// Read reads all transactions from a transactions.csv reader.
func Read(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var txs []model.Transaction
	for i, rec := range records[1:] {
		tx, err := Unmarshal(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// Write writes transactions to a transactions.csv writer (including header).
func Write(w io.Writer, txs []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, tx := range txs {
		if err := cw.Write(Marshal(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// Marshal converts a Transaction to a CSV row ([]string).
func Marshal(tx model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = tx.ID
	row[colOccurredAt] = tx.OccurredAt.Format(time.RFC3339)
	row[colAmount] = tx.Amount.String()
	row[colIsIncome] = strconv.FormatBool(tx.IsIncome)
	row[colDesc] = tx.Description
	row[colProvider] = tx.Provider
	row[colContact] = tx.ContactName
	row[colAccount] = tx.AccountInfo
	row[colCategoryID] = tx.CategoryID
	return row
}

// Unmarshal converts a CSV row to a Transaction.
func Unmarshal(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	occurredAt, err := time.Parse(time.RFC3339, record[colOccurredAt])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing occurred_at %q: %w", record[colOccurredAt], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	isIncome, err := strconv.ParseBool(record[colIsIncome])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing is_income %q: %w", record[colIsIncome], err)
	}

	return model.Transaction{
		ID:          record[colID],
		OccurredAt:  occurredAt,
		Amount:      amount,
		IsIncome:    isIncome,
		Description: record[colDesc],
		Provider:    record[colProvider],
		ContactName: record[colContact],
		AccountInfo: record[colAccount],
		CategoryID:  record[colCategoryID],
	}, nil
}
