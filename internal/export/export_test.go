package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstello/SMS-finance-sub000/internal/model"
)

func sampleTx(id string) model.Transaction {
	return model.Transaction{
		ID:          id,
		OccurredAt:  time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC),
		Amount:      decimal.RequireFromString("50000"),
		IsIncome:    false,
		Description: "Compraste $50.000 en EXITO CALLE 80",
		Provider:    "EXITO CALLE 80",
		AccountInfo: "*4321",
		CategoryID:  "groceries",
	}
}

func TestWriteRead_RoundTrip(t *testing.T) {
	want := []model.Transaction{sampleTx("aa11"), sampleTx("bb22")}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, want))

	got, err := Read(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, want[0].ID, got[0].ID)
	assert.Equal(t, want[0].OccurredAt, got[0].OccurredAt)
	assert.True(t, want[0].Amount.Equal(got[0].Amount))
	assert.Equal(t, want[0].Description, got[0].Description)
	assert.Equal(t, want[0].CategoryID, got[0].CategoryID)
}

func TestWrite_Header(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))
	assert.Equal(t, Header+"\n", buf.String())
}

func TestRead_DescriptionWithCommas(t *testing.T) {
	tx := sampleTx("cc33")
	tx.Description = "Compraste $1.000.000 en EXITO, sede CALLE 80, Bogota"

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []model.Transaction{tx}))

	got, err := Read(&buf)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, tx.Description, got[0].Description)
}

func TestUnmarshal_Errors(t *testing.T) {
	tests := []struct {
		name   string
		record []string
	}{
		{"wrong field count", []string{"id", "2024-03-15T14:30:00Z"}},
		{"bad timestamp", []string{"id", "NOTATIME", "50000", "false", "d", "p", "c", "a", ""}},
		{"bad amount", []string{"id", "2024-03-15T14:30:00Z", "NaNCOP", "false", "d", "p", "c", "a", ""}},
		{"bad is_income", []string{"id", "2024-03-15T14:30:00Z", "50000", "maybe", "d", "p", "c", "a", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal(tt.record)
			assert.Error(t, err)
		})
	}
}

func TestSink_AppendCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	s := NewSink(path)

	added, err := s.Append([]model.Transaction{sampleTx("aa11")})
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), Header))
}

func TestSink_AppendDedupesByID(t *testing.T) {
	s := NewSink(filepath.Join(t.TempDir(), "transactions.csv"))

	first := sampleTx("aa11")
	_, err := s.Append([]model.Transaction{first})
	require.NoError(t, err)

	// Same ID with a different category: the first write wins.
	recategorized := first
	recategorized.CategoryID = "shopping"
	added, err := s.Append([]model.Transaction{recategorized, sampleTx("bb22")})
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	txs, err := s.Load()
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "groceries", txs[0].CategoryID)
}

func TestSink_AppendSkipsBlankIDs(t *testing.T) {
	s := NewSink(filepath.Join(t.TempDir(), "transactions.csv"))

	tx := sampleTx("")
	added, err := s.Append([]model.Transaction{tx})
	require.NoError(t, err)
	assert.Zero(t, added)
}

func TestSink_AppendDedupesWithinBatch(t *testing.T) {
	s := NewSink(filepath.Join(t.TempDir(), "transactions.csv"))

	added, err := s.Append([]model.Transaction{sampleTx("aa11"), sampleTx("aa11")})
	require.NoError(t, err)
	assert.Equal(t, 1, added)
}

func TestSink_LoadMissingFile(t *testing.T) {
	s := NewSink(filepath.Join(t.TempDir(), "transactions.csv"))
	txs, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, txs)
}

func TestSink_Rewrite(t *testing.T) {
	s := NewSink(filepath.Join(t.TempDir(), "transactions.csv"))
	_, err := s.Append([]model.Transaction{sampleTx("aa11")})
	require.NoError(t, err)

	updated := sampleTx("aa11")
	updated.CategoryID = "shopping"
	require.NoError(t, s.Rewrite([]model.Transaction{updated}))

	txs, err := s.Load()
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "shopping", txs[0].CategoryID)
}
