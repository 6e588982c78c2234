package export

import (
	"fmt"
	"os"

	"github.com/jstello/SMS-finance-sub000/internal/model"
)

// Sink appends transactions to one transactions.csv file.
type Sink struct {
	path string
}

// NewSink creates a Sink for the given file path. The file is created with a
// header on the first Append.
func NewSink(path string) *Sink {
	return &Sink{path: path}
}

// Load reads every transaction currently in the file. A missing file is an
// empty sink.
func (s *Sink) Load() ([]model.Transaction, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening transactions: %w", err)
	}
	defer f.Close()

	txs, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", s.path, err)
	}
	return txs, nil
}

// Append adds transactions the file has not seen before and reports how many
// were written. An ID already present keeps its existing row untouched, so
// re-running an extraction over an overlapping window is safe.
func (s *Sink) Append(txs []model.Transaction) (int, error) {
	existing, err := s.Load()
	if err != nil {
		return 0, err
	}

	seen := make(map[string]bool, len(existing))
	for _, tx := range existing {
		seen[tx.ID] = true
	}

	var fresh []model.Transaction
	for _, tx := range txs {
		if tx.ID == "" || seen[tx.ID] {
			continue
		}
		seen[tx.ID] = true
		fresh = append(fresh, tx)
	}
	if len(fresh) == 0 {
		return 0, nil
	}

	if err := s.writeAll(append(existing, fresh...)); err != nil {
		return 0, err
	}
	return len(fresh), nil
}

// Rewrite replaces the whole file, used after categorization updates rows in
// place.
func (s *Sink) Rewrite(txs []model.Transaction) error {
	return s.writeAll(txs)
}

func (s *Sink) writeAll(txs []model.Transaction) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("creating transactions file: %w", err)
	}
	defer f.Close()

	if err := Write(f, txs); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return f.Close()
}
