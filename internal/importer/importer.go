// Package importer reads exported SMS messages into the pipeline and
// prefilters them down to plausibly financial notifications.
package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jstello/SMS-finance-sub000/internal/model"
)

// Parser converts an exported message file into RawMessages.
type Parser interface {
	Parse(r io.Reader) ([]model.RawMessage, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// FileInfo describes a message export in the messages directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&BackupParser{})
	return r
}

// messagesDir is the subdirectory for message exports.
const messagesDir = "messages"

// processedDir is the subdirectory for processed exports.
const processedDir = "messages/processed"

// Scan returns CSV files in <root>/messages/.
func Scan(root string) ([]FileInfo, error) {
	dir := filepath.Join(root, messagesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading messages dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// MarkProcessed moves a file from messages/ to messages/processed/.
func MarkProcessed(root, fileName string) error {
	src := filepath.Join(root, messagesDir, fileName)
	dstDir := filepath.Join(root, processedDir)

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	dst := filepath.Join(dstDir, fileName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}

// Filter narrows an imported batch to messages worth extracting from.
type Filter struct {
	// Senders is a case-insensitive substring allowlist; a message from a
	// matching sender passes regardless of its body.
	Senders []string
	// Since drops messages received before it. Zero keeps everything.
	Since time.Time
	// MaxMessages caps the result after filtering. Zero means no cap.
	MaxMessages int
}

// DefaultSenders lists bank sender fragments known to carry transaction
// notifications.
var DefaultSenders = []string{
	"Bancolombia", "Nequi", "Daviplata", "BBVA", "Davivienda", "Banco",
}

var financialKeywords = []string{
	"transferencia", "transfer", "pago", "payment", "compra", "purchase",
	"cuenta", "account", "tarjeta", "card", "débito", "debit", "crédito", "credit",
	"recibo", "factura", "bill", "receipt", "efectivo", "cash",
	"transacción", "transaction", "saldo", "balance", "dinero", "money",
	"banco", "bank", "cajero", "atm", "depósito", "deposit", "retiro", "withdraw",
	"nómina", "payroll", "abono", "consignación", "ingreso", "income",
}

// HasFinancialKeywords reports whether a body mentions anything money-shaped.
// It casts a wide net on purpose; the extractors do the precise work later.
func HasFinancialKeywords(body string) bool {
	lower := strings.ToLower(body)
	for _, kw := range financialKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Apply keeps messages from an allowlisted sender or with a financial-looking
// body, inside the time window, up to the message cap. Order is preserved.
func (f Filter) Apply(msgs []model.RawMessage) []model.RawMessage {
	var kept []model.RawMessage
	for _, msg := range msgs {
		if !f.Since.IsZero() && msg.ReceivedAt.Before(f.Since) {
			continue
		}
		if !f.senderAllowed(msg.Sender) && !HasFinancialKeywords(msg.Body) {
			continue
		}
		kept = append(kept, msg)
		if f.MaxMessages > 0 && len(kept) == f.MaxMessages {
			break
		}
	}
	return kept
}

func (f Filter) senderAllowed(sender string) bool {
	lower := strings.ToLower(sender)
	for _, s := range f.Senders {
		if strings.Contains(lower, strings.ToLower(s)) {
			return true
		}
	}
	return false
}
