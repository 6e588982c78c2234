package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jstello/SMS-finance-sub000/internal/model"
)

// BackupParser parses SMS backup CSV exports with sender,body,received_at
// columns. Timestamps are RFC 3339 or epoch milliseconds; backup apps emit
// either.
type BackupParser struct{}

const (
	backupNumFields   = 3
	backupColSender   = 0
	backupColBody     = 1
	backupColReceived = 2
)

// Format returns the parser name.
func (p *BackupParser) Format() string { return "backup" }

// Parse reads a backup CSV and returns RawMessages.
func (p *BackupParser) Parse(r io.Reader) ([]model.RawMessage, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = backupNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading backup CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var msgs []model.RawMessage
	for i, rec := range records[1:] {
		msg, err := parseBackupRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

func parseBackupRow(rec []string) (model.RawMessage, error) {
	receivedAt, err := parseReceivedAt(rec[backupColReceived])
	if err != nil {
		return model.RawMessage{}, fmt.Errorf("parsing received_at %q: %w", rec[backupColReceived], err)
	}

	return model.RawMessage{
		Sender:     rec[backupColSender],
		Body:       rec[backupColBody],
		ReceivedAt: receivedAt,
	}, nil
}

func parseReceivedAt(s string) (time.Time, error) {
	if millis, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(millis).UTC(), nil
	}
	return time.Parse(time.RFC3339, s)
}
