// Package contacts resolves phone numbers to contact names from a CSV
// export, standing in for the phone's contact book.
package contacts

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	contactNumFields = 2
	colName          = 0
	colPhone         = 1
)

// Directory is an in-memory phone-to-name index. It satisfies the
// assembler's ContactDirectory interface.
type Directory struct {
	byPhone map[string]string
}

// Open loads a name,phone CSV file into a Directory.
func Open(path string) (*Directory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening contacts: %w", err)
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing contacts %s: %w", path, err)
	}
	return d, nil
}

// Parse reads a name,phone CSV. Later rows win duplicate phone numbers.
func Parse(r io.Reader) (*Directory, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = contactNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading contacts CSV: %w", err)
	}

	d := &Directory{byPhone: make(map[string]string)}
	if len(records) <= 1 {
		return d, nil
	}
	for _, rec := range records[1:] {
		phone := normalizePhone(rec[colPhone])
		if phone == "" {
			continue
		}
		d.byPhone[phone] = rec[colName]
	}
	return d, nil
}

// LookupContactName returns the contact name for a phone number, or "" when
// the number is unknown. Formatting differences (spaces, dashes, a +57
// country prefix) do not affect the match.
func (d *Directory) LookupContactName(phoneNumber string) (string, error) {
	return d.byPhone[normalizePhone(phoneNumber)], nil
}

// Len returns the number of distinct phone numbers in the directory.
func (d *Directory) Len() int {
	return len(d.byPhone)
}

// normalizePhone strips everything but digits and a Colombian country
// prefix, leaving the bare 10-digit mobile number.
func normalizePhone(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	if len(digits) == 12 && strings.HasPrefix(digits, "57") {
		digits = digits[2:]
	}
	return digits
}
