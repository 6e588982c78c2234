package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Signals holds everything the extractors pulled out of a single message
// body. Every field is optional; the assembler decides which combinations
// make a viable transaction.
type Signals struct {
	Amount        decimal.Decimal
	HasAmount     bool
	OccurredAt    time.Time
	HasOccurredAt bool

	Provider        string
	DetectedAccount string
	SourceAccount   string
	PhoneNumber     string
	ContactName     string

	IsIncome      bool
	IsPromotional bool
}

// Transaction is one financial movement derived from one message.
// Amount is always a non-negative magnitude; IsIncome carries the direction.
// ID is a stable hash of the source message; CategoryID stays empty until
// the category engine fills it in.
type Transaction struct {
	ID          string
	OccurredAt  time.Time
	Amount      decimal.Decimal
	IsIncome    bool
	Description string // original message body
	Provider    string
	ContactName string
	AccountInfo string
	CategoryID  string
}
