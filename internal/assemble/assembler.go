// Package assemble composes the extractors into whole transactions.
package assemble

import (
	"regexp"

	"github.com/jstello/SMS-finance-sub000/internal/extract"
	"github.com/jstello/SMS-finance-sub000/internal/id"
	"github.com/jstello/SMS-finance-sub000/internal/model"
)

// ContactDirectory resolves a phone number to a contact name. Lookups are
// synchronous and fallible; the assembler treats any error as a miss and
// never retries.
type ContactDirectory interface {
	LookupContactName(phoneNumber string) (string, error)
}

// Some bank templates embed the counterparty's phone number directly in the
// body, masked by a run of zeros, outside any account-pattern context.
var directPhonePattern = regexp.MustCompile(`0{4,}(3\d{9})`)

// Assembler turns raw messages into transactions for one processing batch.
// Not safe for concurrent use; concurrent batches each need their own
// Assembler.
type Assembler struct {
	extractor *extract.Extractor
	contacts  ContactDirectory // may be nil
}

// New creates an Assembler. contacts may be nil when no directory is
// available; contact names then stay empty.
func New(contacts ContactDirectory) *Assembler {
	return &Assembler{
		extractor: extract.NewExtractor(),
		contacts:  contacts,
	}
}

// Assemble builds a Transaction from one message. It returns false when the
// message yields no timestamp or no amount; promotional and malformed
// messages are expected to fail here, so this is a drop, not an error.
func (a *Assembler) Assemble(msg model.RawMessage) (model.Transaction, bool) {
	sig := a.extractor.Signals(msg.Body)

	occurredAt := sig.OccurredAt
	if !sig.HasOccurredAt {
		if msg.ReceivedAt.IsZero() {
			return model.Transaction{}, false
		}
		occurredAt = msg.ReceivedAt
	}
	if !sig.HasAmount {
		return model.Transaction{}, false
	}

	provider := sig.Provider
	contactName := a.lookup(sig.PhoneNumber)
	if provider == "" && contactName != "" {
		provider = contactName
	}

	// A contact found via the direct phone pattern outranks one derived
	// from the account info.
	if m := directPhonePattern.FindStringSubmatch(msg.Body); m != nil {
		if direct := a.lookup(m[1]); direct != "" {
			contactName = direct
			if provider == "" {
				provider = direct
			}
		}
	}

	return model.Transaction{
		ID:          id.Stable(msg),
		OccurredAt:  occurredAt,
		Amount:      sig.Amount,
		IsIncome:    sig.IsIncome,
		Description: msg.Body,
		Provider:    provider,
		ContactName: contactName,
		AccountInfo: sig.DetectedAccount,
	}, true
}

// AssembleBatch runs Assemble over a whole batch, dropping messages that do
// not yield a transaction, and clears the per-batch memo when done.
func (a *Assembler) AssembleBatch(msgs []model.RawMessage) []model.Transaction {
	defer a.extractor.ClearCache()

	var txs []model.Transaction
	for _, msg := range msgs {
		if tx, ok := a.Assemble(msg); ok {
			txs = append(txs, tx)
		}
	}
	return txs
}

func (a *Assembler) lookup(phone string) string {
	if phone == "" || a.contacts == nil {
		return ""
	}
	name, err := a.contacts.LookupContactName(phone)
	if err != nil {
		return "" // collaborator failure counts as a miss
	}
	return name
}
