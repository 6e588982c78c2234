// Package extract turns unstructured bank notification text into typed
// signals: amounts, timestamps, counterparties, account identifiers, and
// direction. Every extractor represents failure as absence; none of them
// return errors.
package extract

import "github.com/jstello/SMS-finance-sub000/internal/model"

// Extractor runs the individual extractors over message bodies for one
// processing batch. It owns the promotional memo, which gates amount and
// account extraction so that no financial data is read out of marketing
// noise. Not safe for concurrent use; one batch, one Extractor.
type Extractor struct {
	promo *PromoFilter
}

// NewExtractor creates an Extractor with a fresh promotional memo.
func NewExtractor() *Extractor {
	return &Extractor{promo: NewPromoFilter()}
}

// Signals extracts everything recognizable from body. Amount and account
// extraction are skipped for promotional bodies; provider, direction, and
// datetime extraction always run.
func (e *Extractor) Signals(body string) model.Signals {
	s := model.Signals{
		IsPromotional: e.promo.IsPromotional(body),
		IsIncome:      IsIncome(body),
	}

	if p, ok := Provider(body); ok {
		s.Provider = p
	}
	if t, ok := DateTime(body); ok {
		s.OccurredAt = t
		s.HasOccurredAt = true
	}

	if !s.IsPromotional {
		if raw, ok := Amount(body); ok {
			if d, parsed := ParseAmount(raw); parsed {
				s.Amount = d
				s.HasAmount = true
			}
		}
		s.DetectedAccount, s.SourceAccount = AccountInfo(body)
		if s.SourceAccount != "" {
			if phone, ok := PhoneFromAccount(s.SourceAccount); ok {
				s.PhoneNumber = phone
			}
		}
	}

	return s
}

// ClearCache drops the promotional memo. Callers invoke it when a batch
// completes.
func (e *Extractor) ClearCache() {
	e.promo.Clear()
}
