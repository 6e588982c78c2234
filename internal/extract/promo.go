package extract

import "regexp"

// URL-like tokens: explicit http(s) links, www-prefixed hosts, shortened-link
// domains, and bare word.tld/path forms.
var urlPattern = regexp.MustCompile(`(?i)(https?://\S+|www\.\S+|\b[a-z0-9-]+\.(?:com|co|net|org|ly|me|io|link)/\S*)`)

// The discount/offer/promo/coupon keyword family, Spanish and English.
var promoKeywordPattern = regexp.MustCompile(`(?i)(descuento|dcto|oferta|promoci[óo]n|\bpromo\b|cup[óo]n|coupon|discount|offer|sorteo|\bgana\b)`)

// PromoFilter classifies message bodies as promotional noise, memoizing the
// result per exact body text. It is scoped to one processing batch and is not
// safe for concurrent use; concurrent batches must each own their own filter.
type PromoFilter struct {
	memo map[string]bool
}

// NewPromoFilter creates an empty promotional-message filter.
func NewPromoFilter() *PromoFilter {
	return &PromoFilter{memo: make(map[string]bool)}
}

// IsPromotional reports whether body looks like marketing noise rather than a
// transaction notification: it contains a URL-like token or a promotional
// keyword.
func (f *PromoFilter) IsPromotional(body string) bool {
	if v, ok := f.memo[body]; ok {
		return v
	}
	v := urlPattern.MatchString(body) || promoKeywordPattern.MatchString(body)
	f.memo[body] = v
	return v
}

// Clear drops the memo table. Callers invoke it at batch boundaries.
func (f *PromoFilter) Clear() {
	f.memo = make(map[string]bool)
}
