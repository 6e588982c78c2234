package extract

import (
	"regexp"
	"strings"
)

// providerStrategy tries one extraction approach against a message body.
type providerStrategy func(body string) (string, bool)

// Strategies are tried in order; the first non-empty result wins. ALL-CAPS
// runs go first because bank templates reliably render the counterparty in
// capitals; the direction-specific templates only run when that fails.
var providerStrategies = []providerStrategy{
	longestAllCapsRun,
	directionTemplate,
}

// Provider identifies the merchant or counterparty named in body. Returns
// false when no strategy matches; the transaction then keeps an unknown
// provider rather than a fabricated one.
func Provider(body string) (string, bool) {
	for _, strategy := range providerStrategies {
		if p, ok := strategy(body); ok {
			return p, true
		}
	}
	return "", false
}

// Words that show up in caps but never name a counterparty.
var providerDenylist = map[string]bool{
	"COP": true,
	"USD": true,
}

var allCapsRunPattern = regexp.MustCompile(`[A-Z0-9][A-Z0-9*]+(?:\s[A-Z0-9]+)*`)

// longestAllCapsRun returns the longest run of ALL-CAPS alphanumeric tokens
// (embedded '*' allowed) of more than 3 characters, skipping the denylist.
func longestAllCapsRun(body string) (string, bool) {
	best := ""
	for _, loc := range allCapsRunPattern.FindAllStringIndex(body, -1) {
		if !cleanWordBoundary(body, loc[0], loc[1]) {
			continue
		}
		match := trimDenylisted(body[loc[0]:loc[1]])
		if len(match) <= 3 {
			continue
		}
		if len(match) > len(best) {
			best = match
		}
	}
	return best, best != ""
}

// trimDenylisted drops denylisted tokens off the front of a caps run, so a
// currency code glued to an adjacent number ("COP 45") cannot seed a
// counterparty.
func trimDenylisted(run string) string {
	for {
		tok, rest, found := strings.Cut(run, " ")
		if !providerDenylist[tok] {
			return run
		}
		if !found {
			return ""
		}
		run = rest
	}
}

// cleanWordBoundary reports whether the match at [start,end) is not glued to
// surrounding word characters, e.g. the "ERTO" inside "cubiERTO" does not
// count as a caps run.
func cleanWordBoundary(s string, start, end int) bool {
	if start > 0 && isWordByte(s[start-1]) {
		return false
	}
	if end < len(s) && isWordByte(s[end]) {
		return false
	}
	return true
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

var (
	incomeSourcePattern    = regexp.MustCompile(`(?i)de\s+(.+?)\s+a\s+tu\s+cuenta`)
	incomeCapsAfterDe      = regexp.MustCompile(`\bde\s([A-Z0-9][A-Z0-9*]+(?:\s[A-Z0-9]+)*)`)
	expensePurchasePattern = regexp.MustCompile(`(?:Compraste|pagaste)(?:\s[$\w,.]+\s|\s)en\s([A-Z0-9*]+(?:\s[A-Z0-9]+)*)`)
	expenseGenericPattern  = regexp.MustCompile(`(?i)(?:compra|pago)\s+en\s+(.+?)(?:\s(?:por|con|el)\b|$)`)
)

// directionTemplate classifies the message as income or expense and applies
// the matching bank-template patterns.
func directionTemplate(body string) (string, bool) {
	if IsIncome(body) {
		return incomeProvider(body)
	}
	return expenseProvider(body)
}

// incomeProvider captures "de <provider> a tu cuenta", falling back to an
// ALL-CAPS token immediately after "de ".
func incomeProvider(body string) (string, bool) {
	if m := incomeSourcePattern.FindStringSubmatch(body); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := incomeCapsAfterDe.FindStringSubmatch(body); m != nil {
		return m[1], true
	}
	return "", false
}

// expenseProvider captures "(Compraste|pagaste) ... en <PROVIDER>", falling
// back to "(Compra|Pago) en <provider>" terminated by a stop-word or
// end-of-string.
func expenseProvider(body string) (string, bool) {
	if m := expensePurchasePattern.FindStringSubmatch(body); m != nil {
		return m[1], true
	}
	if m := expenseGenericPattern.FindStringSubmatch(body); m != nil {
		p := strings.TrimSpace(m[1])
		if p != "" {
			return p, true
		}
	}
	return "", false
}
