package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency markers recognized in message bodies.
var amountPattern = regexp.MustCompile(`(\$|COP)\s*(\d{1,3}(?:[.,]\d{3})*|\d+)(?:[.,](\d{2}))?`)

var currencyMarkerPattern = regexp.MustCompile(`^(\$|COP)`)

var groupSeparators = strings.NewReplacer(".", "", ",", "")

// Amount finds the first currency-prefixed numeric token in body and returns
// it normalized as "<marker><integer>[.<cents>]". Internal '.' and ',' in the
// integer part are treated purely as thousands separators. A trailing "00"
// group is dropped, so "$1.234,00" and "$1.234" normalize identically; this
// is a deliberate compatibility heuristic, not locale-correct decimal
// parsing, and it misreads amounts that genuinely end in .00 cents.
func Amount(body string) (string, bool) {
	m := amountPattern.FindStringSubmatch(body)
	if m == nil {
		return "", false
	}

	currency := m[1]
	mainNumber := groupSeparators.Replace(m[2])
	cents := m[3]

	if cents == "" || cents == "00" {
		return currency + mainNumber, true
	}
	return currency + mainNumber + "." + cents, true
}

// ParseAmount converts a normalized amount string into a decimal magnitude.
// The currency marker is stripped and ',' is read as '.' before parsing.
func ParseAmount(amount string) (decimal.Decimal, bool) {
	if amount == "" {
		return decimal.Decimal{}, false
	}
	s := currencyMarkerPattern.ReplaceAllString(amount, "")
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
