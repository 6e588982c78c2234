package extract

import (
	"regexp"
	"time"
)

// Bank templates render the moment of a transaction either date-first or
// time-first, with arbitrary text between the two tokens.
var dateTimePattern = regexp.MustCompile(
	`(\d{2}/\d{2}/\d{4}).*?(\d{2}:\d{2}(?::\d{2})?)|(\d{2}:\d{2}(?::\d{2})?).*?(\d{2}/\d{2}/\d{4})`)

const (
	dateTimeLayout       = "02/01/2006 15:04:05"
	dateTimeLayoutNoSecs = "02/01/2006 15:04"
)

// DateTime finds a DD/MM/YYYY date and an HH:MM[:SS] time in body, in either
// order, and parses them as one timestamp. Returns false when neither
// ordering matches or the matched text fails calendar validation.
func DateTime(body string) (time.Time, bool) {
	m := dateTimePattern.FindStringSubmatch(body)
	if m == nil {
		return time.Time{}, false
	}

	var normalized string
	switch {
	case m[1] != "" && m[2] != "":
		normalized = m[1] + " " + m[2]
	case m[3] != "" && m[4] != "":
		normalized = m[4] + " " + m[3]
	default:
		return time.Time{}, false
	}

	return parseDateTime(normalized)
}

// parseDateTime tries the seconds-included layout first, then the
// seconds-omitted one.
func parseDateTime(s string) (time.Time, bool) {
	if t, err := time.Parse(dateTimeLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(dateTimeLayoutNoSecs, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
