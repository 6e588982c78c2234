package extract

import "regexp"

// The Bancolombia transfer template names both the recipient and the masked
// source product; it outranks the generic patterns.
var transferTemplatePattern = regexp.MustCompile(`a\s(.+?)\sdesde\sproducto\s(\*\d+)`)

// Generic account patterns, tried in order. A pattern with two capture
// groups yields the second group for both outputs; single-group patterns
// populate only the detected account.
var accountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(cuenta|producto|desde)\s*(\*\d+)`),
	regexp.MustCompile(`a\s(.+?)\sdesde`),
	regexp.MustCompile(`(?:destino|destinatario)\s+([\w\s*]+)`),
	regexp.MustCompile(`(?:enviado|envio|transferido)\s+a\s+([\w\s*]+)`),
	regexp.MustCompile(`(?:n[úu]mero|cuenta)\s+([*\d]+)`),
}

// AccountInfo finds masked account identifiers in body. It returns the
// detected account and, when the template names one, the source account.
func AccountInfo(body string) (detected, source string) {
	if m := transferTemplatePattern.FindStringSubmatch(body); m != nil {
		return m[1], m[2]
	}

	for _, p := range accountPatterns {
		m := p.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		if len(m) >= 3 && m[2] != "" {
			return m[2], m[2]
		}
		if m[1] != "" {
			return m[1], ""
		}
	}

	return "", ""
}

var (
	// Colombian mobile numbers masked behind runs of zeros, e.g. "*00003001234567".
	maskedMobilePattern = regexp.MustCompile(`\*?0{3,}(3\d{9})`)
	bareMobilePattern   = regexp.MustCompile(`(?:^|[^\d])(3\d{9})(?:[^\d]|$)`)
)

// PhoneFromAccount pulls a 10-digit mobile number out of an account
// identifier, preferring the zero-masked form.
func PhoneFromAccount(account string) (string, bool) {
	if m := maskedMobilePattern.FindStringSubmatch(account); m != nil {
		return m[1], true
	}
	if m := bareMobilePattern.FindStringSubmatch(account); m != nil {
		return m[1], true
	}
	return "", false
}
