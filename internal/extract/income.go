package extract

import "regexp"

// Keywords that reliably mark a deposit-style notification. This is a pure
// presence test: a body that mentions both an income and an expense keyword
// is still classified as income.
var incomePattern = regexp.MustCompile(`(?i)(recepci[óo]n|recibiste|n[óo]mina|abono|consignaci[óo]n|dep[óo]sito|ingreso|transferencia recibida|received|deposit|credit|incoming transfer)`)

// IsIncome reports whether body describes money coming in.
func IsIncome(body string) bool {
	return incomePattern.MatchString(body)
}
