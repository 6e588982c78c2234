// Package category assigns spending categories to transactions by scoring
// their extracted signals against a fixed keyword dictionary, with an
// optional per-user provider mapping override.
package category

import (
	"strings"

	"github.com/jstello/SMS-finance-sub000/internal/model"
)

// ProviderMappings is the optional per-user provider→category store. A
// missing mapping is reported as an empty ID; errors are treated by the
// engine exactly like a miss.
type ProviderMappings interface {
	CategoryForProvider(provider string) (string, error)
}

// Engine assigns categories. It never returns an error: every failure mode
// degrades to "no match".
type Engine struct {
	mappings ProviderMappings // may be nil
	rules    map[string][]string
}

// NewEngine creates an Engine using the static KeywordRules table. mappings
// may be nil when no per-user store is available.
func NewEngine(mappings ProviderMappings) *Engine {
	return &Engine{mappings: mappings, rules: KeywordRules}
}

// Assign picks the best category for tx out of categories.
//
// Order: a provider-mapping hit wins outright; income transactions
// short-circuit to a category literally named "Income" when one exists;
// otherwise keyword counts decide, with ties kept by the first-seen category
// — assignment is a function of the caller-supplied category order, and
// callers relying on ties must treat that ordering as part of the contract.
// When nothing scores, the category named "Other" is returned; if none
// exists, Assign returns false.
func (e *Engine) Assign(tx model.Transaction, categories []model.Category) (model.Category, bool) {
	if mapped, ok := e.mappedCategory(tx, categories); ok {
		return mapped, true
	}

	keywords := Keywords(tx)

	if tx.IsIncome {
		for _, c := range categories {
			if c.Name == "Income" {
				return c, true
			}
		}
	}

	var best model.Category
	maxMatches := 0
	for _, c := range categories {
		patterns, ok := e.rules[c.Name]
		if !ok {
			continue
		}
		if matches := countMatches(keywords, patterns); matches > maxMatches {
			maxMatches = matches
			best = c
		}
	}
	if maxMatches > 0 {
		return best, true
	}

	for _, c := range categories {
		if c.Name == "Other" {
			return c, true
		}
	}
	return model.Category{}, false
}

// mappedCategory consults the provider-mapping store; any lookup failure or
// unknown category ID falls through to keyword scoring.
func (e *Engine) mappedCategory(tx model.Transaction, categories []model.Category) (model.Category, bool) {
	if e.mappings == nil || strings.TrimSpace(tx.Provider) == "" {
		return model.Category{}, false
	}
	id, err := e.mappings.CategoryForProvider(tx.Provider)
	if err != nil || id == "" {
		return model.Category{}, false
	}
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// countMatches counts keywords that overlap a category's patterns in either
// direction: keyword inside pattern or pattern inside keyword.
func countMatches(keywords map[string]struct{}, patterns []string) int {
	n := 0
	for kw := range keywords {
		for _, p := range patterns {
			if strings.Contains(p, kw) || strings.Contains(kw, p) {
				n++
				break
			}
		}
	}
	return n
}
