// Package store persists categories and provider-to-category mappings as
// YAML files.
package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"

	"github.com/jstello/SMS-finance-sub000/internal/model"
)

type categoryFile struct {
	Categories []model.Category `yaml:"categories"`
}

// LoadCategories reads a categories YAML file from disk.
func LoadCategories(path string) ([]model.Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading categories: %w", err)
	}
	var f categoryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing categories: %w", err)
	}
	return f.Categories, nil
}

// SaveCategories writes categories to a YAML file.
func SaveCategories(path string, categories []model.Category) error {
	data, err := yaml.Marshal(categoryFile{Categories: categories})
	if err != nil {
		return fmt.Errorf("marshaling categories: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing categories: %w", err)
	}
	return nil
}

// maxSuggestionDistance caps how far a typo may be from a real category name
// before we stop suggesting it.
const maxSuggestionDistance = 3

// ClosestName finds the category whose name is nearest to the given one by
// edit distance, for "did you mean" suggestions. The match is
// case-insensitive; false means nothing was close enough.
func ClosestName(name string, categories []model.Category) (model.Category, bool) {
	lower := strings.ToLower(name)

	best := model.Category{}
	bestDist := maxSuggestionDistance + 1
	for _, c := range categories {
		d := levenshtein.ComputeDistance(lower, strings.ToLower(c.Name))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist <= maxSuggestionDistance
}
