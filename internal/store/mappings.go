package store

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

type mappingFile struct {
	Mappings map[string]string `yaml:"mappings"`
}

// Mappings is a provider-to-category lookup backed by a YAML file. Provider
// names are normalized to lowercase, so "EXITO" and "Exito" share one entry.
// It satisfies the category engine's ProviderMappings interface.
type Mappings struct {
	path       string
	byProvider map[string]string
}

// OpenMappings loads the mapping file at path. A missing file is an empty
// store, not an error; the first Save creates it.
func OpenMappings(path string) (*Mappings, error) {
	m := &Mappings{path: path, byProvider: make(map[string]string)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return m, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading mappings: %w", err)
	}

	var f mappingFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing mappings: %w", err)
	}
	for provider, categoryID := range f.Mappings {
		m.byProvider[normalizeProvider(provider)] = categoryID
	}
	return m, nil
}

// CategoryForProvider returns the mapped category ID, or "" when the provider
// has no mapping.
func (m *Mappings) CategoryForProvider(provider string) (string, error) {
	return m.byProvider[normalizeProvider(provider)], nil
}

// Set maps a provider to a category ID, replacing any previous mapping.
func (m *Mappings) Set(provider, categoryID string) {
	m.byProvider[normalizeProvider(provider)] = categoryID
}

// Delete removes a provider's mapping, if any.
func (m *Mappings) Delete(provider string) {
	delete(m.byProvider, normalizeProvider(provider))
}

// Providers returns the mapped provider names, sorted.
func (m *Mappings) Providers() []string {
	providers := make([]string, 0, len(m.byProvider))
	for p := range m.byProvider {
		providers = append(providers, p)
	}
	sort.Strings(providers)
	return providers
}

// Save writes the mappings back to the file they were opened from.
func (m *Mappings) Save() error {
	data, err := yaml.Marshal(mappingFile{Mappings: m.byProvider})
	if err != nil {
		return fmt.Errorf("marshaling mappings: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return fmt.Errorf("writing mappings: %w", err)
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}
