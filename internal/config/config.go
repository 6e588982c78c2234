package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jstello/SMS-finance-sub000/internal/importer"
)

// FileName is the default config file name in the project root.
const FileName = "smsfinance.yaml"

// Config represents the top-level smsfinance.yaml configuration.
type Config struct {
	Import ImportConfig `yaml:"import"`
	Files  FilesConfig  `yaml:"files"`
}

// ImportConfig controls which messages enter the pipeline.
type ImportConfig struct {
	// Senders is a case-insensitive substring allowlist of bank senders.
	Senders []string `yaml:"senders"`
	// RecentMonths limits imports to the last N months. 0 disables the limit.
	RecentMonths int `yaml:"recent_months"`
	// MaxMessages caps how many messages one run processes. 0 disables the cap.
	MaxMessages int `yaml:"max_messages"`
}

// FilesConfig locates the data files, relative to the project root.
type FilesConfig struct {
	Transactions string `yaml:"transactions"`
	Categories   string `yaml:"categories"`
	Mappings     string `yaml:"mappings"`
	Contacts     string `yaml:"contacts,omitempty"`
}

// Load reads a smsfinance.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Import: ImportConfig{
			Senders:      importer.DefaultSenders,
			RecentMonths: 12,
			MaxMessages:  500,
		},
		Files: FilesConfig{
			Transactions: "transactions.csv",
			Categories:   "categories.yaml",
			Mappings:     "mappings.yaml",
		},
	}
}
