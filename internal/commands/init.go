package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jstello/SMS-finance-sub000/internal/category"
	"github.com/jstello/SMS-finance-sub000/internal/config"
	"github.com/jstello/SMS-finance-sub000/internal/store"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new smsfinance project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir)
		},
	}

	return cmd
}

func runInit(cmd *cobra.Command, dir string) error {
	// Create directory structure.
	dirs := []string{
		"messages",
		filepath.Join("messages", "processed"),
		"logs",
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write smsfinance.yaml.
	cfg := config.Default()
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write the default category set.
	if err := store.SaveCategories(filepath.Join(dir, cfg.Files.Categories), category.Defaults()); err != nil {
		return fmt.Errorf("writing categories: %w", err)
	}

	// Write an empty provider mapping file.
	mappings, err := store.OpenMappings(filepath.Join(dir, cfg.Files.Mappings))
	if err != nil {
		return fmt.Errorf("opening mappings: %w", err)
	}
	if err := mappings.Save(); err != nil {
		return fmt.Errorf("writing mappings: %w", err)
	}

	// Write messages/.gitkeep.
	if err := os.WriteFile(filepath.Join(dir, "messages", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized smsfinance project at %s\n", dir)
	return nil
}
