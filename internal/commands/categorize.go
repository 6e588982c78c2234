package commands

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jstello/SMS-finance-sub000/internal/category"
	"github.com/jstello/SMS-finance-sub000/internal/config"
	"github.com/jstello/SMS-finance-sub000/internal/export"
	"github.com/jstello/SMS-finance-sub000/internal/id"
	"github.com/jstello/SMS-finance-sub000/internal/model"
	"github.com/jstello/SMS-finance-sub000/internal/runlog"
	"github.com/jstello/SMS-finance-sub000/internal/store"
)

func newCategorizeCommand() *cobra.Command {
	var dir string
	var recategorize bool

	cmd := &cobra.Command{
		Use:   "categorize",
		Short: "Assign categories to extracted transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runCategorize(cmd, absDir, recategorize)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().BoolVar(&recategorize, "recategorize", false, "reassign already categorized transactions too")

	cmd.AddCommand(newCategorizeMapCommand())

	return cmd
}

func runCategorize(cmd *cobra.Command, dir string, recategorize bool) error {
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return fmt.Errorf("loading config (run init first?): %w", err)
	}

	categories, err := store.LoadCategories(filepath.Join(dir, cfg.Files.Categories))
	if err != nil {
		return err
	}
	mappings, err := store.OpenMappings(filepath.Join(dir, cfg.Files.Mappings))
	if err != nil {
		return err
	}

	sink := export.NewSink(filepath.Join(dir, cfg.Files.Transactions))
	txs, err := sink.Load()
	if err != nil {
		return err
	}

	engine := category.NewEngine(mappings)
	assigned := 0
	for i := range txs {
		if txs[i].CategoryID != "" && !recategorize {
			continue
		}
		if c, ok := engine.Assign(txs[i], categories); ok {
			txs[i].CategoryID = c.ID
			assigned++
		}
	}

	if err := sink.Rewrite(txs); err != nil {
		return err
	}

	entry := runlog.Entry{
		Timestamp: time.Now().UTC(),
		RunID:     id.NewRunID(),
		Command:   "categorize",
		Scanned:   len(txs),
		Produced:  assigned,
	}
	if err := runlog.Append(dir, []runlog.Entry{entry}); err != nil {
		return fmt.Errorf("writing run log: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Categorized %d of %d transactions\n", assigned, len(txs))
	return nil
}

func newCategorizeMapCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "map <provider> <category>",
		Short: "Pin a provider to a category",
		Long: `Map records that every transaction from a provider belongs to one
category. The mapping outranks keyword scoring on the next categorize run.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runCategorizeMap(cmd, absDir, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")

	return cmd
}

func runCategorizeMap(cmd *cobra.Command, dir, provider, categoryName string) error {
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return fmt.Errorf("loading config (run init first?): %w", err)
	}

	categories, err := store.LoadCategories(filepath.Join(dir, cfg.Files.Categories))
	if err != nil {
		return err
	}

	target, ok := findCategoryByName(categories, categoryName)
	if !ok {
		return unknownCategoryErr(categoryName, categories)
	}

	mappings, err := store.OpenMappings(filepath.Join(dir, cfg.Files.Mappings))
	if err != nil {
		return err
	}
	mappings.Set(provider, target.ID)
	if err := mappings.Save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Mapped %q to %s\n", provider, target.Name)
	return nil
}

func findCategoryByName(categories []model.Category, name string) (model.Category, bool) {
	for _, c := range categories {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return model.Category{}, false
}
