package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jstello/SMS-finance-sub000/internal/config"
	"github.com/jstello/SMS-finance-sub000/internal/export"
	"github.com/jstello/SMS-finance-sub000/internal/insights"
	"github.com/jstello/SMS-finance-sub000/internal/model"
	"github.com/jstello/SMS-finance-sub000/internal/store"
)

func newInsightsCommand() *cobra.Command {
	var dir string
	var year, month int
	var categoryName string
	var budget string
	var compare bool

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Summarize spending by category",
		Long: `Insights prints a per-category spending breakdown for one month.
With --compare it adds a month-over-month comparison; with --budget it
checks one category's spend against a budget.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			now := time.Now()
			if year == 0 {
				year = now.Year()
			}
			if month == 0 {
				month = int(now.Month())
			}
			if month < 1 || month > 12 {
				return fmt.Errorf("invalid month %d", month)
			}

			return runInsights(cmd, absDir, year, time.Month(month), categoryName, budget, compare)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().IntVar(&year, "year", 0, "year to analyze (default: current)")
	cmd.Flags().IntVar(&month, "month", 0, "month to analyze, 1-12 (default: current)")
	cmd.Flags().StringVar(&categoryName, "category", "", "narrow to one category")
	cmd.Flags().StringVar(&budget, "budget", "", "budget amount to check --category against")
	cmd.Flags().BoolVar(&compare, "compare", false, "compare against the previous month")

	return cmd
}

func runInsights(cmd *cobra.Command, dir string, year int, month time.Month, categoryName, budget string, compare bool) error {
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return fmt.Errorf("loading config (run init first?): %w", err)
	}

	categories, err := store.LoadCategories(filepath.Join(dir, cfg.Files.Categories))
	if err != nil {
		return err
	}

	txs, err := export.NewSink(filepath.Join(dir, cfg.Files.Transactions)).Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Spending for %s %d\n", month, year)

	totals := insights.SpendingByCategory(txs, categories, insights.Filter{
		Year:      year,
		Month:     month,
		Direction: insights.ExpensesOnly,
	})
	shares := insights.Breakdown(totals)
	if len(shares) == 0 {
		fmt.Fprintln(out, "  no expenses recorded")
	}
	for _, share := range shares {
		fmt.Fprintf(out, "  %-16s %12s  %5s%%\n",
			share.Category.Name, share.Amount.StringFixed(0), share.Percent.StringFixed(1))
	}

	if budget != "" {
		if categoryName == "" {
			return fmt.Errorf("--budget requires --category")
		}
		amount, err := decimal.NewFromString(budget)
		if err != nil {
			return fmt.Errorf("parsing budget %q: %w", budget, err)
		}
		status, ok := insights.CheckBudget(txs, categories, year, month, categoryName, amount)
		if !ok {
			return unknownCategoryErr(categoryName, categories)
		}
		fmt.Fprintf(out, "\nBudget for %s: spent %s of %s (%s%%), %s remaining\n",
			status.Category.Name, status.Spent.StringFixed(0), status.Budget.StringFixed(0),
			status.PercentOfBudget.StringFixed(1), status.Remaining.StringFixed(0))
	}

	if compare {
		cmp, ok := insights.CompareToPreviousMonth(txs, categories, year, month, categoryName)
		if !ok {
			return unknownCategoryErr(categoryName, categories)
		}
		fmt.Fprintf(out, "\nVs previous month: %s -> %s (%s%%, %s)\n",
			cmp.Previous.StringFixed(0), cmp.Current.StringFixed(0),
			cmp.PercentChange.StringFixed(1), cmp.Trend)
	}

	return nil
}

func unknownCategoryErr(name string, categories []model.Category) error {
	if suggestion, found := store.ClosestName(name, categories); found {
		return fmt.Errorf("unknown category %q (did you mean %q?)", name, suggestion.Name)
	}
	return fmt.Errorf("unknown category %q", name)
}
