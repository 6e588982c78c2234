// Package commands wires the pipeline into the smsfinance CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jstello/SMS-finance-sub000/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "smsfinance",
		Short:   "Mine transactions from bank SMS notifications",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newExtractCommand())
	rootCmd.AddCommand(newCategorizeCommand())
	rootCmd.AddCommand(newInsightsCommand())

	return rootCmd
}
