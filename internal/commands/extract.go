package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jstello/SMS-finance-sub000/internal/assemble"
	"github.com/jstello/SMS-finance-sub000/internal/config"
	"github.com/jstello/SMS-finance-sub000/internal/contacts"
	"github.com/jstello/SMS-finance-sub000/internal/export"
	"github.com/jstello/SMS-finance-sub000/internal/extract"
	"github.com/jstello/SMS-finance-sub000/internal/id"
	"github.com/jstello/SMS-finance-sub000/internal/importer"
	"github.com/jstello/SMS-finance-sub000/internal/logging"
	"github.com/jstello/SMS-finance-sub000/internal/model"
	"github.com/jstello/SMS-finance-sub000/internal/runlog"
)

func newExtractCommand() *cobra.Command {
	var dir string
	var format string
	var logLevel string

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract transactions from exported messages",
		Long: `Extract parses message exports in <dir>/messages/, filters them down to
financial notifications, mines each one for a transaction, and appends the
results to the transactions file. Files that were processed move to
messages/processed/. Re-running over the same exports is safe: transactions
dedupe by a stable content ID.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			logger := logging.NewLogger(logLevel)
			defer logger.Sync()

			return runExtract(cmd, absDir, format, logger)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&format, "format", "backup", "message export format")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level")

	return cmd
}

func runExtract(cmd *cobra.Command, dir, format string, logger *zap.Logger) error {
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return fmt.Errorf("loading config (run init first?): %w", err)
	}

	parser := importer.DefaultRegistry().Get(format)
	if parser == nil {
		return fmt.Errorf("unknown message format %q", format)
	}

	files, err := importer.Scan(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No message exports found in messages/")
		return nil
	}

	var msgs []model.RawMessage
	for _, file := range files {
		parsed, err := parseFile(parser, file.Path)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", file.Name, err)
		}
		logger.Debug("parsed message export",
			zap.String("file", file.Name),
			zap.Int("messages", len(parsed)))
		msgs = append(msgs, parsed...)
	}

	filter := importer.Filter{
		Senders:     cfg.Import.Senders,
		MaxMessages: cfg.Import.MaxMessages,
	}
	if cfg.Import.RecentMonths > 0 {
		filter.Since = time.Now().AddDate(0, -cfg.Import.RecentMonths, 0)
	}
	kept := filter.Apply(msgs)
	logger.Info("filtered messages",
		zap.Int("total", len(msgs)),
		zap.Int("kept", len(kept)))

	asm := assemble.New(openContacts(dir, cfg, logger))
	txs := asm.AssembleBatch(kept)

	promotional := countPromotional(kept)
	dropped := len(kept) - promotional - len(txs)

	sink := export.NewSink(filepath.Join(dir, cfg.Files.Transactions))
	added, err := sink.Append(txs)
	if err != nil {
		return err
	}

	for _, file := range files {
		if err := importer.MarkProcessed(dir, file.Name); err != nil {
			return err
		}
	}

	entry := runlog.Entry{
		Timestamp:   time.Now().UTC(),
		RunID:       id.NewRunID(),
		Command:     "extract",
		Scanned:     len(kept),
		Promotional: promotional,
		Dropped:     dropped,
		Produced:    added,
	}
	if err := runlog.Append(dir, []runlog.Entry{entry}); err != nil {
		return fmt.Errorf("writing run log: %w", err)
	}

	logger.Info("extraction complete",
		zap.String("run_id", entry.RunID),
		zap.Int("scanned", entry.Scanned),
		zap.Int("promotional", entry.Promotional),
		zap.Int("dropped", entry.Dropped),
		zap.Int("produced", entry.Produced))
	fmt.Fprintf(cmd.OutOrStdout(), "Extracted %d transactions from %d messages (%d promotional, %d dropped)\n",
		added, entry.Scanned, entry.Promotional, entry.Dropped)
	return nil
}

func parseFile(parser importer.Parser, path string) ([]model.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parser.Parse(f)
}

// openContacts is best-effort: a missing or unreadable contact file degrades
// to no contact names, it never fails the run.
func openContacts(dir string, cfg *config.Config, logger *zap.Logger) assemble.ContactDirectory {
	if cfg.Files.Contacts == "" {
		return nil
	}
	d, err := contacts.Open(filepath.Join(dir, cfg.Files.Contacts))
	if err != nil {
		logger.Warn("contact directory unavailable", zap.Error(err))
		return nil
	}
	return d
}

func countPromotional(msgs []model.RawMessage) int {
	pf := extract.NewPromoFilter()
	n := 0
	for _, msg := range msgs {
		if pf.IsPromotional(msg.Body) {
			n++
		}
	}
	return n
}
