package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstello/SMS-finance-sub000/internal/commands"
	"github.com/jstello/SMS-finance-sub000/internal/config"
	"github.com/jstello/SMS-finance-sub000/internal/export"
	"github.com/jstello/SMS-finance-sub000/internal/runlog"
	"github.com/jstello/SMS-finance-sub000/internal/store"
)

const messagesFixture = `sender,body,received_at
Bancolombia,"Compraste $50.000 en EXITO CALLE 80 el 15/03/2024 14:30",2024-03-15T14:31:02Z
Nequi,"Recibiste una transferencia de $120.000 el 16/03/2024 09:00",2024-03-16T09:01:00Z
Bancolombia,"Gana un 50% de descuento en tu proxima compra en www.promo.co/x",2024-03-18T10:00:00Z
`

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := commands.NewRootCommand()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// initProject runs init in a temp dir and disables the recent-months window
// so fixture timestamps stay in scope.
func initProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	_, err := runCLI(t, "init", dir)
	require.NoError(t, err)

	cfgPath := filepath.Join(dir, config.FileName)
	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	cfg.Import.RecentMonths = 0
	require.NoError(t, config.Save(cfgPath, cfg))

	return dir
}

func writeMessages(t *testing.T, dir string) {
	t.Helper()
	path := filepath.Join(dir, "messages", "backup.csv")
	require.NoError(t, os.WriteFile(path, []byte(messagesFixture), 0o644))
}

func TestInit_CreatesStructure(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized smsfinance project")

	for _, d := range []string{"messages", filepath.Join("messages", "processed"), "logs"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir())
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Contains(t, cfg.Import.Senders, "Bancolombia")

	categories, err := store.LoadCategories(filepath.Join(dir, cfg.Files.Categories))
	require.NoError(t, err)
	assert.NotEmpty(t, categories)

	_, err = os.Stat(filepath.Join(dir, cfg.Files.Mappings))
	assert.NoError(t, err)
}

func TestExtract_EndToEnd(t *testing.T) {
	dir := initProject(t)
	writeMessages(t, dir)

	out, err := runCLI(t, "extract", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Extracted 2 transactions from 3 messages (1 promotional, 0 dropped)")

	txs, err := export.NewSink(filepath.Join(dir, "transactions.csv")).Load()
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "EXITO CALLE 80", txs[0].Provider)
	assert.Equal(t, "50000", txs[0].Amount.String())
	assert.True(t, txs[1].IsIncome)

	// Processed exports move out of messages/.
	_, err = os.Stat(filepath.Join(dir, "messages", "backup.csv"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "messages", "processed", "backup.csv"))
	assert.NoError(t, err)

	entries, err := runlog.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "extract", entries[0].Command)
	assert.Equal(t, 3, entries[0].Scanned)
	assert.Equal(t, 1, entries[0].Promotional)
	assert.Equal(t, 2, entries[0].Produced)
	assert.NotEmpty(t, entries[0].RunID)
}

func TestExtract_RerunIsIdempotent(t *testing.T) {
	dir := initProject(t)
	writeMessages(t, dir)

	_, err := runCLI(t, "extract", "--dir", dir)
	require.NoError(t, err)

	// Drop the same export in again; dedupe keeps the file at 2 rows.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "messages", "again.csv"), []byte(messagesFixture), 0o644))
	out, err := runCLI(t, "extract", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Extracted 0 transactions")

	txs, err := export.NewSink(filepath.Join(dir, "transactions.csv")).Load()
	require.NoError(t, err)
	assert.Len(t, txs, 2)
}

func TestExtract_NoMessages(t *testing.T) {
	dir := initProject(t)

	out, err := runCLI(t, "extract", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "No message exports found")
}

func TestExtract_UnknownFormat(t *testing.T) {
	dir := initProject(t)
	writeMessages(t, dir)

	_, err := runCLI(t, "extract", "--dir", dir, "--format", "carrier-pigeon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown message format")
}

func TestCategorize_AssignsCategories(t *testing.T) {
	dir := initProject(t)
	writeMessages(t, dir)

	_, err := runCLI(t, "extract", "--dir", dir)
	require.NoError(t, err)

	out, err := runCLI(t, "categorize", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Categorized 2 of 2 transactions")

	txs, err := export.NewSink(filepath.Join(dir, "transactions.csv")).Load()
	require.NoError(t, err)
	for _, tx := range txs {
		assert.NotEmpty(t, tx.CategoryID)
	}
	// "Compraste ... en EXITO" reads as shopping.
	assert.Equal(t, "shopping", txs[0].CategoryID)
}

func TestCategorizeMap_OverridesKeywords(t *testing.T) {
	dir := initProject(t)
	writeMessages(t, dir)

	_, err := runCLI(t, "extract", "--dir", dir)
	require.NoError(t, err)

	out, err := runCLI(t, "categorize", "map", "EXITO CALLE 80", "Food & Dining", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Mapped")

	_, err = runCLI(t, "categorize", "--dir", dir)
	require.NoError(t, err)

	txs, err := export.NewSink(filepath.Join(dir, "transactions.csv")).Load()
	require.NoError(t, err)
	assert.Equal(t, "food-dining", txs[0].CategoryID)
}

func TestCategorizeMap_SuggestsClosestName(t *testing.T) {
	dir := initProject(t)

	_, err := runCLI(t, "categorize", "map", "EXITO", "Shoping", "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "Shopping"`)
}

func TestInsights_Breakdown(t *testing.T) {
	dir := initProject(t)
	writeMessages(t, dir)

	_, err := runCLI(t, "extract", "--dir", dir)
	require.NoError(t, err)
	_, err = runCLI(t, "categorize", "--dir", dir)
	require.NoError(t, err)

	out, err := runCLI(t, "insights", "--dir", dir, "--year", "2024", "--month", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Spending for March 2024")
	assert.Contains(t, out, "Shopping")
}

func TestInsights_BudgetRequiresCategory(t *testing.T) {
	dir := initProject(t)

	_, err := runCLI(t, "insights", "--dir", dir, "--budget", "100000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--budget requires --category")
}

func TestInsights_Budget(t *testing.T) {
	dir := initProject(t)
	writeMessages(t, dir)

	_, err := runCLI(t, "extract", "--dir", dir)
	require.NoError(t, err)
	_, err = runCLI(t, "categorize", "--dir", dir)
	require.NoError(t, err)

	out, err := runCLI(t, "insights", "--dir", dir,
		"--year", "2024", "--month", "3",
		"--category", "Shopping", "--budget", "100000")
	require.NoError(t, err)
	assert.Contains(t, out, "Budget for Shopping")
	assert.Contains(t, out, "spent 50000 of 100000")
}

func TestExtract_RequiresInit(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, "extract", "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}
