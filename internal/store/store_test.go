package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstello/SMS-finance-sub000/internal/category"
	"github.com/jstello/SMS-finance-sub000/internal/model"
)

func TestCategories_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	want := category.Defaults()

	require.NoError(t, SaveCategories(path, want))

	got, err := LoadCategories(path)
	require.NoError(t, err)
	require.Len(t, got, len(want))
	assert.Equal(t, want[0].ID, got[0].ID)
	assert.Equal(t, want[0].Name, got[0].Name)
	assert.Equal(t, want[0].Color, got[0].Color)
}

func TestLoadCategories_NotFound(t *testing.T) {
	_, err := LoadCategories(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadCategories_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: {not: a list}"), 0o644))

	_, err := LoadCategories(path)
	assert.Error(t, err)
}

func TestClosestName(t *testing.T) {
	categories := []model.Category{
		{ID: "groceries", Name: "Groceries"},
		{ID: "transportation", Name: "Transportation"},
		{ID: "health", Name: "Health"},
	}

	tests := []struct {
		input  string
		wantID string
		found  bool
	}{
		{"groceries", "groceries", true},
		{"Grocery", "groceries", true},
		{"helth", "health", true},
		{"GROCERIES", "groceries", true},
		{"yachts", "", false},
	}
	for _, tt := range tests {
		got, ok := ClosestName(tt.input, categories)
		assert.Equal(t, tt.found, ok, tt.input)
		if tt.found {
			assert.Equal(t, tt.wantID, got.ID, tt.input)
		}
	}
}

func TestClosestName_EmptyList(t *testing.T) {
	_, ok := ClosestName("anything", nil)
	assert.False(t, ok)
}

func TestMappings_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mappings.yaml")

	m, err := OpenMappings(path)
	require.NoError(t, err)
	m.Set("EXITO CALLE 80", "groceries")
	m.Set("RAPPI", "restaurants")
	require.NoError(t, m.Save())

	reopened, err := OpenMappings(path)
	require.NoError(t, err)

	got, err := reopened.CategoryForProvider("EXITO CALLE 80")
	require.NoError(t, err)
	assert.Equal(t, "groceries", got)
}

func TestMappings_MissingFileIsEmpty(t *testing.T) {
	m, err := OpenMappings(filepath.Join(t.TempDir(), "mappings.yaml"))
	require.NoError(t, err)

	got, err := m.CategoryForProvider("EXITO")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, m.Providers())
}

func TestMappings_CaseAndSpaceInsensitive(t *testing.T) {
	m, err := OpenMappings(filepath.Join(t.TempDir(), "mappings.yaml"))
	require.NoError(t, err)

	m.Set("  Exito  ", "groceries")

	got, err := m.CategoryForProvider("EXITO")
	require.NoError(t, err)
	assert.Equal(t, "groceries", got)
}

func TestMappings_SetReplacesAndDeleteRemoves(t *testing.T) {
	m, err := OpenMappings(filepath.Join(t.TempDir(), "mappings.yaml"))
	require.NoError(t, err)

	m.Set("exito", "groceries")
	m.Set("exito", "shopping")
	got, _ := m.CategoryForProvider("exito")
	assert.Equal(t, "shopping", got)

	m.Delete("EXITO")
	got, _ = m.CategoryForProvider("exito")
	assert.Empty(t, got)
}

func TestMappings_ProvidersSorted(t *testing.T) {
	m, err := OpenMappings(filepath.Join(t.TempDir(), "mappings.yaml"))
	require.NoError(t, err)

	m.Set("rappi", "restaurants")
	m.Set("exito", "groceries")

	assert.Equal(t, []string{"exito", "rappi"}, m.Providers())
}

func TestMappings_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mappings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mappings: [broken"), 0o644))

	_, err := OpenMappings(path)
	assert.Error(t, err)
}
