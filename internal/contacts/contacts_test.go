package contacts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `name,phone
Maria Lopez,3001234567
Pedro Gomez,+57 310 999 9999
Ana Torres,320-555-0101
`

func TestParse(t *testing.T) {
	d, err := Parse(strings.NewReader(fixture))
	require.NoError(t, err)
	assert.Equal(t, 3, d.Len())

	name, err := d.LookupContactName("3001234567")
	require.NoError(t, err)
	assert.Equal(t, "Maria Lopez", name)
}

func TestLookupContactName_NormalizesFormatting(t *testing.T) {
	d, err := Parse(strings.NewReader(fixture))
	require.NoError(t, err)

	tests := []struct {
		phone string
		want  string
	}{
		{"3109999999", "Pedro Gomez"},    // stored with +57 and spaces
		{"+573109999999", "Pedro Gomez"}, // queried with country prefix
		{"320 555 0101", "Ana Torres"},   // queried with spaces
		{"3205550101", "Ana Torres"},
		{"3999999999", ""},
	}
	for _, tt := range tests {
		name, err := d.LookupContactName(tt.phone)
		require.NoError(t, err)
		assert.Equal(t, tt.want, name, tt.phone)
	}
}

func TestParse_LaterRowWinsDuplicate(t *testing.T) {
	d, err := Parse(strings.NewReader("name,phone\nOld Name,3001234567\nNew Name,3001234567\n"))
	require.NoError(t, err)

	name, _ := d.LookupContactName("3001234567")
	assert.Equal(t, "New Name", name)
	assert.Equal(t, 1, d.Len())
}

func TestParse_SkipsBlankPhones(t *testing.T) {
	d, err := Parse(strings.NewReader("name,phone\nNo Phone,\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, d.Len())
}

func TestParse_HeaderOnly(t *testing.T) {
	d, err := Parse(strings.NewReader("name,phone\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, d.Len())
}

func TestParse_WrongColumnCount(t *testing.T) {
	_, err := Parse(strings.NewReader("name,phone\nMaria,300,extra\n"))
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.csv")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o644))

	d, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Len())
}

func TestOpen_NotFound(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
