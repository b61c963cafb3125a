package capability

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osakit/osakit/pkg/command"
)

func writeTable(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const powerpointFixture = `application: powerpoint
appVersion: "16.89"
features:
  - category: document
    name: "*"
    status: supported
  - category: layout
    name: titleSlide
    status: supported
    token: slide layout title slide
  - category: font
    name: bold
    status: broken
    note: assignment is silently ignored
  - category: font
    name: "*"
    status: supported
`

func loadFixture(t *testing.T) *Table {
	t.Helper()
	path := writeTable(t, t.TempDir(), "powerpoint.yaml", powerpointFixture)
	table, err := LoadFile(path)
	require.NoError(t, err)
	return table
}

func TestLookupExactBeatsGlob(t *testing.T) {
	table := loadFixture(t)

	bold, ok := table.Lookup(Feature{Category: "font", Name: "bold"})
	require.True(t, ok)
	assert.Equal(t, StatusBroken, bold.Status)
	assert.Equal(t, "assignment is silently ignored", bold.Note)

	italic, ok := table.Lookup(Feature{Category: "font", Name: "italic"})
	require.True(t, ok)
	assert.Equal(t, StatusSupported, italic.Status)
}

func TestLookupGlobDefault(t *testing.T) {
	table := loadFixture(t)

	for _, name := range []string{"create", "open", "save", "close"} {
		assert.True(t, table.Supported(Feature{Category: "document", Name: name}), name)
	}
}

func TestLookupUnknownFeature(t *testing.T) {
	table := loadFixture(t)

	_, ok := table.Lookup(Feature{Category: "transition", Name: "speed"})
	assert.False(t, ok)
	assert.False(t, table.Supported(Feature{Category: "transition", Name: "speed"}))
}

func TestToken(t *testing.T) {
	table := loadFixture(t)

	tok, ok := table.Token(Feature{Category: "layout", Name: "titleSlide"})
	require.True(t, ok)
	assert.Equal(t, "slide layout title slide", tok)

	t.Run("no token for broken features", func(t *testing.T) {
		_, ok := table.Token(Feature{Category: "font", Name: "bold"})
		assert.False(t, ok)
	})

	t.Run("no token when the entry has none", func(t *testing.T) {
		_, ok := table.Token(Feature{Category: "font", Name: "italic"})
		assert.False(t, ok)
	})
}

func TestTableMetadata(t *testing.T) {
	table := loadFixture(t)
	assert.Equal(t, command.PowerPoint, table.Application())
	assert.Equal(t, "16.89", table.Version())
}

func TestSetFor(t *testing.T) {
	table := loadFixture(t)
	set := NewSet(table)

	got, err := set.For(command.PowerPoint)
	require.NoError(t, err)
	assert.Same(t, table, got)

	_, err = set.For(command.Excel)
	assert.Error(t, err)
}
