package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osakit/osakit/pkg/command"
)

func writeDocument(t *testing.T, root, dir, content string) {
	t.Helper()
	docDir := filepath.Join(root, dir)
	require.NoError(t, os.MkdirAll(docDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(docDir, skillFileName), []byte(content), 0o644))
}

const excelDoc = `---
name: applescript-excel
description: Excel automation guidance
application: excel
---

# Excel

Use A1-style cell addresses.
`

const wordDoc = `---
name: applescript-word
description: Word automation guidance
application: word
---

# Word

Always carry a document reference.
`

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeDocument(t, root, "applescript-excel", excelDoc)
	writeDocument(t, root, "applescript-word", wordDoc)

	discovery, err := NewDiscovery(WithDirs(root))
	require.NoError(t, err)

	docs, err := discovery.Discover()
	require.NoError(t, err)
	require.Len(t, docs, 2)

	excel := docs["applescript-excel"]
	require.NotNil(t, excel)
	assert.Equal(t, command.Excel, excel.Application)
	assert.Contains(t, excel.Content, "A1-style")
	assert.NotContains(t, excel.Content, "description:")
}

func TestDiscoverSkipsInvalidDocuments(t *testing.T) {
	root := t.TempDir()
	writeDocument(t, root, "good", excelDoc)
	writeDocument(t, root, "no-frontmatter", "# Just a heading\n")
	writeDocument(t, root, "no-name", "---\ndescription: something\n---\nbody\n")

	discovery, err := NewDiscovery(WithDirs(root))
	require.NoError(t, err)

	docs, err := discovery.Discover()
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestFirstDirectoryWins(t *testing.T) {
	local := t.TempDir()
	global := t.TempDir()
	writeDocument(t, local, "applescript-excel", excelDoc)
	writeDocument(t, global, "applescript-excel", `---
name: applescript-excel
description: shadowed copy
application: excel
---
shadowed
`)

	discovery, err := NewDiscovery(WithDirs(local, global))
	require.NoError(t, err)

	doc, err := discovery.Get("applescript-excel")
	require.NoError(t, err)
	assert.Equal(t, "Excel automation guidance", doc.Description)
}

func TestFor(t *testing.T) {
	root := t.TempDir()
	writeDocument(t, root, "applescript-excel", excelDoc)
	writeDocument(t, root, "applescript-word", wordDoc)

	discovery, err := NewDiscovery(WithDirs(root))
	require.NoError(t, err)

	docs, err := discovery.For(command.Word)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "applescript-word", docs[0].Name)
}

func TestGetMissing(t *testing.T) {
	discovery, err := NewDiscovery(WithDirs(t.TempDir()))
	require.NoError(t, err)

	_, err = discovery.Get("nope")
	assert.Error(t, err)
}

func TestShippedDocuments(t *testing.T) {
	discovery, err := NewDiscovery(WithDirs("../../skills"))
	require.NoError(t, err)

	docs, err := discovery.Discover()
	require.NoError(t, err)
	require.Len(t, docs, 3)

	for _, app := range []command.Application{command.PowerPoint, command.Word, command.Excel} {
		matched, err := discovery.For(app)
		require.NoError(t, err)
		assert.Len(t, matched, 1, string(app))
	}
}
