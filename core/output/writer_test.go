package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterWritesDocumentAndDeck(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	docPath, err := w.WriteDocument("abc123", []byte("doc"), ".pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "docs", "project_abc123.pdf"), docPath)

	deckPath, err := w.WriteDeck("xyz", []byte("deck"), ".pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "decks", "deck_xyz.pdf"), deckPath)

	data, err := os.ReadFile(docPath)
	require.NoError(t, err)
	assert.Equal(t, "doc", string(data))
}

func TestWriterCreatesSubdirectories(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "storage")
	_, err := New(dir)
	require.NoError(t, err)

	for _, sub := range []string{"docs", "decks"} {
		info, err := os.Stat(filepath.Join(dir, sub))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
