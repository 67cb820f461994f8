// Package output handles file naming and writing for rendered documents
// and decks. Documents land in <dir>/docs, decks in <dir>/decks, named by
// their record id.
package output

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultStorageDir = "storage"

// Writer writes rendered output to disk.
type Writer struct {
	StorageDir string
}

// New creates a Writer rooted at storageDir, defaulting to ./storage, and
// ensures the docs and decks subdirectories exist.
func New(storageDir string) (*Writer, error) {
	if storageDir == "" {
		storageDir = defaultStorageDir
	}
	for _, sub := range []string{"docs", "decks"} {
		if err := os.MkdirAll(filepath.Join(storageDir, sub), 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}
	return &Writer{StorageDir: storageDir}, nil
}

// WriteDocument writes a rendered document as docs/project_<id><ext>.
func (w *Writer) WriteDocument(projectID string, data []byte, ext string) (string, error) {
	return w.write(filepath.Join("docs", "project_"+projectID+ext), data)
}

// WriteDeck writes a rendered deck as decks/deck_<id><ext>.
func (w *Writer) WriteDeck(deckID string, data []byte, ext string) (string, error) {
	return w.write(filepath.Join("decks", "deck_"+deckID+ext), data)
}

func (w *Writer) write(name string, data []byte) (string, error) {
	path := filepath.Join(w.StorageDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}
