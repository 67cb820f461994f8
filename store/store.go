// Package store persists project and deck records as JSON files, one
// file per record under the storage directory. It stands in for a real
// database while keeping records durable across runs.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gaurav-prasanna/docforge/core"
	"github.com/gaurav-prasanna/docforge/core/styleconf"
)

// Revision is a superseded version of one section's content, kept when a
// section is rewritten so the previous text is recoverable.
type Revision struct {
	Heading   string    `json:"heading"`
	Content   string    `json:"content"`
	RevisedAt time.Time `json:"revised_at"`
}

// ProjectRecord is a durable document project: the topic, the sections
// with their page assignments, and where the rendered file ended up.
type ProjectRecord struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Topic     string         `json:"topic"`
	NumPages  int            `json:"num_pages"`
	Sections  []core.Section `json:"sections"`
	History   []Revision     `json:"history,omitempty"`
	FilePath  string         `json:"file_path,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ReplaceSection swaps in new content for the section with the given
// heading, pushing the previous content onto the history. Reports whether
// a matching section was found.
func (rec *ProjectRecord) ReplaceSection(heading, content string) bool {
	for i := range rec.Sections {
		if rec.Sections[i].Heading != heading {
			continue
		}
		rec.History = append(rec.History, Revision{
			Heading:   heading,
			Content:   rec.Sections[i].Content,
			RevisedAt: time.Now().UTC(),
		})
		rec.Sections[i].Content = content
		return true
	}
	return false
}

// DeckRecord is a durable deck: the topic, the normalized slides, the
// styling configuration, and the rendered file path.
type DeckRecord struct {
	ID            string                  `json:"id"`
	Topic         string                  `json:"topic"`
	Slides        []core.Slide            `json:"slides"`
	Configuration styleconf.Configuration `json:"configuration"`
	FilePath      string                  `json:"file_path,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

// Store reads and writes records under dir.
type Store struct {
	dir string
}

// Open creates a Store rooted at dir, ensuring its record directories
// exist.
func Open(dir string) (*Store, error) {
	for _, sub := range []string{"projects", "decks"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}
	return &Store{dir: dir}, nil
}

// SaveProject persists a project record, assigning an id and timestamps
// on first save.
func (s *Store) SaveProject(rec *ProjectRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now
	return s.writeRecord(filepath.Join("projects", rec.ID+".json"), rec)
}

// Project loads one project record by id.
func (s *Store) Project(id string) (*ProjectRecord, error) {
	var rec ProjectRecord
	if err := s.readRecord(filepath.Join("projects", id+".json"), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListProjects returns all project records, newest first.
func (s *Store) ListProjects() ([]*ProjectRecord, error) {
	ids, err := s.listIDs("projects")
	if err != nil {
		return nil, err
	}
	out := make([]*ProjectRecord, 0, len(ids))
	for _, id := range ids {
		rec, err := s.Project(id)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// SaveDeck persists a deck record, assigning an id and timestamps on
// first save.
func (s *Store) SaveDeck(rec *DeckRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now
	return s.writeRecord(filepath.Join("decks", rec.ID+".json"), rec)
}

// Deck loads one deck record by id.
func (s *Store) Deck(id string) (*DeckRecord, error) {
	var rec DeckRecord
	if err := s.readRecord(filepath.Join("decks", id+".json"), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) writeRecord(name string, rec any) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling record: %w", err)
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing record %s: %w", path, err)
	}
	return nil
}

func (s *Store) readRecord(name string, rec any) error {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading record %s: %w", path, err)
	}
	if err := json.Unmarshal(data, rec); err != nil {
		return fmt.Errorf("decoding record %s: %w", path, err)
	}
	return nil
}

func (s *Store) listIDs(sub string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.dir, sub))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", sub, err)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".json"))
	}
	return ids, nil
}
