package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/docforge/core"
	"github.com/gaurav-prasanna/docforge/core/styleconf"
)

func TestSaveAndLoadProject(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	rec := &ProjectRecord{
		Title:    "EV Market Report",
		Topic:    "electric vehicles",
		NumPages: 3,
		Sections: []core.Section{
			{Heading: "Intro", Content: "Hello.", PageNumber: 1, SectionIndex: 0},
		},
		FilePath: "storage/docs/project_x.pdf",
	}
	require.NoError(t, s.SaveProject(rec))
	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())

	got, err := s.Project(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.Title, got.Title)
	assert.Equal(t, rec.NumPages, got.NumPages)
	require.Len(t, got.Sections, 1)
	assert.Equal(t, "Intro", got.Sections[0].Heading)
}

func TestSaveProjectKeepsIDAndCreatedAt(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	rec := &ProjectRecord{Title: "T", Topic: "t"}
	require.NoError(t, s.SaveProject(rec))
	id, created := rec.ID, rec.CreatedAt

	rec.Title = "T2"
	require.NoError(t, s.SaveProject(rec))
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, created, rec.CreatedAt)
}

func TestSaveAndLoadDeck(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	rec := &DeckRecord{
		Topic: "electric vehicles",
		Slides: []core.Slide{
			{Layout: core.LayoutTitle, Title: "EV Market"},
		},
		Configuration: styleconf.Configuration{ThemeID: "ppt2", FontName: "Arial"},
	}
	require.NoError(t, s.SaveDeck(rec))
	require.NotEmpty(t, rec.ID)

	got, err := s.Deck(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "ppt2", got.Configuration.ThemeID)
	require.Len(t, got.Slides, 1)
	assert.Equal(t, core.LayoutTitle, got.Slides[0].Layout)
}

func TestReplaceSectionKeepsHistory(t *testing.T) {
	rec := &ProjectRecord{
		Sections: []core.Section{
			{Heading: "Intro", Content: "old text"},
			{Heading: "Close", Content: "ending"},
		},
	}

	require.True(t, rec.ReplaceSection("Intro", "new text"))
	assert.Equal(t, "new text", rec.Sections[0].Content)
	require.Len(t, rec.History, 1)
	assert.Equal(t, "Intro", rec.History[0].Heading)
	assert.Equal(t, "old text", rec.History[0].Content)

	assert.False(t, rec.ReplaceSection("Missing", "x"))
	assert.Len(t, rec.History, 1)
}

func TestProjectNotFound(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	_, err = s.Project("missing")
	assert.Error(t, err)
}

func TestListProjects(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.SaveProject(&ProjectRecord{Title: "A", Topic: "a"}))
	require.NoError(t, s.SaveProject(&ProjectRecord{Title: "B", Topic: "b"}))

	recs, err := s.ListProjects()
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}
