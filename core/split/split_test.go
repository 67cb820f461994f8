package split

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/docforge/core"
)

func sec(heading, content string) core.Section {
	return core.Section{Heading: heading, Content: content, OrderIndex: 1}
}

func TestSectionDistributesParagraphsEvenly(t *testing.T) {
	s := sec("Intro", "P1.\nP2.\nP3.\nP4.\nP5.")
	parts := Section(s, 2)

	require.Len(t, parts, 2)
	// 5 paragraphs over 2 parts: first part takes the extra one.
	assert.Equal(t, "P1.\nP2.\nP3.", parts[0].Content)
	assert.Equal(t, "P4.\nP5.", parts[1].Content)
	assert.Equal(t, "Intro", parts[0].Heading)
	assert.Equal(t, "Intro (cont.)", parts[1].Heading)
}

func TestSectionExactParagraphFit(t *testing.T) {
	s := sec("H", "A.\nB.\nC.")
	parts := Section(s, 3)

	require.Len(t, parts, 3)
	assert.Equal(t, []string{"A.", "B.", "C."}, []string{parts[0].Content, parts[1].Content, parts[2].Content})
}

func TestSectionSentenceFallback(t *testing.T) {
	// One paragraph, five sentences, three parts: chunk size 1 and the
	// two leftover sentences land on the final part.
	s := sec("H", "One one. Two two! Three three? Four four. Five five.")
	parts := Section(s, 3)

	require.Len(t, parts, 3)
	assert.Equal(t, "One one.", parts[0].Content)
	assert.Equal(t, "Two two!", parts[1].Content)
	assert.Equal(t, "Three three? Four four. Five five.", parts[2].Content)
}

func TestSectionEmptyContent(t *testing.T) {
	parts := Section(sec("H", ""), 3)

	require.Len(t, parts, 3)
	for _, p := range parts {
		assert.Equal(t, "H", p.Heading)
		assert.Empty(t, p.Content)
	}
}

func TestSectionClampsParts(t *testing.T) {
	parts := Section(sec("H", "Text."), 0)
	require.Len(t, parts, 1)
	assert.Equal(t, "Text.", parts[0].Content)
}

func TestSectionConservesWords(t *testing.T) {
	original := "Alpha beta gamma. Delta epsilon zeta. Eta theta iota. Kappa lambda mu."
	parts := Section(sec("H", original), 3)

	var joined []string
	for _, p := range parts {
		joined = append(joined, p.Content)
	}
	got := strings.Fields(strings.Join(joined, " "))
	want := strings.Fields(original)
	assert.Equal(t, want, got)
}

func TestSectionPropagatesOrderIndex(t *testing.T) {
	s := core.Section{Heading: "H", Content: "A.\nB.", OrderIndex: 7}
	for _, p := range Section(s, 2) {
		assert.Equal(t, 7, p.OrderIndex)
	}
}

func TestSentences(t *testing.T) {
	got := Sentences("First one. Second one! Third?  Fourth")
	assert.Equal(t, []string{"First one.", "Second one!", "Third?", "Fourth"}, got)

	assert.Empty(t, Sentences(""))
	// Trailing punctuation without following whitespace stays attached.
	assert.Equal(t, []string{"Only one."}, Sentences("Only one."))
}
