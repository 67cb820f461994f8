package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/docforge/core"
)

func TestDecodeModelJSONDirect(t *testing.T) {
	v, ok := decodeModelJSON(`[{"heading":"A"}]`)
	require.True(t, ok)
	require.IsType(t, []any{}, v)
}

func TestDecodeModelJSONStripsFences(t *testing.T) {
	raw := "```json\n[{\"heading\":\"A\",\"content\":\"text\"}]\n```"
	v, ok := decodeModelJSON(raw)
	require.True(t, ok)
	items := v.([]any)
	require.Len(t, items, 1)
}

func TestDecodeModelJSONFindsEmbeddedBlock(t *testing.T) {
	raw := "Sure! Here is the JSON you asked for:\n[{\"heading\":\"A\"}]\nHope that helps."
	v, ok := decodeModelJSON(raw)
	require.True(t, ok)
	require.IsType(t, []any{}, v)
}

func TestDecodeModelJSONRejectsGarbage(t *testing.T) {
	_, ok := decodeModelJSON("no json here at all")
	assert.False(t, ok)
	_, ok = decodeModelJSON("   ")
	assert.False(t, ok)
}

func TestSectionsFromModelJSON(t *testing.T) {
	raw := `[
		{"heading":"Intro","order_index":2,"content":"Body."},
		"not an object",
		{"heading":"Next","order_index":1,"content":"More."}
	]`
	secs, ok := sectionsFromModelJSON(raw)
	require.True(t, ok)
	require.Len(t, secs, 2)
	assert.Equal(t, "Intro", secs[0].Heading)
	assert.Equal(t, 2, secs[0].OrderIndex)
}

func TestSectionsFromModelJSONNonList(t *testing.T) {
	_, ok := sectionsFromModelJSON(`{"heading":"A"}`)
	assert.False(t, ok)
}

func TestSectionsFromPlainText(t *testing.T) {
	raw := "Growth Drivers\nSubsidies and falling battery prices.\n\nChallenges\nCharging infrastructure gaps."
	secs := SectionsFromPlainText(raw, []string{"Growth Drivers", "Challenges"})

	require.Len(t, secs, 2)
	assert.Equal(t, "Subsidies and falling battery prices.", secs[0].Content)
	assert.Equal(t, "Charging infrastructure gaps.", secs[1].Content)
	assert.Equal(t, 1, secs[0].OrderIndex)
	assert.Equal(t, 2, secs[1].OrderIndex)
}

func TestSectionsFromPlainTextFallsBackToParagraphs(t *testing.T) {
	raw := "First paragraph of prose.\n\nSecond paragraph of prose."
	secs := SectionsFromPlainText(raw, []string{"Missing A", "Missing B", "Missing C"})

	require.Len(t, secs, 3)
	assert.Equal(t, "First paragraph of prose.", secs[0].Content)
	assert.Equal(t, "Second paragraph of prose.", secs[1].Content)
	assert.Empty(t, secs[2].Content)
}

func TestFallbackSectionsWithHeadings(t *testing.T) {
	secs := FallbackSections([]string{"Intro", "Body", "Close"}, 2)

	require.Len(t, secs, 2)
	assert.Equal(t, "Intro", secs[0].Heading)
	assert.Contains(t, secs[0].Content, "fallback auto-generated content")
	assert.Equal(t, 1, secs[0].OrderIndex)
	assert.Equal(t, 2, secs[1].OrderIndex)
}

func TestFallbackSectionsGeneric(t *testing.T) {
	secs := FallbackSections(nil, 3)

	require.Len(t, secs, 3)
	assert.Equal(t, "Section 1", secs[0].Heading)
	assert.Equal(t, "Section 3", secs[2].Heading)
}

func TestCleanSectionsStripsMetaPrefixes(t *testing.T) {
	in := []core.Section{
		{Heading: "Growth", Content: `Page 1 - Section 2\nReal text here.`},
		{Heading: "Summary", Content: "Section 3: Real summary text."},
		{Heading: "Intro", Content: "EV Market\nActual body."},
	}
	out := cleanSections("EV Market", in)

	require.Len(t, out, 3)
	assert.Equal(t, "Real text here.", out[0].Content)
	assert.Equal(t, "Real summary text.", out[1].Content)
	assert.Equal(t, "Actual body.", out[2].Content)
}

func TestCleanSectionsOrdersByIndex(t *testing.T) {
	in := []core.Section{
		{Heading: "B", Content: "b", OrderIndex: 2},
		{Heading: "A", Content: "a", OrderIndex: 1},
		{Heading: "C", Content: "c"},
	}
	out := cleanSections("topic", in)

	assert.Equal(t, []string{"A", "B", "C"}, []string{out[0].Heading, out[1].Heading, out[2].Heading})
	assert.Equal(t, 3, out[2].OrderIndex)
}
