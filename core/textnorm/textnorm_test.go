package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanStripsTitleAndHeadingEcho(t *testing.T) {
	got := Clean("India EV Market", "Growth", "India EV Market\nGrowth\nReal paragraph text.")
	require.Equal(t, "Real paragraph text.", got)
}

func TestCleanStripsPageSectionBoilerplate(t *testing.T) {
	raw := "Page 2 - Section 1\nActual content here."
	require.Equal(t, "Actual content here.", Clean("Doc", "Intro", raw))

	raw = "Section 3: something\nActual content here."
	require.Equal(t, "Actual content here.", Clean("Doc", "Intro", raw))
}

func TestCleanStripsHeadingWithColon(t *testing.T) {
	raw := "Intro: the basics\nBody text."
	require.Equal(t, "Body text.", Clean("Doc", "Intro", raw))
}

func TestCleanKeepsSoleRemainingLine(t *testing.T) {
	// A meta line is never stripped when it is the only content left.
	require.Equal(t, "Growth", Clean("Doc", "Growth", "Growth"))
	require.Equal(t, "Doc", Clean("Doc", "Growth", "Doc\n\n  \n"))
}

func TestCleanUnescapesLiteralNewlines(t *testing.T) {
	got := Clean("", "", `First paragraph.\nSecond paragraph.`)
	require.Equal(t, "First paragraph.\nSecond paragraph.", got)
}

func TestCleanCollapsesBlankRuns(t *testing.T) {
	raw := "\n\nOne.\n\n\n\nTwo.\n\n\n"
	require.Equal(t, "One.\n\nTwo.", Clean("", "", raw))
}

func TestCleanEmptyInput(t *testing.T) {
	require.Empty(t, Clean("Doc", "Heading", ""))
	require.Empty(t, Clean("Doc", "Heading", "  \n \n"))
}

func TestCleanIsIdempotent(t *testing.T) {
	cases := []struct {
		title, heading, raw string
	}{
		{"India EV Market", "Growth", "India EV Market\nGrowth\nReal paragraph text."},
		{"Doc", "Intro", "Page 1 - Section 2\n\n\nBody.\n\nMore body.\n"},
		{"", "", `A.\nB.\n\nC.`},
		{"Doc", "Growth", "Growth"},
	}
	for _, c := range cases {
		once := Clean(c.title, c.heading, c.raw)
		twice := Clean(c.title, c.heading, once)
		assert.Equal(t, once, twice, "raw=%q", c.raw)
	}
}

func TestCleanNormalizesCarriageReturns(t *testing.T) {
	require.Equal(t, "a\nb", Clean("", "", "a\r\nb"))
	require.Equal(t, "a\nb", Clean("", "", "a\rb"))
}
