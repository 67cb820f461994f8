// Package split partitions one section's content into multiple ordered
// sub-sections. It prefers paragraph boundaries and falls back to
// sentence-level chunks when there are fewer paragraphs than parts.
package split

import (
	"strings"
	"unicode"

	"github.com/gaurav-prasanna/docforge/core"
	"github.com/gaurav-prasanna/docforge/core/textnorm"
)

// Section splits sec's content into exactly parts sub-sections. The first
// part keeps the original heading; later parts get a "(cont.)" suffix.
// Empty content yields parts empty sections rather than an error.
func Section(sec core.Section, parts int) []core.Section {
	if parts < 1 {
		parts = 1
	}

	content := textnorm.Clean("", sec.Heading, sec.Content)

	var paragraphs []string
	for _, line := range strings.Split(content, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			paragraphs = append(paragraphs, s)
		}
	}

	out := make([]core.Section, 0, parts)

	if len(paragraphs) == 0 {
		for i := 0; i < parts; i++ {
			out = append(out, core.Section{Heading: sec.Heading, OrderIndex: sec.OrderIndex})
		}
		return out
	}

	// Not enough paragraphs: chunk the joined text by sentences instead.
	if len(paragraphs) < parts {
		sentences := Sentences(strings.Join(paragraphs, "\n"))
		if len(sentences) == 0 {
			sentences = []string{strings.Join(paragraphs, "\n")}
		}

		chunkSize := len(sentences) / parts
		if chunkSize < 1 {
			chunkSize = 1
		}

		idx := 0
		for i := 0; i < parts; i++ {
			var chunk []string
			if idx < len(sentences) {
				end := idx + chunkSize
				if end > len(sentences) {
					end = len(sentences)
				}
				chunk = sentences[idx:end]
			}
			out = append(out, core.Section{
				Heading:    partHeading(sec.Heading, i),
				Content:    strings.TrimSpace(strings.Join(chunk, " ")),
				OrderIndex: sec.OrderIndex,
			})
			idx += chunkSize
		}

		// Leftover sentences after the last full chunk go to the final part.
		if idx < len(sentences) {
			last := &out[len(out)-1]
			last.Content = strings.TrimSpace(last.Content + " " + strings.Join(sentences[idx:], " "))
		}
		return out
	}

	// Distribute paragraphs as evenly as possible: the first rem parts
	// take one extra paragraph.
	base := len(paragraphs) / parts
	rem := len(paragraphs) % parts
	ptr := 0
	for i := 0; i < parts; i++ {
		take := base
		if i < rem {
			take++
		}
		out = append(out, core.Section{
			Heading:    partHeading(sec.Heading, i),
			Content:    strings.Join(paragraphs[ptr:ptr+take], "\n"),
			OrderIndex: sec.OrderIndex,
		})
		ptr += take
	}
	return out
}

func partHeading(heading string, part int) string {
	if part == 0 {
		return heading
	}
	return heading + " (cont.)"
}

// Sentences splits text on '.', '!' or '?' followed by whitespace, keeping
// the punctuation with the preceding sentence. Conservative on purpose so
// abbreviations mostly survive.
func Sentences(text string) []string {
	var out []string
	runes := []rune(text)
	start := 0
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if (c == '.' || c == '!' || c == '?') && i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
			out = append(out, string(runes[start:i+1]))
			j := i + 1
			for j < len(runes) && unicode.IsSpace(runes[j]) {
				j++
			}
			start = j
			i = j - 1
		}
	}
	if start < len(runes) {
		out = append(out, string(runes[start:]))
	}
	return out
}
