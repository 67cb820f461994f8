package source

import (
	"fmt"

	"github.com/gaurav-prasanna/docforge/core"
)

const fallbackBody = "This is fallback auto-generated content. The AI service was unavailable or returned an" +
	" unexpected response. Replace this with a proper draft or try generating again.\n\n" +
	"Key points:\n- Outline 1\n- Outline 2\n- Practical example or implication."

// FallbackSections builds placeholder sections for when the content
// source is unavailable. Provided headings are used as-is (capped to
// target); otherwise generic "Section N" headings are generated. Pure, so
// the no-model path stays independently testable.
func FallbackSections(headings []string, target int) []core.Section {
	if target < 1 {
		target = 1
	}
	if len(headings) == 0 {
		headings = make([]string, target)
		for i := range headings {
			headings[i] = fmt.Sprintf("Section %d", i+1)
		}
	}
	if len(headings) > target {
		headings = headings[:target]
	}

	out := make([]core.Section, 0, len(headings))
	for i, h := range headings {
		out = append(out, core.Section{
			Heading:    h,
			OrderIndex: i + 1,
			Content:    h + "\n\n" + fallbackBody,
		})
	}
	return out
}
