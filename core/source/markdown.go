package source

import (
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/docforge/core"
	"github.com/gaurav-prasanna/docforge/core/split"
)

var headingRegex = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)

// sectionsFromMarkdown slices a Markdown document into sections at its
// headings. Text before the first heading is dropped; heading markers and
// levels are not preserved, only the heading text and its body.
func sectionsFromMarkdown(md string) []core.Section {
	lines := strings.Split(md, "\n")

	var out []core.Section
	var current *core.Section
	var body []string

	flush := func() {
		if current == nil {
			return
		}
		current.Content = strings.TrimSpace(strings.Join(body, "\n"))
		out = append(out, *current)
	}

	for _, line := range lines {
		if m := headingRegex.FindStringSubmatch(line); m != nil {
			flush()
			current = &core.Section{Heading: strings.TrimSpace(m[2])}
			body = nil
			continue
		}
		if current != nil {
			body = append(body, line)
		}
	}
	flush()
	return out
}

// sentencesForBullets turns section text into at most limit bullet-sized
// sentences.
func sentencesForBullets(text string, limit int) []string {
	flat := strings.Join(strings.Fields(text), " ")
	sentences := split.Sentences(flat)
	if len(sentences) > limit {
		sentences = sentences[:limit]
	}
	out := make([]string, 0, len(sentences))
	for _, s := range sentences {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
