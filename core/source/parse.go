package source

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/docforge/core"
)

var (
	fenceRegex     = regexp.MustCompile("```(?:json)?")
	jsonBlockRegex = regexp.MustCompile(`(?s)(\[.*\]|\{.*\})`)
	blankRunRegex  = regexp.MustCompile(`\n\s*\n+`)
)

// decodeModelJSON pulls JSON out of raw model output, trying increasingly
// forgiving strategies: a direct parse, a parse with ``` fences stripped,
// and finally the first array/object substring.
func decodeModelJSON(raw string) (any, bool) {
	if strings.TrimSpace(raw) == "" {
		return nil, false
	}

	var v any
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		return v, true
	}

	cleaned := strings.TrimSpace(fenceRegex.ReplaceAllString(raw, ""))
	if err := json.Unmarshal([]byte(cleaned), &v); err == nil {
		return v, true
	}

	if m := jsonBlockRegex.FindStringSubmatch(raw); m != nil {
		if err := json.Unmarshal([]byte(m[1]), &v); err == nil {
			return v, true
		}
	}
	return nil, false
}

// sectionsFromModelJSON decodes model output into sections. Items that are
// not objects are skipped.
func sectionsFromModelJSON(raw string) ([]core.Section, bool) {
	v, ok := decodeModelJSON(raw)
	if !ok {
		return nil, false
	}
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}

	out := make([]core.Section, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		sec := core.Section{
			Heading: asString(m["heading"]),
			Content: asString(m["content"]),
		}
		if n, ok := m["order_index"].(float64); ok {
			sec.OrderIndex = int(n)
		}
		out = append(out, sec)
	}
	return out, true
}

// SectionsFromPlainText looks for each heading on its own line in raw text
// and captures the block after it. When no heading is found at all, raw is
// split into paragraphs assigned sequentially.
func SectionsFromPlainText(raw string, headings []string) []core.Section {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")

	out := make([]core.Section, 0, len(headings))
	for _, h := range headings {
		out = append(out, core.Section{
			Heading:    h,
			OrderIndex: len(out) + 1,
			Content:    blockAfterHeading(lines, h),
		})
	}

	allEmpty := true
	for _, s := range out {
		if strings.TrimSpace(s.Content) != "" {
			allEmpty = false
			break
		}
	}
	if allEmpty {
		paragraphs := splitParagraphs(text)
		for i := range out {
			if i < len(paragraphs) {
				out[i].Content = paragraphs[i]
			}
		}
	}
	return out
}

// blockAfterHeading returns the text immediately following the first line
// that equals heading: the next line plus any blank or indented lines up
// to the following flush-left line.
func blockAfterHeading(lines []string, heading string) string {
	want := strings.TrimSpace(heading)
	for i, line := range lines {
		if !strings.EqualFold(strings.TrimSpace(line), want) {
			continue
		}
		var block []string
		for j := i + 1; j < len(lines); j++ {
			l := lines[j]
			if j > i+1 && l != "" && !strings.HasPrefix(l, " ") && !strings.HasPrefix(l, "\t") {
				break
			}
			block = append(block, l)
		}
		content := strings.TrimSpace(strings.Join(block, "\n"))
		return blankRunRegex.ReplaceAllString(content, "\n\n")
	}
	return ""
}

// splitParagraphs splits text on blank-line boundaries, dropping empties.
func splitParagraphs(text string) []string {
	var out []string
	for _, p := range blankRunRegex.Split(text, -1) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
