// Package textnorm cleans raw generated text before layout. Generators
// like to echo the document title, the section heading, or "Page N –
// Section M" boilerplate as the first lines of a section; this package
// strips those, unescapes literal newline sequences, and collapses blank
// runs. Cleaning is total and idempotent.
package textnorm

import "strings"

// Clean normalizes one section's raw text in the context of the document
// title and section heading.
//
// Leading lines that equal the document title, equal the heading, equal
// the heading followed by a colon, look like "Page N ... Section ...", or
// start with "Section " are stripped — but only while at least one more
// non-blank line remains, so a section is never cleaned down to nothing.
func Clean(docTitle, heading, raw string) string {
	if raw == "" {
		return ""
	}

	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	// The model often emits literal "\n" sequences for paragraph breaks.
	text = strings.ReplaceAll(text, `\n`, "\n")

	rawLines := strings.Split(text, "\n")
	lines := make([]string, len(rawLines))
	for i, l := range rawLines {
		lines[i] = strings.TrimSpace(l)
	}

	titleLow := strings.ToLower(strings.TrimSpace(docTitle))
	headingLow := strings.ToLower(strings.TrimSpace(heading))

	// Strip meta lines at the top until the first normal paragraph.
	for len(lines) > 0 {
		first := lines[0]
		if first == "" {
			lines = lines[1:]
			continue
		}
		fLow := strings.ToLower(first)

		isDocTitle := titleLow != "" && fLow == titleLow
		isPageSection := strings.HasPrefix(fLow, "page ") && strings.Contains(fLow, "section")
		isSectionPrefix := strings.HasPrefix(fLow, "section ")
		isHeadingExact := headingLow != "" && fLow == headingLow
		isHeadingColon := headingLow != "" && strings.HasPrefix(fLow, headingLow+":")

		if isDocTitle || isPageSection || isSectionPrefix || isHeadingExact || isHeadingColon {
			if hasContentAfter(lines) {
				lines = lines[1:]
				continue
			}
			// This meta line is the only content left; keep it.
			break
		}
		break
	}

	// Collapse blank-line runs into a single blank line.
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			if len(cleaned) > 0 && cleaned[len(cleaned)-1] == "" {
				continue
			}
			cleaned = append(cleaned, "")
		} else {
			cleaned = append(cleaned, line)
		}
	}

	// Trim blank lines at both ends.
	for len(cleaned) > 0 && cleaned[0] == "" {
		cleaned = cleaned[1:]
	}
	for len(cleaned) > 0 && cleaned[len(cleaned)-1] == "" {
		cleaned = cleaned[:len(cleaned)-1]
	}

	return strings.Join(cleaned, "\n")
}

// hasContentAfter reports whether any line after the first is non-blank.
func hasContentAfter(lines []string) bool {
	for _, l := range lines[1:] {
		if strings.TrimSpace(l) != "" {
			return true
		}
	}
	return false
}
