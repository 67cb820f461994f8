// Package slides maps heterogeneous generator output onto the closed set
// of deck layouts. Generators return whatever shape they like — tagged
// records, generic title/content records, bare strings — and this package
// turns all of it into exactly the requested number of typed slides:
// validate-then-construct, never access-then-hope.
package slides

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/docforge/core"
)

// promptEchoLimit bounds how much of the original prompt is used for the
// echo check.
const promptEchoLimit = 120

// captionLimit bounds captions back-filled from slide titles.
const captionLimit = 120

var nonAlnumRegex = regexp.MustCompile(`[^a-zA-Z0-9]`)
var blankRunRegex = regexp.MustCompile(`\n{3,}`)

// Normalize maps raw generator output onto typed slides, removes prompt
// echoes, enforces exactly target slides (padding with generic title
// slides or truncating, earliest kept), and back-fills image captions and
// URLs. The result always has length target for any input.
func Normalize(raw []any, target int, topic string) []core.Slide {
	if target < 1 {
		target = 1
	}
	out := mapItems(raw)
	out = Sanitize(out, topic)
	out = ensureCount(out, target)
	fillImageSlides(out, topic)
	return out
}

// mapItems converts each raw item onto one of the four layouts.
// Unrecognizable items are skipped rather than failing the request.
func mapItems(raw []any) []core.Slide {
	out := make([]core.Slide, 0, len(raw))

	for _, item := range raw {
		switch v := item.(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				out = append(out, core.Slide{Layout: core.LayoutBullet, Bullets: []string{s}})
			}
		case map[string]any:
			if slide, ok := mapRecord(v); ok {
				out = append(out, slide)
			}
		}
	}
	return out
}

// mapRecord maps one record. Records carrying a recognized layout tag pass
// their fields through with defaults; untyped records are classified by
// shape: a content list means bullets, an image-like field means an image
// slide, anything else becomes a title slide.
func mapRecord(m map[string]any) (core.Slide, bool) {
	if rawLayout, tagged := m["layout"]; tagged {
		switch core.SlideLayout(stringField(rawLayout)) {
		case core.LayoutTitle:
			return core.Slide{Layout: core.LayoutTitle, Title: stringField(m["title"])}, true
		case core.LayoutBullet:
			return core.Slide{
				Layout:  core.LayoutBullet,
				Title:   stringField(m["title"]),
				Bullets: stringList(m["bullets"]),
			}, true
		case core.LayoutTwoColumn:
			return core.Slide{
				Layout: core.LayoutTwoColumn,
				Title:  stringField(m["title"]),
				Left:   stringField(m["left"]),
				Right:  stringField(m["right"]),
			}, true
		case core.LayoutImage:
			caption := stringField(m["caption"])
			if caption == "" {
				caption = stringField(m["title"])
			}
			return core.Slide{Layout: core.LayoutImage, Title: stringField(m["title"]), Caption: caption}, true
		}
		// Unrecognized tag: drop the record.
		return core.Slide{}, false
	}

	title := stringField(m["title"])

	if content, ok := m["content"].([]any); ok {
		var bullets []string
		for _, b := range content {
			if s := strings.TrimSpace(stringField(b)); s != "" {
				bullets = append(bullets, s)
			}
		}
		return core.Slide{Layout: core.LayoutBullet, Title: title, Bullets: bullets}, true
	}

	if image := m["image"]; truthy(image) {
		caption := stringField(m["notes"])
		if caption == "" {
			caption = stringField(image)
		}
		return core.Slide{Layout: core.LayoutImage, Title: title, Caption: caption}, true
	}

	return core.Slide{Layout: core.LayoutTitle, Title: title}, true
}

// Sanitize removes text that echoes the original request back into the
// deck: any title, caption, or bullet that case-insensitively starts with
// the first 120 characters of the prompt is cleared, and slides left with
// no text at all are dropped.
func Sanitize(in []core.Slide, prompt string) []core.Slide {
	check := echoPrefix(prompt)

	out := make([]core.Slide, 0, len(in))
	for _, s := range in {
		s.Title = cleanText(s.Title, check)
		s.Caption = cleanText(s.Caption, check)

		if len(s.Bullets) > 0 {
			bullets := make([]string, 0, len(s.Bullets))
			for _, b := range s.Bullets {
				b = strings.TrimSpace(b)
				if b == "" || isEcho(b, check) {
					continue
				}
				bullets = append(bullets, b)
			}
			s.Bullets = bullets
		}

		if s.Title == "" && s.Caption == "" && len(s.Bullets) == 0 {
			continue
		}
		out = append(out, s)
	}
	return out
}

func echoPrefix(prompt string) string {
	p := strings.ToLower(strings.TrimSpace(prompt))
	runes := []rune(p)
	if len(runes) > promptEchoLimit {
		runes = runes[:promptEchoLimit]
	}
	return strings.TrimSpace(string(runes))
}

func isEcho(text, check string) bool {
	return check != "" && strings.HasPrefix(strings.ToLower(text), check)
}

func cleanText(text, check string) string {
	text = strings.TrimSpace(text)
	if text == "" || isEcho(text, check) {
		return ""
	}
	return blankRunRegex.ReplaceAllString(text, "\n\n")
}

// ensureCount pads with generic title slides or truncates (earliest kept)
// so the deck has exactly target slides.
func ensureCount(in []core.Slide, target int) []core.Slide {
	if len(in) > target {
		return in[:target]
	}
	for i := len(in); i < target; i++ {
		in = append(in, core.Slide{
			Layout: core.LayoutTitle,
			Title:  fmt.Sprintf("Slide %d", i+1),
		})
	}
	return in
}

// fillImageSlides guarantees every image slide has a caption and a
// resolvable image URL. The URL is always derived from the topic and slide
// position, never taken verbatim from generator output.
func fillImageSlides(slides []core.Slide, topic string) {
	for i := range slides {
		if slides[i].Layout != core.LayoutImage {
			continue
		}
		if slides[i].Caption == "" {
			caption := []rune(slides[i].Title)
			if len(caption) > captionLimit {
				caption = caption[:captionLimit]
			}
			slides[i].Caption = string(caption)
		}
		seed := nonAlnumRegex.ReplaceAllString(fmt.Sprintf("%s_%d", topic, i), "")
		if seed == "" {
			seed = fmt.Sprintf("slide_%d", i)
		}
		slides[i].ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/1200/800", seed)
	}
}

func stringField(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, stringField(item))
	}
	return out
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(t) != ""
	case bool:
		return t
	default:
		return true
	}
}
