// Package core defines the shared types and stage interfaces for DocForge.
// Each stage of the generation pipeline is a clean, testable interface.
package core

import (
	"context"

	"github.com/gaurav-prasanna/docforge/core/styleconf"
)

// Section represents one heading+content unit of a document.
// OrderIndex is the global, stable ordering key. PageNumber and
// SectionIndex are filled in once the section is placed on a page.
type Section struct {
	Heading      string `json:"heading"`
	Content      string `json:"content"`
	OrderIndex   int    `json:"order_index"`
	PageNumber   int    `json:"page_number,omitempty"`
	SectionIndex int    `json:"section_index,omitempty"`
}

// PageMap maps 1-based page numbers to the ordered sections placed on them.
// Every page number from 1 to the requested page count is present as a key.
type PageMap map[int][]Section

// SlideLayout identifies one of the four supported slide layouts.
type SlideLayout string

const (
	LayoutTitle     SlideLayout = "title"
	LayoutBullet    SlideLayout = "bullet"
	LayoutTwoColumn SlideLayout = "two_column"
	LayoutImage     SlideLayout = "image"
)

// Slide is a tagged variant over the four deck layouts. Layout decides
// which of the optional fields carry meaning.
type Slide struct {
	Layout   SlideLayout `json:"layout"`
	Title    string      `json:"title"`
	Bullets  []string    `json:"bullets,omitempty"`
	Left     string      `json:"left,omitempty"`
	Right    string      `json:"right,omitempty"`
	Caption  string      `json:"caption,omitempty"`
	ImageURL string      `json:"image_url,omitempty"`
}

// SectionSource generates raw document sections for a topic.
// Implementations may return fewer or more items than requested, in any
// order, with possibly-empty content; downstream stages tolerate all of it.
type SectionSource interface {
	GenerateSections(ctx context.Context, topic string, headings []string, target int) ([]Section, error)
}

// SlideSource generates raw, untyped deck content for a topic. The items
// are whatever shape the source produced; the slides normalizer maps them
// onto the closed layout set.
type SlideSource interface {
	GenerateSlides(ctx context.Context, topic string, count int) ([]any, error)
}

// DocumentRenderer turns a page map and title into final file bytes.
type DocumentRenderer interface {
	Render(title string, pages PageMap) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".pdf").
	Extension() string
}

// DeckRenderer turns a normalized slide sequence and a styling
// configuration into final file bytes.
type DeckRenderer interface {
	Render(slides []Slide, conf styleconf.Configuration) ([]byte, error)
	Extension() string
}
