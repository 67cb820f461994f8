// Package render produces the final PDF outputs: documents from a page
// map and decks from normalized slides.
package render

import (
	"bytes"
	"sort"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/docforge/core"
	"github.com/gaurav-prasanna/docforge/core/textnorm"
)

// docFontSizes returns heading and body font sizes for a page based on
// how many sections share it: denser pages get slightly smaller text.
func docFontSizes(sections int) (heading, body float64) {
	switch {
	case sections <= 1:
		return 16, 12
	case sections == 2:
		return 14, 11
	default:
		return 13, 10
	}
}

// DocumentRenderer renders a page map as a portrait A4 PDF: a title page
// followed by one PDF page per page-map entry.
type DocumentRenderer struct{}

// NewDocumentRenderer creates a DocumentRenderer.
func NewDocumentRenderer() *DocumentRenderer {
	return &DocumentRenderer{}
}

// Render builds the document PDF. Section content is cleaned against the
// document title and section heading before it is written, so generator
// boilerplate never reaches the page.
func (r *DocumentRenderer) Render(title string, pages core.PageMap) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)

	// Title page.
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 24)
	pdf.Ln(60)
	pdf.MultiCell(0, 12, title, "", "C", false)

	pageNums := make([]int, 0, len(pages))
	for p := range pages {
		pageNums = append(pageNums, p)
	}
	sort.Ints(pageNums)

	for _, p := range pageNums {
		pdf.AddPage()
		sections := pages[p]
		headingSize, bodySize := docFontSizes(len(sections))

		for _, sec := range sections {
			content := textnorm.Clean(title, sec.Heading, sec.Content)

			if sec.Heading != "" {
				pdf.SetFont("Helvetica", "B", headingSize)
				pdf.MultiCell(0, headingSize*0.6, sec.Heading, "", "L", false)
				pdf.Ln(2)
			}

			pdf.SetFont("Helvetica", "", bodySize)
			for _, para := range strings.Split(content, "\n") {
				if strings.TrimSpace(para) == "" {
					continue
				}
				pdf.MultiCell(0, bodySize*0.5, para, "", "L", false)
				pdf.Ln(2)
			}
			pdf.Ln(4)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for document output.
func (r *DocumentRenderer) Extension() string {
	return ".pdf"
}
