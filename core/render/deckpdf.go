package render

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/docforge/core"
	"github.com/gaurav-prasanna/docforge/core/styleconf"
)

const (
	imageTimeout   = 15 * time.Second
	imageUserAgent = "Mozilla/5.0 (compatible; DocForge/1.0)"
)

type rgb struct{ r, g, b int }

type theme struct {
	background rgb
	accent     rgb
	text       rgb
}

// deckThemes are the built-in deck themes selectable via theme_id. They
// stand in for presentation template files: a background, an accent used
// for titles and rules, and a body text color.
var deckThemes = map[string]theme{
	"ppt1": {background: rgb{255, 255, 255}, accent: rgb{31, 73, 125}, text: rgb{30, 30, 30}},
	"ppt2": {background: rgb{245, 245, 240}, accent: rgb{150, 54, 52}, text: rgb{40, 40, 40}},
	"ppt3": {background: rgb{28, 30, 38}, accent: rgb{255, 184, 77}, text: rgb{235, 235, 235}},
	"ppt4": {background: rgb{255, 251, 240}, accent: rgb{0, 112, 92}, text: rgb{35, 35, 35}},
	"ppt5": {background: rgb{235, 241, 250}, accent: rgb{46, 84, 156}, text: rgb{25, 25, 25}},
	"ppt6": {background: rgb{250, 240, 246}, accent: rgb{136, 42, 106}, text: rgb{40, 30, 38}},
	"ppt7": {background: rgb{24, 40, 36}, accent: rgb{126, 217, 163}, text: rgb{230, 240, 235}},
	"ppt8": {background: rgb{255, 255, 255}, accent: rgb{214, 110, 28}, text: rgb{35, 35, 35}},
	"ppt9": {background: rgb{38, 38, 44}, accent: rgb{120, 170, 255}, text: rgb{228, 228, 232}},
}

const defaultThemeID = "ppt1"

// urlJunkRegex matches whitespace inside a model-supplied image URL.
var urlJunkRegex = regexp.MustCompile(`\s+`)

// DeckRenderer renders normalized slides as a landscape A4 PDF, one page
// per slide. Image slides fetch their image over HTTP; a failed fetch
// degrades to an annotated caption instead of failing the deck.
type DeckRenderer struct {
	client *http.Client
	log    *zap.Logger
}

// NewDeckRenderer creates a DeckRenderer.
func NewDeckRenderer(log *zap.Logger) *DeckRenderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &DeckRenderer{
		client: &http.Client{Timeout: imageTimeout},
		log:    log,
	}
}

// Render builds the deck PDF using the theme and overrides in conf. conf
// is expected to be validated already; unknown theme ids fall back to the
// default theme.
func (r *DeckRenderer) Render(slides []core.Slide, conf styleconf.Configuration) ([]byte, error) {
	th, ok := deckThemes[conf.ThemeID]
	if !ok {
		th = deckThemes[defaultThemeID]
	}
	if c, ok := parseHexColor(conf.BackgroundColor); ok {
		th.background = c
	}
	if c, ok := parseHexColor(conf.AccentColor); ok {
		th.accent = c
	}
	if c, ok := parseHexColor(conf.FontColor); ok {
		th.text = c
	}
	family := fontFamily(conf.FontName)

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	w, h := pdf.GetPageSize()

	for i, slide := range slides {
		pdf.AddPage()
		pdf.SetFillColor(th.background.r, th.background.g, th.background.b)
		pdf.Rect(0, 0, w, h, "F")

		switch slide.Layout {
		case core.LayoutTitle:
			r.renderTitle(pdf, slide, th, family, w, h)
		case core.LayoutBullet:
			r.renderBullets(pdf, slide, th, family, w)
		case core.LayoutTwoColumn:
			r.renderTwoColumn(pdf, slide, th, family, w)
		case core.LayoutImage:
			r.renderImage(pdf, slide, th, family, w, h, i)
		default:
			r.renderTitle(pdf, slide, th, family, w, h)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for deck output.
func (r *DeckRenderer) Extension() string {
	return ".pdf"
}

func (r *DeckRenderer) renderTitle(pdf *gofpdf.Fpdf, slide core.Slide, th theme, family string, w, h float64) {
	pdf.SetTextColor(th.accent.r, th.accent.g, th.accent.b)
	pdf.SetFont(family, "B", 36)
	pdf.SetXY(20, h/2-20)
	pdf.MultiCell(w-40, 16, slide.Title, "", "C", false)
}

// slideHeader writes the slide title and accent rule, returning the y
// position where body content starts.
func (r *DeckRenderer) slideHeader(pdf *gofpdf.Fpdf, title string, th theme, family string, w float64) float64 {
	pdf.SetTextColor(th.accent.r, th.accent.g, th.accent.b)
	pdf.SetFont(family, "B", 24)
	pdf.SetXY(15, 15)
	pdf.MultiCell(w-30, 11, title, "", "L", false)

	y := pdf.GetY() + 3
	pdf.SetDrawColor(th.accent.r, th.accent.g, th.accent.b)
	pdf.SetLineWidth(0.8)
	pdf.Line(15, y, w-15, y)
	return y + 8
}

func (r *DeckRenderer) renderBullets(pdf *gofpdf.Fpdf, slide core.Slide, th theme, family string, w float64) {
	y := r.slideHeader(pdf, slide.Title, th, family, w)

	pdf.SetTextColor(th.text.r, th.text.g, th.text.b)
	pdf.SetFont(family, "", 14)
	pdf.SetY(y)
	for _, bullet := range slide.Bullets {
		pdf.SetX(20)
		pdf.MultiCell(w-40, 8, "• "+bullet, "", "L", false)
		pdf.Ln(2)
	}
}

func (r *DeckRenderer) renderTwoColumn(pdf *gofpdf.Fpdf, slide core.Slide, th theme, family string, w float64) {
	y := r.slideHeader(pdf, slide.Title, th, family, w)
	colWidth := (w - 45) / 2

	pdf.SetTextColor(th.text.r, th.text.g, th.text.b)
	pdf.SetFont(family, "", 13)

	pdf.SetXY(15, y)
	pdf.MultiCell(colWidth, 7, slide.Left, "", "L", false)

	pdf.SetXY(15+colWidth+15, y)
	pdf.MultiCell(colWidth, 7, slide.Right, "", "L", false)
}

func (r *DeckRenderer) renderImage(pdf *gofpdf.Fpdf, slide core.Slide, th theme, family string, w, h float64, index int) {
	y := r.slideHeader(pdf, slide.Title, th, family, w)
	caption := slide.Caption
	if caption == "" {
		caption = slide.Title
	}

	imgWidth := (w - 45) / 2
	textX := 15 + imgWidth + 15
	textWidth := w - textX - 15

	if url := cleanImageURL(slide.ImageURL); url != "" {
		if err := r.placeImage(pdf, url, index, 15, y, imgWidth, h-y-15); err != nil {
			r.log.Warn("image fetch failed", zap.String("url", url), zap.Error(err))
			caption = fmt.Sprintf("%s\n\n(Image failed to load: %s)", caption, url)
			textX = 15
			textWidth = w - 30
		}
	} else {
		textX = 15
		textWidth = w - 30
	}

	pdf.SetTextColor(th.text.r, th.text.g, th.text.b)
	pdf.SetFont(family, "", 13)
	pdf.SetXY(textX, y)
	for _, para := range captionParagraphs(caption, 2) {
		pdf.SetX(textX)
		pdf.MultiCell(textWidth, 7, para, "", "L", false)
		pdf.Ln(3)
	}
}

// placeImage downloads the image and draws it into the given box, scaled
// to the box width.
func (r *DeckRenderer) placeImage(pdf *gofpdf.Fpdf, url string, index int, x, y, boxW, boxH float64) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", imageUserAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("image fetch returned %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading image body: %w", err)
	}

	name := fmt.Sprintf("slide_img_%d", index)
	opts := gofpdf.ImageOptions{ImageType: imageTypeFor(resp.Header.Get("Content-Type"), url), ReadDpi: true}
	info := pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if pdf.Err() {
		err := pdf.Error()
		pdf.ClearError()
		return fmt.Errorf("registering image: %v", err)
	}

	imgH := boxW * info.Height() / info.Width()
	if imgH > boxH {
		imgH = boxH
	}
	pdf.ImageOptions(name, x, y, boxW, imgH, false, opts, 0, "")
	return nil
}

// imageTypeFor maps a response content type (or URL extension) onto the
// image types gofpdf understands.
func imageTypeFor(contentType, url string) string {
	switch {
	case strings.Contains(contentType, "png"), strings.HasSuffix(url, ".png"):
		return "PNG"
	case strings.Contains(contentType, "gif"), strings.HasSuffix(url, ".gif"):
		return "GIF"
	default:
		return "JPG"
	}
}

// cleanImageURL strips whitespace and stray punctuation that models wrap
// around URLs.
func cleanImageURL(url string) string {
	url = urlJunkRegex.ReplaceAllString(url, "")
	return strings.Trim(url, "()[]{}.,;")
}

// captionParagraphs regroups caption text into paragraphs of at most
// maxSentences sentences for a tidier text column.
func captionParagraphs(text string, maxSentences int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	flat := strings.ReplaceAll(text, "\n", " ")

	var sentences []string
	for _, part := range strings.Split(flat, ".") {
		if part = strings.TrimSpace(part); part != "" {
			sentences = append(sentences, part+".")
		}
	}
	if len(sentences) == 0 {
		return []string{strings.TrimSpace(text)}
	}

	var out []string
	var buf []string
	for i, s := range sentences {
		buf = append(buf, s)
		if (i+1)%maxSentences == 0 {
			out = append(out, strings.Join(buf, " "))
			buf = nil
		}
	}
	if len(buf) > 0 {
		out = append(out, strings.Join(buf, " "))
	}
	return out
}

// fontFamily maps an allowed configuration font onto the closest gofpdf
// core font.
func fontFamily(name string) string {
	switch name {
	case "Times New Roman":
		return "Times"
	case "Arial", "Calibri", "Poppins", "Segoe UI":
		return "Helvetica"
	default:
		return "Helvetica"
	}
}

// parseHexColor parses #RGB or #RRGGBB. Invalid or empty values report ok
// false so the theme default stays in place.
func parseHexColor(s string) (rgb, bool) {
	if !strings.HasPrefix(s, "#") {
		return rgb{}, false
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return rgb{}, false
	}
	var c rgb
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &c.r, &c.g, &c.b); err != nil {
		return rgb{}, false
	}
	return c, true
}
