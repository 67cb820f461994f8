package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/docforge/core"
)

const (
	fetchTimeout   = 30 * time.Second
	fetchUserAgent = "DocForge/1.0 (https://github.com/gaurav-prasanna/docforge)"
)

// noiseSelectors are HTML elements removed before extraction. They
// contribute no meaningful content to the page text.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"nav", "footer", "header",
	"img", "picture", "figure", "figcaption",
	"iframe", "video", "audio",
	"svg", "canvas",
	"form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
}

// WebSource produces sections and slides from a single reference web
// page: fetch, strip noise, convert to Markdown, slice by headings. A
// deterministic, model-free content source.
type WebSource struct {
	URL string

	client *http.Client
	log    *zap.Logger
}

// NewWebSource creates a WebSource for the given page URL.
func NewWebSource(url string, log *zap.Logger) *WebSource {
	if log == nil {
		log = zap.NewNop()
	}
	return &WebSource{
		URL:    url,
		client: &http.Client{Timeout: fetchTimeout},
		log:    log,
	}
}

// GenerateSections fetches the page and slices its content into sections.
// When headings are given, each is matched (case-insensitively) against
// the page's own headings; unmatched ones come back empty. Otherwise the
// page's first target sections are used as-is.
func (w *WebSource) GenerateSections(ctx context.Context, topic string, headings []string, target int) ([]core.Section, error) {
	md, err := w.fetchMarkdown(ctx)
	if err != nil {
		return nil, err
	}

	found := sectionsFromMarkdown(md)
	w.log.Debug("extracted page sections", zap.String("url", w.URL), zap.Int("count", len(found)))

	if len(headings) > 0 {
		out := make([]core.Section, 0, len(headings))
		for i, h := range headings {
			sec := core.Section{Heading: h, OrderIndex: i + 1}
			for _, f := range found {
				if strings.EqualFold(strings.TrimSpace(f.Heading), strings.TrimSpace(h)) {
					sec.Content = f.Content
					break
				}
			}
			out = append(out, sec)
		}
		return out, nil
	}

	if target < 1 {
		target = 1
	}
	if len(found) > target {
		found = found[:target]
	}
	for i := range found {
		found[i].OrderIndex = i + 1
	}
	return found, nil
}

// GenerateSlides builds raw deck content from the page: a title slide for
// the topic followed by one bullet slide per page section. The slides
// normalizer enforces the final count.
func (w *WebSource) GenerateSlides(ctx context.Context, topic string, count int) ([]any, error) {
	md, err := w.fetchMarkdown(ctx)
	if err != nil {
		return nil, err
	}

	found := sectionsFromMarkdown(md)

	out := []any{map[string]any{"layout": "title", "title": topic}}
	for _, sec := range found {
		var bullets []any
		for _, sentence := range sentencesForBullets(sec.Content, 5) {
			bullets = append(bullets, sentence)
		}
		out = append(out, map[string]any{
			"layout":  "bullet",
			"title":   sec.Heading,
			"bullets": bullets,
		})
	}
	return out, nil
}

// fetchMarkdown retrieves the page and converts its main content to
// Markdown.
func (w *WebSource) fetchMarkdown(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.URL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", fetchUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := w.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", w.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status %d for %s", resp.StatusCode, w.URL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}

	content, err := extractMainContent(string(body))
	if err != nil {
		return "", err
	}

	md, err := htmltomarkdown.ConvertString(content)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return md, nil
}

// extractMainContent isolates the main content of an HTML page by
// removing noise elements and picking the best container in priority
// order: <main>, then <article>, then <body>.
func extractMainContent(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	var content *goquery.Selection
	for _, tag := range []string{"main", "article", "body"} {
		if sel := doc.Find(tag); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		return "", fmt.Errorf("no content container found in HTML")
	}

	result, err := goquery.OuterHtml(content)
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}
	return result, nil
}
