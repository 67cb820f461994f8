// Package source implements the content sources that feed the layout
// pipeline: an LLM-backed source talking to an Ollama-compatible API, a
// web source that slices a reference page, and pure fallback generators.
package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"sort"
	"strings"
	"time"

	retry "github.com/avast/retry-go/v4"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/docforge/core"
)

const (
	defaultLLMURL   = "http://localhost:11434/api/generate"
	generateTimeout = 120 * time.Second
	llmAttempts     = 3

	// Sections shorter than this many words get one expansion attempt.
	shortSectionWords = 40
)

var (
	wordRegex              = regexp.MustCompile(`\w+`)
	pageSectionPrefixRegex = regexp.MustCompile(`^[Pp]age\s*\d+\s*[-–]\s*[Ss]ection\s*\d+\s*\n*`)
	sectionPrefixRegex     = regexp.MustCompile(`^[Ss]ection\s*\d+\s*[:\-]\s*`)
)

// LLMSource generates document sections and deck content by prompting a
// text-generation API.
type LLMSource struct {
	Model string

	url    string
	client *http.Client
	log    *zap.Logger
}

// NewLLMSource creates an LLMSource against the given endpoint URL (the
// default local endpoint when empty).
func NewLLMSource(url, model string, log *zap.Logger) *LLMSource {
	if url == "" {
		url = defaultLLMURL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &LLMSource{
		Model:  model,
		url:    url,
		client: &http.Client{Timeout: generateTimeout},
		log:    log,
	}
}

// generateRequest is the request body for the generation API.
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// generateResponse is the response body from the generation API.
type generateResponse struct {
	Response string `json:"response"`
}

// generate sends one prompt and returns the raw model text, retrying
// transient failures.
func (s *LLMSource) generate(ctx context.Context, prompt string) (string, error) {
	var out string
	err := retry.Do(
		func() error {
			text, err := s.generateOnce(ctx, prompt)
			if err != nil {
				return err
			}
			out = text
			return nil
		},
		retry.Attempts(llmAttempts),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	return out, err
}

func (s *LLMSource) generateOnce(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{Model: s.Model, Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling generation API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("generation API returned %d: %s", resp.StatusCode, string(msg))
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decoding generation response: %w", err)
	}
	return parsed.Response, nil
}

// GenerateSections produces target document sections for the topic. When
// headings are given they define both the section count and order. The
// result is always structurally usable: unparsable or failed model output
// degrades to plain-text extraction and then to fallback placeholders.
func (s *LLMSource) GenerateSections(ctx context.Context, topic string, headings []string, target int) ([]core.Section, error) {
	if len(headings) > 0 {
		target = len(headings)
	}
	if target < 1 {
		target = 1
	}

	s.log.Debug("generating sections",
		zap.String("topic", topic),
		zap.Int("target", target),
	)

	raw, err := s.generate(ctx, sectionsPrompt(topic, headings, target))
	if err != nil {
		s.log.Warn("section generation failed, using fallback content", zap.Error(err))
		return FallbackSections(headings, target), nil
	}

	sections, ok := sectionsFromModelJSON(raw)
	if !ok {
		s.log.Warn("model returned unparsable JSON, extracting plain text",
			zap.Int("raw_len", len(raw)))
		if len(headings) > 0 {
			sections = SectionsFromPlainText(raw, headings)
		} else {
			sections = sectionsFromParagraphs(raw, target)
		}
	}

	sections = cleanSections(topic, sections)
	sections = s.expandShortSections(ctx, topic, sections)

	// Pad with fallback sections or trim so the caller gets exactly what
	// was asked for.
	if len(sections) < target {
		s.log.Warn("model returned fewer sections than expected",
			zap.Int("got", len(sections)), zap.Int("want", target))
		extra := FallbackSections(nil, target-len(sections))
		for i := range extra {
			extra[i].OrderIndex = len(sections) + i + 1
		}
		sections = append(sections, extra...)
	}
	if len(sections) > target {
		sections = sections[:target]
	}
	return sections, nil
}

// GenerateSlides produces raw deck content for the topic. The returned
// items are untyped; the slides normalizer owns mapping them onto the
// layout set. A model response that is not a JSON array is a hard error.
func (s *LLMSource) GenerateSlides(ctx context.Context, topic string, count int) ([]any, error) {
	raw, err := s.generate(ctx, deckPrompt(topic, count))
	if err != nil {
		return nil, fmt.Errorf("deck content generation: %w", err)
	}

	v, ok := decodeModelJSON(raw)
	if !ok {
		return nil, fmt.Errorf("deck content generation: no JSON in model output (len=%d)", len(raw))
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("deck content generation: model returned %T, expected a list", v)
	}
	return items, nil
}

// RefineSection rewrites one section under a user instruction. Fail-safe:
// on any error the current content comes back unchanged.
func (s *LLMSource) RefineSection(ctx context.Context, topic, heading, current, instruction string) string {
	raw, err := s.generate(ctx, refinePrompt(topic, heading, current, instruction))
	if err != nil {
		s.log.Warn("section refinement failed, keeping current content",
			zap.String("heading", heading), zap.Error(err))
		return current
	}
	refined := strings.TrimSpace(fenceRegex.ReplaceAllString(raw, ""))
	refined = strings.ReplaceAll(refined, `\n`, "\n")
	return strings.TrimSpace(refined)
}

// cleanSections normalizes model output: unescapes newlines, strips
// "Page N – Section M" style prefixes and echoed topic/heading first
// lines, and re-establishes a consistent order.
func cleanSections(topic string, in []core.Section) []core.Section {
	out := make([]core.Section, 0, len(in))
	for _, sec := range in {
		content := strings.ReplaceAll(sec.Content, `\n`, "\n")
		content = strings.ReplaceAll(content, "\r\n", "\n")
		content = strings.ReplaceAll(content, "\r", "\n")
		content = strings.TrimSpace(content)

		content = pageSectionPrefixRegex.ReplaceAllString(content, "")
		content = sectionPrefixRegex.ReplaceAllString(content, "")

		first, rest, found := strings.Cut(content, "\n")
		if strings.TrimSpace(first) == strings.TrimSpace(topic) ||
			strings.TrimSpace(first) == strings.TrimSpace(sec.Heading) {
			if found {
				content = rest
			} else {
				content = ""
			}
		}

		out = append(out, core.Section{
			Heading:    sec.Heading,
			OrderIndex: sec.OrderIndex,
			Content:    strings.TrimSpace(content),
		})
	}

	for i := range out {
		if out[i].OrderIndex == 0 {
			out[i].OrderIndex = i + 1
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out
}

// expandShortSections asks the model to rewrite sections under
// shortSectionWords words; the rewrite is kept only when it is actually
// longer. Best effort, failures keep the original text.
func (s *LLMSource) expandShortSections(ctx context.Context, topic string, in []core.Section) []core.Section {
	for i, sec := range in {
		words := len(wordRegex.FindAllString(sec.Content, -1))
		if words >= shortSectionWords {
			continue
		}
		raw, err := s.generate(ctx, expandPrompt(topic, sec.Heading, sec.Content))
		if err != nil {
			s.log.Warn("failed to expand short section",
				zap.String("heading", sec.Heading), zap.Error(err))
			continue
		}
		expanded := strings.TrimSpace(fenceRegex.ReplaceAllString(raw, ""))
		expanded = strings.ReplaceAll(expanded, `\n`, "\n")
		if len(wordRegex.FindAllString(expanded, -1)) > words {
			in[i].Content = expanded
		}
	}
	return in
}

// sectionsFromParagraphs assigns raw paragraphs to generic headings in
// order, for model output with neither JSON nor known headings.
func sectionsFromParagraphs(raw string, target int) []core.Section {
	paragraphs := splitParagraphs(raw)
	out := make([]core.Section, 0, target)
	for i := 0; i < target; i++ {
		sec := core.Section{Heading: fmt.Sprintf("Section %d", i+1), OrderIndex: i + 1}
		if i < len(paragraphs) {
			sec.Content = paragraphs[i]
		}
		out = append(out, sec)
	}
	return out
}
