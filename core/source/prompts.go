package source

import (
	"fmt"
	"strings"
)

// sectionsPrompt asks for document sections as a strict JSON array, either
// for a provided heading list or for model-proposed headings.
func sectionsPrompt(topic string, headings []string, target int) string {
	if len(headings) == 0 {
		return fmt.Sprintf(`You are an expert business writer. MAIN TOPIC: %s

The user did NOT provide section headings. Propose exactly %d concise subtopic headings (each 3-6 words)
that together form a logical document flow for the MAIN TOPIC. For each proposed heading, write substantive
content of ~200-350 words (about 2-4 short paragraphs), information-dense with relevant examples or
practical implications where helpful.

STRICT OUTPUT (JSON array only):
Return a JSON array of %d objects exactly like:
[
  {"heading": "Proposed heading 1", "order_index": 1, "content": "Paragraph1\nParagraph2"}
]`, topic, target, target)
	}

	var list strings.Builder
	for _, h := range headings {
		fmt.Fprintf(&list, "- %s\n", h)
	}
	return fmt.Sprintf(`You are an expert business writer creating a professional document.

MAIN TOPIC:
%s

The document will have the following SECTIONS (in this exact order):
%s
For EACH heading, write substantial content: target ~200-350 words per heading (roughly 2-4 short paragraphs).
Do NOT output headings again; return a JSON array of objects like:

[
  {"heading": "Exactly one heading from the provided list", "order_index": 1, "content": "Paragraph1\nParagraph2"}
]`, topic, list.String())
}

// deckPrompt asks for a full slide deck as a strict JSON array mixing the
// four supported layouts.
func deckPrompt(topic string, numSlides int) string {
	return fmt.Sprintf(`You are an expert presentation designer and educator.

Goal:
Create a highly engaging, logically structured slide deck on the topic "%s" with EXACTLY %d slides.

Audience:
Beginner to intermediate learners who want clear explanations and practical insights.

Content & layout rules:
1. Slide 1 MUST be a pure title slide introducing the topic (no bullets, just a strong title).
2. Slide %d MUST be a summary / conclusion / call-to-action slide.
3. Other slides should mix these layouts intelligently:
   - "title" for big section headers or key messages.
   - "bullet" to explain concepts, lists, pros/cons, or step-by-step flows (3-6 bullets, 12-25 words each).
   - "two_column" for comparisons: "left" carries explanation or theory, "right" carries examples or implications.
   - "image" when a diagram, workflow or chart would help; write a descriptive 10-30 word "caption",
     the backend chooses the actual image URL.
4. Avoid repeating the same sentence or idea across different slides.
5. Use simple, modern, professional English. No fluff, no marketing buzzwords.
6. Do NOT write things like "This slide explains..." or mention "slide" inside the content.

Output format:
Return ONLY a JSON array (no markdown, no backticks, no extra commentary).`, topic, numSlides, numSlides)
}

// refinePrompt asks for one section rewritten under a user instruction.
func refinePrompt(topic, heading, current, instruction string) string {
	return fmt.Sprintf(`You are revising ONE section of a professional business document.

Main topic: %s
Section heading: %s

Current section content:
"""%s"""

User refinement instruction:
"""%s"""

Rewrite ONLY this section according to the instruction.

Rules:
- Keep meaning and key information intact.
- Apply the user's style/length instructions carefully.
- Output plain text only.
- Use '\n' for paragraph breaks.
- Do NOT add the heading, section numbers, or any meta commentary.`, topic, heading, current, instruction)
}

// expandPrompt asks for a short section draft rewritten at proper length.
func expandPrompt(topic, heading, current string) string {
	return fmt.Sprintf(`You previously provided a short draft for this section.

Main topic: %s
Section heading: %s

Current text:
"""%s"""

Please expand and rewrite this section to be more substantial:
- Target roughly 200-300 words, 2-4 short paragraphs.
- Keep the meaning, add examples or practical points.
- Output plain text only with '\n' between paragraphs.`, topic, heading, current)
}
