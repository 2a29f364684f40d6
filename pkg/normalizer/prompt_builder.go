package normalizer

import (
	"fmt"
	"strings"
)

// Context caps keep the prompt well under model limits even with a large
// session and many retrieval snippets.
const (
	maxContextChars = 2000
	maxSnippetChars = 1500
)

// PromptBuilder assembles the normalization prompt for one field.
type PromptBuilder struct {
	in Input
}

func NewPromptBuilder(in Input) *PromptBuilder {
	return &PromptBuilder{in: in}
}

func (b *PromptBuilder) Build() string {
	var prompt strings.Builder

	b.writeTask(&prompt)
	b.writeSessionContext(&prompt)
	b.writeDocumentSnippets(&prompt)
	b.writeAnswer(&prompt)
	b.writeOutputFormat(&prompt)

	return prompt.String()
}

func (b *PromptBuilder) writeTask(prompt *strings.Builder) {
	prompt.WriteString("<task>\n")
	prompt.WriteString("You are a business analyst cleaning up answers for a BRD (Business Requirements Document).\n")
	fmt.Fprintf(prompt, "Rewrite the user's raw answer as a concise, professional value for the field %q.\n", b.in.Field)
	if b.in.Description != "" {
		fmt.Fprintf(prompt, "Field meaning: %s\n", b.in.Description)
	}
	prompt.WriteString("Keep the user's language. Do not invent facts that are not in the answer or the context.\n")
	prompt.WriteString("</task>\n\n")
}

func (b *PromptBuilder) writeSessionContext(prompt *strings.Builder) {
	if len(b.in.Context) == 0 {
		return
	}

	prompt.WriteString("<session_context>\n")
	used := 0
	for field, value := range b.in.Context {
		if strings.TrimSpace(value) == "" {
			continue
		}
		line := fmt.Sprintf("%s: %s\n", field, value)
		if used+len(line) > maxContextChars {
			break
		}
		prompt.WriteString(line)
		used += len(line)
	}
	prompt.WriteString("</session_context>\n\n")
}

func (b *PromptBuilder) writeDocumentSnippets(prompt *strings.Builder) {
	if len(b.in.Snippets) == 0 {
		return
	}

	prompt.WriteString("<document_snippets>\n")
	used := 0
	for _, snippet := range b.in.Snippets {
		if used+len(snippet) > maxSnippetChars {
			break
		}
		prompt.WriteString(snippet)
		prompt.WriteString("\n---\n")
		used += len(snippet)
	}
	prompt.WriteString("</document_snippets>\n\n")
}

func (b *PromptBuilder) writeAnswer(prompt *strings.Builder) {
	prompt.WriteString("<raw_answer>\n")
	prompt.WriteString(b.in.RawAnswer)
	prompt.WriteString("\n</raw_answer>\n\n")
}

func (b *PromptBuilder) writeOutputFormat(prompt *strings.Builder) {
	prompt.WriteString("<output_format>\n")
	prompt.WriteString("Respond with a single JSON object and nothing else:\n")
	prompt.WriteString(`{"value": "<normalized field value>", "confidence": <0.0-1.0>, "needs_clarification": <bool>, "followup_question": "<question or empty>"}`)
	prompt.WriteString("\nSet needs_clarification only when the answer cannot be mapped to the field at all.\n")
	prompt.WriteString("</output_format>\n")
}
