// Package summarizer condenses uploaded PDF text into a short Background
// seed for the wizard.
package summarizer

import (
	"context"
	"fmt"
	"strings"

	"brd-wizard-be/pkg/llm"
)

// Summarizer produces a short Turkish summary of document text.
type Summarizer interface {
	Summarize(ctx context.Context, text string, maxChars int) (string, error)
}

// LLMSummarizer uses the configured model; errors degrade to a plain
// truncation so an upload never fails on a flaky model.
type LLMSummarizer struct {
	provider llm.LLMProvider
}

func NewLLMSummarizer(provider llm.LLMProvider) *LLMSummarizer {
	return &LLMSummarizer{provider: provider}
}

var _ Summarizer = &LLMSummarizer{}

func (s *LLMSummarizer) Summarize(ctx context.Context, text string, maxChars int) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", nil
	}

	prompt := fmt.Sprintf(
		"Asagidaki dokuman icerigini en fazla %d karakterlik, is gereksinimlerine odakli kisa bir ozet olarak yaz. Sadece ozeti dondur.\n\n%s",
		maxChars, capText(trimmed, 12000),
	)

	output, err := s.provider.Generate(ctx, prompt, llm.WithTemperature(0.3))
	if err != nil {
		return Truncate(trimmed, maxChars), nil
	}

	summary := strings.TrimSpace(output)
	if summary == "" {
		return Truncate(trimmed, maxChars), nil
	}
	return Truncate(summary, maxChars), nil
}

// StubSummarizer truncates. Default when no LLM is configured.
type StubSummarizer struct{}

func NewStubSummarizer() *StubSummarizer {
	return &StubSummarizer{}
}

var _ Summarizer = &StubSummarizer{}

func (s *StubSummarizer) Summarize(_ context.Context, text string, maxChars int) (string, error) {
	return Truncate(strings.TrimSpace(text), maxChars), nil
}

// Truncate cuts text to maxChars runes, appending an ellipsis when cut.
func Truncate(text string, maxChars int) string {
	if maxChars <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars]) + "..."
}

func capText(text string, maxChars int) string {
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars])
}
