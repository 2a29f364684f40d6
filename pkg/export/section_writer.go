package export

import (
	"context"
	"fmt"
	"strings"

	"brd-wizard-be/pkg/llm"
)

// SectionWriter rewrites a composed section body into fluent document prose.
// Callers treat any error as "keep the template body".
type SectionWriter interface {
	Rewrite(ctx context.Context, section Section) (string, error)
}

// LLMSectionWriter polishes sections with the configured model. The model is
// instructed to stay within the given content; it adds no facts of its own.
type LLMSectionWriter struct {
	provider llm.LLMProvider
}

func NewLLMSectionWriter(provider llm.LLMProvider) *LLMSectionWriter {
	return &LLMSectionWriter{provider: provider}
}

var _ SectionWriter = &LLMSectionWriter{}

func (w *LLMSectionWriter) Rewrite(ctx context.Context, section Section) (string, error) {
	body := strings.TrimSpace(section.Body)
	if body == "" {
		return "", nil
	}

	prompt := fmt.Sprintf(
		"Asagidaki icerigi bir is gereksinim dokumaninin '%s' bolumu olarak akici Turkce paragraflara donustur. Sadece verilen bilgiyi kullan, yeni bilgi ekleme. Sadece bolum metnini dondur.\n\n%s",
		section.Title, body,
	)

	output, err := w.provider.Generate(ctx, prompt, llm.WithTemperature(0.3))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}
