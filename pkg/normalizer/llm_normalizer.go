package normalizer

import (
	"context"
	"strings"

	"brd-wizard-be/pkg/llm"
)

// LLMNormalizer asks the model for a cleaned value. It never fails a turn:
// any provider or parsing error degrades to a passthrough of the raw answer.
type LLMNormalizer struct {
	provider llm.LLMProvider
}

func NewLLMNormalizer(provider llm.LLMProvider) *LLMNormalizer {
	return &LLMNormalizer{provider: provider}
}

var _ Normalizer = &LLMNormalizer{}

func (n *LLMNormalizer) Normalize(ctx context.Context, in Input) (*Result, error) {
	raw := strings.TrimSpace(in.RawAnswer)
	if raw == "" {
		return Passthrough(raw), nil
	}

	prompt := NewPromptBuilder(in).Build()

	output, err := n.provider.Generate(ctx, prompt, llm.WithTemperature(0.2))
	if err != nil {
		return Passthrough(raw), nil
	}

	res, err := ExtractResult(output)
	if err != nil {
		return Passthrough(raw), nil
	}

	return res, nil
}
