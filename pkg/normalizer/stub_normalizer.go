package normalizer

import (
	"context"
	"strings"
)

// StubNormalizer trims the raw answer and passes it through. It is the
// default when no LLM is configured, so the wizard works fully offline.
type StubNormalizer struct{}

func NewStubNormalizer() *StubNormalizer {
	return &StubNormalizer{}
}

var _ Normalizer = &StubNormalizer{}

func (n *StubNormalizer) Normalize(_ context.Context, in Input) (*Result, error) {
	return Passthrough(strings.TrimSpace(in.RawAnswer)), nil
}
