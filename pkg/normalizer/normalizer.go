// Package normalizer turns raw user answers into clean BRD field values.
package normalizer

import "context"

// Result is one normalization outcome.
type Result struct {
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
	// NeedsClarification signals the answer was too ambiguous to commit; the
	// orchestrator stays on the same field and re-prompts with the follow-up.
	NeedsClarification bool   `json:"needs_clarification,omitempty"`
	FollowupQuestion   string `json:"followup_question,omitempty"`
	// Fallback marks that the raw answer was used as-is because the model
	// output could not be used.
	Fallback bool `json:"fallback,omitempty"`
}

// FallbackConfidence is the confidence assigned when the raw answer passes
// through unchanged.
const FallbackConfidence = 0.7

// Input carries everything a normalizer may use for one field.
type Input struct {
	Field       string
	Description string
	RawAnswer   string
	// Context holds related field values already collected in this session.
	Context map[string]string
	// Snippets are retrieval results from the session's uploaded document.
	Snippets []string
}

type Normalizer interface {
	Normalize(ctx context.Context, in Input) (*Result, error)
}

// Passthrough returns the raw answer unchanged. Used when USE_LLM is off and
// as the error fallback of the LLM normalizer.
func Passthrough(raw string) *Result {
	return &Result{
		Value:      raw,
		Confidence: FallbackConfidence,
		Fallback:   true,
	}
}
