package normalizer

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractResult parses the model output into a Result. Models often wrap the
// JSON in prose or markdown fences, so parsing is strict about the JSON
// itself but lenient about the surroundings: the first '{' and the last '}'
// delimit the candidate object.
func ExtractResult(output string) (*Result, error) {
	start := strings.Index(output, "{")
	end := strings.LastIndex(output, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("no JSON object in model output")
	}

	var res Result
	if err := json.Unmarshal([]byte(output[start:end+1]), &res); err != nil {
		return nil, fmt.Errorf("unmarshal model output: %w", err)
	}

	if strings.TrimSpace(res.Value) == "" && !res.NeedsClarification {
		return nil, fmt.Errorf("model output has empty value")
	}
	if res.NeedsClarification && strings.TrimSpace(res.FollowupQuestion) == "" {
		return nil, fmt.Errorf("clarification requested without a follow-up question")
	}
	if res.Confidence < 0 || res.Confidence > 1 {
		return nil, fmt.Errorf("model confidence %.2f out of range", res.Confidence)
	}

	return &res, nil
}
