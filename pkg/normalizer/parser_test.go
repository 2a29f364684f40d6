package normalizer

import (
	"testing"
)

func TestExtractResult(t *testing.T) {
	tests := []struct {
		name      string
		output    string
		wantErr   bool
		wantValue string
	}{
		{
			name:      "bare json",
			output:    `{"value": "Dönüşüm oranı %25", "confidence": 0.9}`,
			wantValue: "Dönüşüm oranı %25",
		},
		{
			name:      "fenced json",
			output:    "```json\n{\"value\": \"Mobil ve web kanalları\", \"confidence\": 0.8}\n```",
			wantValue: "Mobil ve web kanalları",
		},
		{
			name:      "json wrapped in prose",
			output:    `Here is the normalized answer: {"value": "Aylık rapor", "confidence": 0.75} hope this helps`,
			wantValue: "Aylık rapor",
		},
		{
			name:    "no json object",
			output:  "the answer is probably fine",
			wantErr: true,
		},
		{
			name:    "malformed json",
			output:  `{"value": "x", "confidence": }`,
			wantErr: true,
		},
		{
			name:    "empty value without clarification",
			output:  `{"value": "  ", "confidence": 0.9}`,
			wantErr: true,
		},
		{
			name:      "empty value with clarification",
			output:    `{"value": "", "confidence": 0.4, "needs_clarification": true, "followup_question": "Hangi kanallar etkilenecek?"}`,
			wantValue: "",
		},
		{
			name:    "clarification without question",
			output:  `{"value": "", "confidence": 0.4, "needs_clarification": true}`,
			wantErr: true,
		},
		{
			name:    "confidence out of range",
			output:  `{"value": "x", "confidence": 1.4}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ExtractResult(tt.output)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ExtractResult(%q) succeeded, want error", tt.output)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractResult(%q) error: %v", tt.output, err)
			}
			if res.Value != tt.wantValue {
				t.Errorf("Value = %q, want %q", res.Value, tt.wantValue)
			}
		})
	}
}
