package scoring

import (
	"testing"
)

func TestClassifyPrivacy(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  PrivacyClass
	}{
		{
			name:  "empty",
			value: "  ",
			want:  PrivacyUnanswered,
		},
		{
			name:  "plain negative",
			value: "Hayır, kişisel veri yok.",
			want:  PrivacyNegative,
		},
		{
			name:  "ascii negative",
			value: "hayir",
			want:  PrivacyNegative,
		},
		{
			name:  "plain affirmative",
			value: "Evet, müşteri telefonu saklanacak.",
			want:  PrivacyAffirmative,
		},
		{
			name:  "denial naming personal data stays negative",
			value: "Telefon numarası saklanmayacak, kimlik bilgisi tutulmayacak.",
			want:  PrivacyNegative,
		},
		{
			name:  "english no with trailing word",
			value: "no personal data involved",
			want:  PrivacyNegative,
		},
		{
			name:  "unclear",
			value: "Hukuk birimine sorulacak.",
			want:  PrivacyUnclear,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyPrivacy(tt.value); got != tt.want {
				t.Errorf("ClassifyPrivacy(%q) = %s, want %s", tt.value, got, tt.want)
			}
		})
	}
}

func TestEvaluatePrivacyGate(t *testing.T) {
	entry, answered := evaluatePrivacy("")
	if answered {
		t.Error("unanswered gate reported as answered")
	}
	if len(entry.QuestionIDs) != 1 || entry.QuestionIDs[0] != QPrivacyMin {
		t.Errorf("QuestionIDs = %v, want [%s]", entry.QuestionIDs, QPrivacyMin)
	}

	entry, answered = evaluatePrivacy("Evet, işlenecek.")
	if !answered {
		t.Error("affirmative gate reported as unanswered")
	}
	if entry.MaxScore != 0 {
		t.Errorf("gate MaxScore = %d, want 0", entry.MaxScore)
	}
}
