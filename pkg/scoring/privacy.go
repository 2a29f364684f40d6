package scoring

import (
	"strings"

	"brd-wizard-be/pkg/brd"
)

// PrivacyClass is the outcome of the keyword classification of the gate field.
type PrivacyClass string

const (
	PrivacyUnanswered  PrivacyClass = "UNANSWERED"
	PrivacyNegative    PrivacyClass = "NEGATIVE"
	PrivacyAffirmative PrivacyClass = "AFFIRMATIVE"
	PrivacyUnclear     PrivacyClass = "UNCLEAR"
)

// Negative markers take precedence over affirmative markers so that PII
// vocabulary inside a denial ("telefon numarası saklanmayacak") does not flip
// the answer to affirmative. An explicit strong "evet/var" style token is
// required for the affirmative branch; naming personal-data fields alone is
// not enough. Intentionally conservative.
var (
	privacyNegativeTR = []string{
		"hayır", "hayir", "yok", "işlenmeyecek", "saklanmayacak",
		"tutulmayacak", "paylaşılmayacak", "no ", "none",
	}
	privacyAffirmativeTR = []string{
		"evet", "var", "işlenecek", "saklanacak", "tutulacak", "yes",
	}
)

// ClassifyPrivacy classifies the Privacy / Compliance answer.
func ClassifyPrivacy(value string) PrivacyClass {
	if brd.IsEmpty(value) {
		return PrivacyUnanswered
	}
	lower := strings.ToLower(strings.TrimSpace(value)) + " "
	for _, marker := range privacyNegativeTR {
		if strings.Contains(lower, marker) {
			return PrivacyNegative
		}
	}
	for _, marker := range privacyAffirmativeTR {
		if strings.Contains(lower, marker) {
			return PrivacyAffirmative
		}
	}
	return PrivacyUnclear
}

// evaluatePrivacy builds the virtual gate entry. The gate never changes the
// numeric total: MaxScore is 0 and findings are informational only.
func evaluatePrivacy(value string) (FieldScore, bool) {
	entry := FieldScore{
		Field:    brd.FieldPrivacy,
		Score:    0,
		MaxScore: 0,
	}

	switch ClassifyPrivacy(value) {
	case PrivacyUnanswered:
		entry.Findings = []string{"Privacy / Compliance yanıtı gerekli."}
		entry.QuestionIDs = []string{QPrivacyMin}
		return entry, false
	case PrivacyNegative:
		entry.Findings = []string{"Kişisel veri etkisi yok olarak işaretlendi."}
	case PrivacyAffirmative:
		entry.Findings = []string{"Kişisel veri işlenecek: compliance task açılması önerilir."}
	default:
		entry.Findings = []string{"Privacy yanıtı net değil; KVKK etkisini netleştirin."}
	}
	return entry, true
}
