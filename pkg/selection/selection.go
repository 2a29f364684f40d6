// Package selection decides which BRD field the wizard asks about next.
package selection

import (
	"brd-wizard-be/pkg/brd"
	"brd-wizard-be/pkg/scoring"
)

// privacyQuestionIDs is a hard map: the gate field always resolves to its
// single mandatory question, regardless of what the aggregator returned.
var privacyQuestionIDs = []string{scoring.QPrivacyMin}

// PickNextField returns the field the wizard should ask about next, or ""
// when the document is complete for wizard purposes.
//
// Priority, Privacy always last:
//  1. first entry of weakFields that is not Privacy and exists in fields;
//     a weak field is re-asked even when partially filled
//  2. first field with score exactly 0, excluding Privacy
//  3. first empty field in canonical order, excluding Privacy
//  4. Privacy, when every other field is non-empty and Privacy is empty
//  5. "" otherwise
func PickNextField(result *scoring.ScoreResult, fields map[string]string, weakFields []string) string {
	for _, f := range weakFields {
		if f == brd.FieldPrivacy {
			continue
		}
		if _, ok := fields[f]; ok {
			return f
		}
	}

	for _, fs := range result.FieldScores {
		if fs.Field == brd.FieldPrivacy {
			continue
		}
		if _, ok := fields[fs.Field]; ok && fs.Score == 0 {
			return fs.Field
		}
	}

	for _, f := range brd.FieldOrder() {
		if f == brd.FieldPrivacy {
			continue
		}
		if v, ok := fields[f]; ok && brd.IsEmpty(v) {
			return f
		}
	}

	if v, ok := fields[brd.FieldPrivacy]; ok && brd.IsEmpty(v) {
		return brd.FieldPrivacy
	}

	return ""
}

// QuestionIDsForField returns the follow-up question ids for a field from the
// last score result.
func QuestionIDsForField(result *scoring.ScoreResult, field string) []string {
	if field == brd.FieldPrivacy {
		return privacyQuestionIDs
	}
	if fs := result.FieldScoreFor(field); fs != nil {
		return fs.QuestionIDs
	}
	return nil
}
