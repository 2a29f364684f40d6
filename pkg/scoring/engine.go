package scoring

import (
	"fmt"

	"brd-wizard-be/pkg/brd"
)

// Compute scores every canonical field against the current field values and
// aggregates the result. The iteration follows brd.Fields declaration order so
// the output is deterministic and idempotent for a given fields map.
//
// The Privacy gate field is evaluated separately: it is appended as a virtual
// entry with MaxScore 0, contributes nothing to the total, and blocks
// submission while unanswered.
func Compute(fields map[string]string) *ScoreResult {
	total := 0
	fieldScores := make([]FieldScore, 0, len(brd.Fields))

	for _, field := range brd.Fields {
		if field == brd.FieldPrivacy {
			continue
		}
		max := brd.FieldMax[field]
		score, findings, qids := fieldScorers[field](fields[field])

		// Clamp regardless of what the heuristic returned.
		if score < 0 {
			score = 0
		}
		if score > max {
			score = max
		}

		total += score
		fieldScores = append(fieldScores, FieldScore{
			Field:       field,
			Score:       score,
			MaxScore:    max,
			Findings:    findings,
			QuestionIDs: qids,
		})
	}

	privacyEntry, privacyAnswered := evaluatePrivacy(fields[brd.FieldPrivacy])
	fieldScores = append(fieldScores, privacyEntry)

	var blockers []string
	if total < brd.SubmitThreshold {
		blockers = append(blockers, fmt.Sprintf("Toplam skor %d'in altında.", brd.SubmitThreshold))
	}
	if !privacyAnswered {
		blockers = append(blockers, "Privacy / Compliance alanı yanıtlanmadı.")
	}

	return &ScoreResult{
		TotalScore:     total,
		MaxTotal:       brd.MaxTotal(),
		FieldScores:    fieldScores,
		SubmitAllowed:  len(blockers) == 0,
		SubmitBlockers: blockers,
	}
}

// WeakFields returns every non-privacy field whose score is below
// ratio * max_score, in the fixed field iteration order. The order is a
// designed invariant: the selection policy consumes this list as a priority
// queue, not sorted by score magnitude.
func WeakFields(result *ScoreResult, ratio float64) []string {
	var weak []string
	for _, fs := range result.FieldScores {
		if fs.Field == brd.FieldPrivacy {
			continue
		}
		if float64(fs.Score) < float64(fs.MaxScore)*ratio {
			weak = append(weak, fs.Field)
		}
	}
	return weak
}
