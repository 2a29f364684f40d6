package scoring

// FieldScore is the computed result for one field. It is recomputed from the
// current field value on every evaluation and never persisted as a source of
// truth (only snapshotted into the session for display).
type FieldScore struct {
	Field       string   `json:"field"`
	Score       int      `json:"score"`
	MaxScore    int      `json:"max_score"`
	Findings    []string `json:"findings"`
	QuestionIDs []string `json:"question_ids"`
}

// ScoreResult is the aggregate over all fields. The Privacy gate field appears
// as a virtual entry with MaxScore 0 and never contributes to TotalScore.
type ScoreResult struct {
	TotalScore     int          `json:"total_score"`
	MaxTotal       int          `json:"max_total"`
	FieldScores    []FieldScore `json:"field_scores"`
	SubmitAllowed  bool         `json:"submit_allowed"`
	SubmitBlockers []string     `json:"submit_blockers"`
}

// FieldScoreFor returns the entry for a field, or nil when absent.
func (r *ScoreResult) FieldScoreFor(field string) *FieldScore {
	for i := range r.FieldScores {
		if r.FieldScores[i].Field == field {
			return &r.FieldScores[i]
		}
	}
	return nil
}
