package dto

import (
	"time"

	"github.com/google/uuid"

	"brd-wizard-be/pkg/scoring"
)

type CreateSessionRequest struct {
	Title string `json:"title"`
}

type TurnRequest struct {
	Message    string `json:"message" validate:"required"`
	QuestionId string `json:"question_id,omitempty"`
}

type PdfUploadRequest struct {
	FileName string `json:"file_name" validate:"required"`
	PdfText  string `json:"pdf_text" validate:"required"`
}

// WizardPayload is the single response shape of every wizard operation.
type WizardPayload struct {
	SessionId      uuid.UUID            `json:"session_id"`
	State          string               `json:"state"`
	Prompt         string               `json:"prompt,omitempty"`
	NextField      string               `json:"next_field"`
	NextQuestions  []string             `json:"next_questions"`
	TotalScore     int                  `json:"total_score"`
	MaxTotal       int                  `json:"max_total"`
	SubmitAllowed  bool                 `json:"submit_allowed"`
	SubmitBlockers []string             `json:"submit_blockers"`
	WeakFields     []string             `json:"weak_fields"`
	FieldScores    []scoring.FieldScore `json:"field_scores"`
}

type FieldUpdateResponse struct {
	Field      string    `json:"field"`
	OldValue   string    `json:"old_value"`
	NewValue   string    `json:"new_value"`
	Source     string    `json:"source"`
	Confidence float64   `json:"confidence"`
	CreatedAt  time.Time `json:"created_at"`
}

type SessionDetailResponse struct {
	Payload WizardPayload         `json:"payload"`
	Title   string                `json:"title"`
	Fields  map[string]string     `json:"fields"`
	Trail   []FieldUpdateResponse `json:"trail"`
}

type PreviewResponse struct {
	SessionId uuid.UUID `json:"session_id"`
	Markdown  string    `json:"markdown"`
}

// PublishSessionDocumentMessage rides the in-process bus to the embedding
// consumer.
type PublishSessionDocumentMessage struct {
	SessionId uuid.UUID `json:"session_id"`
	Text      string    `json:"text"`
}
