package entity

import (
	"time"

	"github.com/google/uuid"

	"brd-wizard-be/pkg/scoring"
)

// WizardState is the conversation phase of a BRD session.
type WizardState string

const (
	StateIntake     WizardState = "INTAKE"
	StateUploadWait WizardState = "UPLOAD_WAIT"
	StateFieldLoop  WizardState = "FIELD_LOOP"
	StateClarifying WizardState = "CLARIFYING"
	StateComplete   WizardState = "COMPLETE"
)

type BrdSession struct {
	Id     uuid.UUID
	UserId uuid.UUID
	Title  string
	State  WizardState

	// Fields always carries every canonical BRD field, empty string when unset.
	Fields map[string]string
	// Answers keeps the raw user text last given per field, pre-normalization.
	Answers map[string]string

	ActiveField     string
	LastQuestionIds []string
	LastScore       *scoring.ScoreResult

	PdfGateDone            bool
	PdfUploadedPath        string
	PdfSummary             string
	PdfAppliedToBackground bool

	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
