package entity

import (
	"time"

	"github.com/google/uuid"
)

// FieldUpdate is one append-only audit record of a field value change.
type FieldUpdate struct {
	Id         uuid.UUID
	SessionId  uuid.UUID
	Field      string
	OldValue   string
	NewValue   string
	Source     string
	Confidence float64
	CreatedAt  time.Time
}
