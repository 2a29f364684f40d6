package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionDocument is one embedded chunk of an uploaded session PDF.
type SessionDocument struct {
	Id             uuid.UUID
	SessionId      uuid.UUID
	Document       string
	EmbeddingValue []float32
	ChunkIndex     int
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}
