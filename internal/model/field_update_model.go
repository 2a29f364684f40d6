package model

import (
	"time"

	"github.com/google/uuid"
)

// FieldUpdate rows are append-only; there is no update or delete path.
type FieldUpdate struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId  uuid.UUID `gorm:"type:uuid;not null;index:idx_field_updates_session_created,priority:1"`
	Field      string    `gorm:"type:varchar(50);not null"`
	OldValue   string    `gorm:"type:text"`
	NewValue   string    `gorm:"type:text"`
	Source     string    `gorm:"type:varchar(20);not null"`
	Confidence float64   `gorm:"type:numeric(4,3);default:0"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index:idx_field_updates_session_created,priority:2"`
}

func (FieldUpdate) TableName() string {
	return "brd_field_updates"
}
