package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BrdSession struct {
	Id     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId uuid.UUID `gorm:"type:uuid;not null;index"` // User ownership for data isolation
	Title  string    `gorm:"type:text;not null"`
	State  string    `gorm:"type:varchar(20);not null;default:'INTAKE'"`

	Fields  datatypes.JSON `gorm:"type:jsonb"`
	Answers datatypes.JSON `gorm:"type:jsonb"`

	ActiveField     string                      `gorm:"type:text"`
	LastQuestionIds datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	LastScore       datatypes.JSON              `gorm:"type:jsonb"`

	PdfGateDone            bool   `gorm:"default:false"`
	PdfUploadedPath        string `gorm:"type:text"`
	PdfSummary             string `gorm:"type:text"`
	PdfAppliedToBackground bool   `gorm:"default:false"`

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (BrdSession) TableName() string {
	return "brd_sessions"
}
