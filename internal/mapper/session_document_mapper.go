package mapper

import (
	"time"

	"brd-wizard-be/internal/entity"
	"brd-wizard-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type SessionDocumentMapper struct{}

func NewSessionDocumentMapper() *SessionDocumentMapper {
	return &SessionDocumentMapper{}
}

func (m *SessionDocumentMapper) ToEntity(d *model.SessionDocument) *entity.SessionDocument {
	if d == nil {
		return nil
	}

	var deletedAt *time.Time
	if d.DeletedAt.Valid {
		t := d.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	return &entity.SessionDocument{
		Id:             d.Id,
		SessionId:      d.SessionId,
		Document:       d.Document,
		EmbeddingValue: d.EmbeddingValue.Slice(),
		ChunkIndex:     d.ChunkIndex,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
		IsDeleted:      d.DeletedAt.Valid,
	}
}

func (m *SessionDocumentMapper) ToModel(d *entity.SessionDocument) *model.SessionDocument {
	if d == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if d.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *d.DeletedAt, Valid: true}
	} else if d.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	return &model.SessionDocument{
		Id:             d.Id,
		SessionId:      d.SessionId,
		Document:       d.Document,
		EmbeddingValue: pgvector.NewVector(d.EmbeddingValue),
		ChunkIndex:     d.ChunkIndex,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
	}
}

func (m *SessionDocumentMapper) ToEntities(docs []*model.SessionDocument) []*entity.SessionDocument {
	entities := make([]*entity.SessionDocument, len(docs))
	for i, d := range docs {
		entities[i] = m.ToEntity(d)
	}
	return entities
}

func (m *SessionDocumentMapper) ToModels(docs []*entity.SessionDocument) []*model.SessionDocument {
	models := make([]*model.SessionDocument, len(docs))
	for i, d := range docs {
		models[i] = m.ToModel(d)
	}
	return models
}
