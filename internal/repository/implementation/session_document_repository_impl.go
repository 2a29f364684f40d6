package implementation

import (
	"context"

	"brd-wizard-be/internal/entity"
	"brd-wizard-be/internal/mapper"
	"brd-wizard-be/internal/model"
	"brd-wizard-be/internal/repository/contract"
	"brd-wizard-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type SessionDocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionDocumentMapper
}

func NewSessionDocumentRepository(db *gorm.DB) contract.SessionDocumentRepository {
	return &SessionDocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionDocumentMapper(),
	}
}

func (r *SessionDocumentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SessionDocumentRepositoryImpl) Create(ctx context.Context, doc *entity.SessionDocument) error {
	m := r.mapper.ToModel(doc)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*doc = *r.mapper.ToEntity(m)
	return nil
}

func (r *SessionDocumentRepositoryImpl) CreateBulk(ctx context.Context, docs []*entity.SessionDocument) error {
	models := r.mapper.ToModels(docs)
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*docs[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *SessionDocumentRepositoryImpl) DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("session_id = ?", sessionId).Delete(&model.SessionDocument{}).Error
}

func (r *SessionDocumentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionDocument, error) {
	var models []*model.SessionDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SessionDocumentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.SessionDocument{}), specs...)
	err := query.Count(&count).Error
	return count, err
}

func (r *SessionDocumentRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, limit int, sessionId uuid.UUID) ([]*entity.SessionDocument, error) {
	if limit <= 0 {
		limit = 5
	}
	var models []*model.SessionDocument

	// Cosine distance ordering, scoped to one session's index.
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionId).
		Where("deleted_at IS NULL").
		Order(gorm.Expr("embedding_value <=> ?", pgvector.NewVector(embedding))).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}
