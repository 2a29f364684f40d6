package implementation

import (
	"context"
	"errors"

	"brd-wizard-be/internal/entity"
	"brd-wizard-be/internal/mapper"
	"brd-wizard-be/internal/model"
	"brd-wizard-be/internal/repository/contract"
	"brd-wizard-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BrdSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BrdSessionMapper
}

func NewBrdSessionRepository(db *gorm.DB) contract.BrdSessionRepository {
	return &BrdSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewBrdSessionMapper(),
	}
}

func (r *BrdSessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BrdSessionRepositoryImpl) Create(ctx context.Context, session *entity.BrdSession) error {
	m := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(m)
	return nil
}

func (r *BrdSessionRepositoryImpl) Update(ctx context.Context, session *entity.BrdSession) error {
	m := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(m)
	return nil
}

func (r *BrdSessionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.BrdSession{}, id).Error
}

func (r *BrdSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BrdSession, error) {
	var m model.BrdSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BrdSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BrdSession, error) {
	var models []*model.BrdSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.BrdSession, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *BrdSessionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.BrdSession{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
