package implementation

import (
	"context"

	"brd-wizard-be/internal/entity"
	"brd-wizard-be/internal/mapper"
	"brd-wizard-be/internal/model"
	"brd-wizard-be/internal/repository/contract"
	"brd-wizard-be/internal/repository/specification"

	"gorm.io/gorm"
)

type FieldUpdateRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BrdSessionMapper
}

func NewFieldUpdateRepository(db *gorm.DB) contract.FieldUpdateRepository {
	return &FieldUpdateRepositoryImpl{
		db:     db,
		mapper: mapper.NewBrdSessionMapper(),
	}
}

func (r *FieldUpdateRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FieldUpdateRepositoryImpl) Create(ctx context.Context, update *entity.FieldUpdate) error {
	m := r.mapper.FieldUpdateToModel(update)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*update = *r.mapper.FieldUpdateToEntity(m)
	return nil
}

func (r *FieldUpdateRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FieldUpdate, error) {
	var models []*model.FieldUpdate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.FieldUpdatesToEntities(models), nil
}

func (r *FieldUpdateRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.FieldUpdate{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
