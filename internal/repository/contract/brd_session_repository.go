package contract

import (
	"context"

	"brd-wizard-be/internal/entity"
	"brd-wizard-be/internal/repository/specification"

	"github.com/google/uuid"
)

type BrdSessionRepository interface {
	Create(ctx context.Context, session *entity.BrdSession) error
	Update(ctx context.Context, session *entity.BrdSession) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BrdSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BrdSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
