package contract

import (
	"context"

	"brd-wizard-be/internal/entity"
	"brd-wizard-be/internal/repository/specification"
)

// FieldUpdateRepository is append-only: the audit trail is never rewritten.
type FieldUpdateRepository interface {
	Create(ctx context.Context, update *entity.FieldUpdate) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FieldUpdate, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
