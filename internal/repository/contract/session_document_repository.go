package contract

import (
	"context"

	"brd-wizard-be/internal/entity"
	"brd-wizard-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SessionDocumentRepository interface {
	Create(ctx context.Context, doc *entity.SessionDocument) error
	CreateBulk(ctx context.Context, docs []*entity.SessionDocument) error
	DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionDocument, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchSimilar orders by cosine distance within a single session's index.
	SearchSimilar(ctx context.Context, embedding []float32, limit int, sessionId uuid.UUID) ([]*entity.SessionDocument, error)
}
