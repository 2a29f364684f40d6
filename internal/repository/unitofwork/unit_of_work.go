package unitofwork

import (
	"context"

	"brd-wizard-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	BrdSessionRepository() contract.BrdSessionRepository
	FieldUpdateRepository() contract.FieldUpdateRepository
	SessionDocumentRepository() contract.SessionDocumentRepository
}
