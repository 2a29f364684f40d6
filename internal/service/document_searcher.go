package service

import (
	"context"

	"brd-wizard-be/internal/repository/unitofwork"
	"brd-wizard-be/pkg/retrieval"

	"github.com/google/uuid"
)

// documentSearcher adapts the session document repository to the retriever's
// snippet interface.
type documentSearcher struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewDocumentSearcher(uowFactory unitofwork.RepositoryFactory) retrieval.SnippetSearcher {
	return &documentSearcher{uowFactory: uowFactory}
}

func (d *documentSearcher) SearchSimilar(ctx context.Context, vector []float32, limit int, sessionId uuid.UUID) ([]string, error) {
	uow := d.uowFactory.NewUnitOfWork(ctx)
	docs, err := uow.SessionDocumentRepository().SearchSimilar(ctx, vector, limit, sessionId)
	if err != nil {
		return nil, err
	}

	snippets := make([]string, len(docs))
	for i, doc := range docs {
		snippets[i] = doc.Document
	}
	return snippets, nil
}
