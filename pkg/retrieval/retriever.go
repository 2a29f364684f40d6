// Package retrieval pulls context snippets from a session's document index.
package retrieval

import (
	"context"

	"github.com/google/uuid"

	"brd-wizard-be/pkg/embedding"
)

// SnippetSearcher is implemented by the session document storage.
type SnippetSearcher interface {
	SearchSimilar(ctx context.Context, vector []float32, limit int, sessionId uuid.UUID) ([]string, error)
}

// Retriever embeds a query and searches the session's index. Retrieval is
// best-effort context enrichment: every failure path returns an empty slice,
// never an error, so a broken index cannot break a wizard turn.
type Retriever struct {
	provider embedding.EmbeddingProvider
	searcher SnippetSearcher
}

func NewRetriever(provider embedding.EmbeddingProvider, searcher SnippetSearcher) *Retriever {
	return &Retriever{
		provider: provider,
		searcher: searcher,
	}
}

func (r *Retriever) Snippets(ctx context.Context, sessionId uuid.UUID, query string, limit int) []string {
	if r.provider == nil || r.searcher == nil || query == "" {
		return []string{}
	}
	if limit <= 0 {
		limit = 3
	}

	res, err := r.provider.Generate(query, "RETRIEVAL_QUERY")
	if err != nil || len(res.Embedding.Values) == 0 {
		return []string{}
	}

	snippets, err := r.searcher.SearchSimilar(ctx, res.Embedding.Values, limit, sessionId)
	if err != nil || snippets == nil {
		return []string{}
	}
	return snippets
}
