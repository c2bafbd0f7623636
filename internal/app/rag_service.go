package app

import (
	"context"
	"errors"
	"strings"

	"portfolio-chat/internal/model"
	"portfolio-chat/internal/rag"
)

var ErrQueryEmpty = errors.New("query is empty")

// previewLength caps the source text echoed by the diagnostic search.
const previewLength = 200

type RAGService struct {
	engine  *rag.Engine
	indexer *rag.Indexer
}

func NewRAGService(engine *rag.Engine, indexer *rag.Indexer) *RAGService {
	return &RAGService{
		engine:  engine,
		indexer: indexer,
	}
}

// SearchMatch is one diagnostic retrieval hit.
type SearchMatch struct {
	Kind        model.ContentKind `json:"kind"`
	RefID       string            `json:"ref_id"`
	Score       float64           `json:"score"`
	TextPreview string            `json:"text_preview"`
}

// Search runs raw retrieval without generation, for tuning and debugging.
func (s *RAGService) Search(ctx context.Context, query string, topK int) ([]SearchMatch, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrQueryEmpty
	}

	results, err := s.engine.Search(ctx, query, topK)
	if err != nil {
		return nil, err
	}

	matches := make([]SearchMatch, 0, len(results))
	for _, r := range results {
		matches = append(matches, SearchMatch{
			Kind:        r.Entry.Kind,
			RefID:       r.Entry.RefID,
			Score:       r.Score,
			TextPreview: preview(r.Entry.SourceText, previewLength),
		})
	}
	return matches, nil
}

// ReindexAll re-embeds the whole corpus.
func (s *RAGService) ReindexAll(ctx context.Context) (*rag.IndexResult, error) {
	return s.indexer.IndexAll(ctx)
}

// ReindexKind re-embeds one content kind.
func (s *RAGService) ReindexKind(ctx context.Context, kind model.ContentKind) (*rag.IndexResult, error) {
	if !kind.Valid() {
		return nil, ErrInvalidInput
	}
	return s.indexer.IndexKind(ctx, kind)
}

func preview(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
