package rag

import (
	"context"
	"errors"
	"fmt"

	"portfolio-chat/internal/model"
)

type fakeScanner struct {
	entries []model.ContentEmbedding
	err     error
}

func (s *fakeScanner) ScanAll() ([]model.ContentEmbedding, error) {
	return s.entries, s.err
}

type fakeEmbedder struct {
	vec []float32
	err error
}

func (e *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return e.vec, e.err
}

func (e *fakeEmbedder) ModelTag() string { return "test-model" }

// fakeResolver serves contents keyed by "kind:refID". Missing keys resolve
// to (nil, nil), like a record deleted after indexing.
type fakeResolver struct {
	contents map[string]*model.Content
	err      error
}

func (r *fakeResolver) Resolve(kind model.ContentKind, refID string) (*model.Content, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.contents[fmt.Sprintf("%s:%s", kind, refID)], nil
}

type fakeGenerator struct {
	generation Generation
}

func (g *fakeGenerator) Generate(ctx context.Context, query, contextText string) Generation {
	return g.generation
}

type fakeSearcher struct {
	results []Result
	err     error
}

func (s *fakeSearcher) Search(ctx context.Context, query string, topK int) ([]Result, error) {
	return s.results, s.err
}

type recordingLogger struct {
	entries []*model.RetrievalLog
	err     error
}

func (l *recordingLogger) Append(entry *model.RetrievalLog) error {
	if l.err != nil {
		return l.err
	}
	l.entries = append(l.entries, entry)
	return nil
}

var errBoom = errors.New("boom")

func embeddingEntry(kind model.ContentKind, refID string, vec []float32) model.ContentEmbedding {
	entry := model.ContentEmbedding{
		Kind:       kind,
		RefID:      refID,
		SourceText: "source text for " + refID,
	}
	entry.SetVector(vec)
	return entry
}
