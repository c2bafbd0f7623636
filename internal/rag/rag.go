// Package rag implements the retrieval-augmented answer pipeline: content
// normalization, embedding storage and search, prompt-context assembly,
// response generation, and enhancement of the generated text into a
// structured, UI-renderable answer.
package rag

import (
	"context"

	"portfolio-chat/internal/model"
)

// EmbeddingDimension is the vector length of the primary embedding model.
const EmbeddingDimension = 1536

// Result pairs a stored embedding with its similarity against one query.
type Result struct {
	Entry model.ContentEmbedding
	Score float64
}

// Searcher ranks stored content against a free-text query. Both the vector
// retriever and the word-overlap fallback satisfy it; everything downstream
// is written against this interface only.
type Searcher interface {
	Search(ctx context.Context, query string, topK int) ([]Result, error)
}

// Embedder turns text into a fixed-length vector. Implementations must be
// substitutable: the pipeline never branches on which one is active.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	ModelTag() string
}

// Generation is the raw output of a Generator. Err marks the degraded path;
// callers check it rather than relying on a returned error, because a canned
// answer is still an answer.
type Generation struct {
	Content    string
	TokensUsed int
	Err        error
}

// Generator produces the answer text for a query given assembled context.
type Generator interface {
	Generate(ctx context.Context, query, contextText string) Generation
}

// ContentResolver looks up the record behind an embedding reference.
// A (nil, nil) return means the record no longer exists.
type ContentResolver interface {
	Resolve(kind model.ContentKind, refID string) (*model.Content, error)
}

// Answer is the structured output of the pipeline.
type Answer struct {
	Content               string           `json:"content"`
	ResponseType          string           `json:"response_type"`
	ReferencedProjects    []string         `json:"referenced_projects"`
	ReferencedSkills      []uint           `json:"referenced_skills"`
	ReferencedExperiences []uint           `json:"referenced_experiences"`
	MediaURLs             []string         `json:"media_urls"`
	ConfidenceScore       float64          `json:"confidence_score"`
	RetrievalContext      RetrievalContext `json:"retrieval_context"`
	TokensUsed            int              `json:"tokens_used"`
}

// RetrievalContext carries retrieval diagnostics alongside the answer.
type RetrievalContext struct {
	QueryMatches          int `json:"query_matches"`
	HighConfidenceMatches int `json:"high_confidence_matches"`
}
