package rag

import (
	"context"
	"log"
	"math"
	"sort"
	"strings"

	"portfolio-chat/internal/model"
)

// EmbeddingScanner is the read side of the embedding store the retriever
// needs: a full scan of every stored entry.
type EmbeddingScanner interface {
	ScanAll() ([]model.ContentEmbedding, error)
}

// RetrievalLogger records one search for offline analysis. Implementations
// may fail; the retriever never lets that failure reach its caller.
type RetrievalLogger interface {
	Append(entry *model.RetrievalLog) error
}

// Retriever ranks every stored embedding against a query by cosine
// similarity. The corpus is small by design, so a full scan per query is the
// whole algorithm; there is no index.
type Retriever struct {
	store    EmbeddingScanner
	embedder Embedder
	logs     RetrievalLogger
}

func NewRetriever(store EmbeddingScanner, embedder Embedder, logs RetrievalLogger) *Retriever {
	return &Retriever{
		store:    store,
		embedder: embedder,
		logs:     logs,
	}
}

// Search returns up to topK results ranked by descending similarity. A query
// that cannot be embedded yields an empty result set, not an error: no
// retrievable context is a valid, if uninformative, outcome.
func (r *Retriever) Search(ctx context.Context, query string, topK int) ([]Result, error) {
	if topK <= 0 {
		return nil, nil
	}

	queryVec, err := r.embedder.Embed(ctx, query)
	if err != nil || len(queryVec) == 0 {
		if err != nil {
			log.Printf("query embedding degraded to empty: %v", err)
		}
		return nil, nil
	}

	entries, err := r.store.ScanAll()
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(entries))
	for _, entry := range entries {
		vec := entry.Vector()
		if len(vec) == 0 {
			continue
		}
		results = append(results, Result{
			Entry: entry,
			Score: cosineSimilarity(queryVec, vec),
		})
	}

	// Stable sort keeps scan order on ties, so the ranking is deterministic
	// for one store state.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > topK {
		results = results[:topK]
	}

	r.logRetrieval(query, queryVec, results)
	return results, nil
}

func (r *Retriever) logRetrieval(query string, queryVec []float32, results []Result) {
	if r.logs == nil {
		return
	}

	ids := make([]string, len(results))
	scores := make([]float64, len(results))
	for i, res := range results {
		ids[i] = res.Entry.RefID
		scores[i] = res.Score
	}

	entry := &model.RetrievalLog{
		Query:               query,
		RetrievedContentIDs: ids,
		SimilarityScores:    scores,
	}
	entry.SetQueryEmbedding(queryVec)

	if err := r.logs.Append(entry); err != nil {
		log.Printf("retrieval log write failed: %v", err)
	}
}

// cosineSimilarity returns dot(a,b)/(|a||b|), or 0 when either norm is zero
// or the vectors differ in length.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA <= 0 || normB <= 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// KeywordRetriever is the no-embedding fallback: it scores stored entries by
// word overlap between the query and the entry's source text. Same ranking
// and truncation contract as the vector retriever.
type KeywordRetriever struct {
	store EmbeddingScanner
}

func NewKeywordRetriever(store EmbeddingScanner) *KeywordRetriever {
	return &KeywordRetriever{store: store}
}

func (r *KeywordRetriever) Search(ctx context.Context, query string, topK int) ([]Result, error) {
	if topK <= 0 {
		return nil, nil
	}

	queryWords := tokenize(query)
	if len(queryWords) == 0 {
		return nil, nil
	}

	entries, err := r.store.ScanAll()
	if err != nil {
		return nil, err
	}

	var results []Result
	for _, entry := range entries {
		contentWords := tokenize(entry.SourceText)
		common := 0
		for word := range queryWords {
			if _, ok := contentWords[word]; ok {
				common++
			}
		}
		if common == 0 {
			continue
		}
		results = append(results, Result{
			Entry: entry,
			Score: float64(common) / float64(max(len(queryWords), 1)),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

func tokenize(text string) map[string]struct{} {
	words := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}
	return set
}
