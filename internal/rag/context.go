package rag

import (
	"log"
	"strings"
)

// ContextBuilder assembles the prompt context from retrieval results.
// Results below the relevance floor are presumed noise and dropped; results
// whose record no longer resolves are skipped silently, because stale
// embeddings are tolerated until the next re-index.
type ContextBuilder struct {
	resolver ContentResolver
	floor    float64
}

func NewContextBuilder(resolver ContentResolver, floor float64) *ContextBuilder {
	return &ContextBuilder{resolver: resolver, floor: floor}
}

// Build renders the surviving results as blank-line-separated blocks.
func (b *ContextBuilder) Build(results []Result) string {
	var parts []string
	for _, result := range results {
		if result.Score < b.floor {
			continue
		}

		content, err := b.resolver.Resolve(result.Entry.Kind, result.Entry.RefID)
		if err != nil {
			log.Printf("resolve content %s:%s failed: %v", result.Entry.Kind, result.Entry.RefID, err)
			continue
		}
		if content == nil {
			continue
		}
		parts = append(parts, FormatForContext(content))
	}
	return strings.Join(parts, "\n\n")
}
