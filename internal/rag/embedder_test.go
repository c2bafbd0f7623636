package rag

import (
	"context"
	"testing"

	"portfolio-chat/internal/ai"
)

func TestHashEmbedderDeterministic(t *testing.T) {
	e := NewHashEmbedder()

	first, err := e.Embed(context.Background(), "Tell me about your projects")
	if err != nil {
		t.Fatalf("embed failed: %v", err)
	}
	second, err := e.Embed(context.Background(), "tell me about your PROJECTS")
	if err != nil {
		t.Fatalf("embed failed: %v", err)
	}

	if len(first) != hashEmbeddingLength {
		t.Fatalf("vector length = %d, want %d", len(first), hashEmbeddingLength)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("case-insensitive determinism broken at dim %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestHashEmbedderDistinguishesTexts(t *testing.T) {
	e := NewHashEmbedder()

	a, _ := e.Embed(context.Background(), "mobile app")
	b, _ := e.Embed(context.Background(), "logo design")

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different texts produced identical vectors")
	}
}

func TestHashEmbedderModelTag(t *testing.T) {
	if tag := NewHashEmbedder().ModelTag(); tag != "fallback" {
		t.Fatalf("model tag = %q, want fallback", tag)
	}
}

func TestOpenAIEmbedderWithoutKey(t *testing.T) {
	e := NewOpenAIEmbedder(ai.NewOpenAICompatibleClient(), ai.EmbeddingConfig{})

	_, err := e.Embed(context.Background(), "anything")
	if err != ErrEmbedderUnavailable {
		t.Fatalf("err = %v, want ErrEmbedderUnavailable", err)
	}
}
