package rag

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"portfolio-chat/internal/ai"
)

var (
	// ErrEmbedderUnavailable means no external endpoint is configured.
	ErrEmbedderUnavailable = errors.New("embedder not configured")
	// ErrEmbedderCallFailed wraps a network or API failure.
	ErrEmbedderCallFailed = errors.New("embedding call failed")
)

// OpenAIEmbedder embeds text through an OpenAI-compatible API.
type OpenAIEmbedder struct {
	client *ai.OpenAICompatibleClient
	cfg    ai.EmbeddingConfig
}

func NewOpenAIEmbedder(client *ai.OpenAICompatibleClient, cfg ai.EmbeddingConfig) *OpenAIEmbedder {
	return &OpenAIEmbedder{client: client, cfg: cfg}
}

func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if e.cfg.APIKey == "" {
		return nil, ErrEmbedderUnavailable
	}
	vec, err := e.client.Embed(ctx, e.cfg, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmbedderCallFailed, err)
	}
	return vec, nil
}

func (e *OpenAIEmbedder) ModelTag() string {
	return e.cfg.Model
}

// hashEmbeddingLength is the fallback vector length: one dimension per hex
// digit of an md5 digest.
const hashEmbeddingLength = 32

// HashEmbedder derives a deterministic pseudo-vector from the text's
// lowercase bytes. The vector carries no semantic meaning; it exists so the
// pipeline stays runnable without any external service. Scores computed from
// it only exercise the machinery, they do not rank meaningfully.
type HashEmbedder struct{}

func NewHashEmbedder() *HashEmbedder {
	return &HashEmbedder{}
}

func (e *HashEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	sum := md5.Sum([]byte(strings.ToLower(text)))
	digest := hex.EncodeToString(sum[:])

	vec := make([]float32, hashEmbeddingLength)
	for i := 0; i < hashEmbeddingLength; i++ {
		vec[i] = float32(digest[i])
	}
	return vec, nil
}

func (e *HashEmbedder) ModelTag() string {
	return "fallback"
}
