package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCompleteParsesChoicesAndUsage(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")

		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body["model"] != "gpt-4o-mini" {
			t.Errorf("model = %v", body["model"])
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "Hi, I'm the designer."}},
			},
			"usage": map[string]int{"total_tokens": 57},
		})
	}))
	defer server.Close()

	client := NewOpenAICompatibleClientWithHTTP(server.Client())
	result, err := client.Complete(context.Background(), ChatConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Model:   "gpt-4o-mini",
	}, []ChatMessage{{Role: "user", Content: "hello"}})
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	if result.Content != "Hi, I'm the designer." {
		t.Fatalf("content = %q", result.Content)
	}
	if result.TokensUsed != 57 {
		t.Fatalf("tokens = %d, want 57", result.TokensUsed)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("auth header = %q", gotAuth)
	}
}

func TestCompleteNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "rate limited"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewOpenAICompatibleClientWithHTTP(server.Client())
	_, err := client.Complete(context.Background(), ChatConfig{
		BaseURL: server.URL,
		APIKey:  "k",
		Model:   "m",
	}, []ChatMessage{{Role: "user", Content: "hello"}})
	if err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer server.Close()

	client := NewOpenAICompatibleClientWithHTTP(server.Client())
	_, err := client.Complete(context.Background(), ChatConfig{
		BaseURL: server.URL,
		APIKey:  "k",
		Model:   "m",
	}, []ChatMessage{{Role: "user", Content: "hello"}})
	if err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestEmbedParsesVector(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/embeddings" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{
				{"embedding": []float32{0.1, 0.2, 0.3}},
			},
		})
	}))
	defer server.Close()

	client := NewOpenAICompatibleClientWithHTTP(server.Client())
	vec, err := client.Embed(context.Background(), EmbeddingConfig{
		BaseURL: server.URL,
		APIKey:  "k",
		Model:   "text-embedding-3-small",
	}, "some text")
	if err != nil {
		t.Fatalf("embed failed: %v", err)
	}
	if len(vec) != 3 || vec[1] != 0.2 {
		t.Fatalf("vector = %v", vec)
	}
}

func TestEmbedRejectsEmptyInput(t *testing.T) {
	client := NewOpenAICompatibleClient()
	if _, err := client.Embed(context.Background(), EmbeddingConfig{BaseURL: "http://unused", Model: "m"}, "   "); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestEmbedEmptyData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"data": []interface{}{}})
	}))
	defer server.Close()

	client := NewOpenAICompatibleClientWithHTTP(server.Client())
	if _, err := client.Embed(context.Background(), EmbeddingConfig{BaseURL: server.URL, APIKey: "k", Model: "m"}, "text"); err == nil {
		t.Fatal("expected error for empty data")
	}
}
