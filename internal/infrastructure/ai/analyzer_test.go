package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/doeshing/cfai-go/internal/domain"
)

func testConfig(url string) domain.Config {
	return domain.Config{AI: domain.AISettings{
		APIURL: url,
		APIKey: "test-key",
		Model:  "gpt-4o",
	}}
}

func TestAnalyzerChat(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "all good"}},
			},
			"usage": map[string]any{"total_tokens": 123},
		})
	}))
	defer server.Close()

	analyzer, err := NewAnalyzer(testConfig(server.URL), server.Client())
	if err != nil {
		t.Fatalf("NewAnalyzer() error = %v", err)
	}

	result, err := analyzer.Chat(context.Background(), "system text", "user text")
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if result.Content != "all good" {
		t.Errorf("Content = %q", result.Content)
	}
	if result.TokensUsed != 123 {
		t.Errorf("TokensUsed = %d", result.TokensUsed)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	messages, _ := gotBody["messages"].([]any)
	if len(messages) != 2 {
		t.Fatalf("expected system+user messages, got %v", gotBody["messages"])
	}
}

func TestAnalyzerChatHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	analyzer, err := NewAnalyzer(testConfig(server.URL), server.Client())
	if err != nil {
		t.Fatalf("NewAnalyzer() error = %v", err)
	}

	if _, err := analyzer.Chat(context.Background(), "s", "u"); err == nil {
		t.Fatal("expected error on HTTP 429")
	}
}

func TestNewAnalyzerRequiresAPIKey(t *testing.T) {
	if _, err := NewAnalyzer(domain.Config{}, nil); err == nil {
		t.Fatal("expected error when AI API key is missing")
	}
}
