package analyzer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOpenAIAnalyzerGenerate(t *testing.T) {
	var gotReq struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "A short summary."}, "finish_reason": "stop"}]
		}`))
	}))
	defer srv.Close()

	a := NewOpenAIAnalyzer("test-key", "gpt-4o-mini", srv.URL)

	got, err := a.Generate(context.Background(), "Summarize this document", "Invoice #1042", testParams)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if got != "A short summary." {
		t.Errorf("Generate = %q", got)
	}

	if gotReq.Model != "gpt-4o-mini" {
		t.Errorf("request model = %q", gotReq.Model)
	}
	if len(gotReq.Messages) != 2 {
		t.Fatalf("request has %d messages, want 2", len(gotReq.Messages))
	}
	if gotReq.Messages[0].Role != "system" || gotReq.Messages[0].Content != SystemPrompt {
		t.Errorf("unexpected system message: %+v", gotReq.Messages[0])
	}
	user := gotReq.Messages[1]
	if user.Role != "user" {
		t.Errorf("second message role = %q, want user", user.Role)
	}
	if !strings.Contains(user.Content, "Summarize this document") || !strings.Contains(user.Content, "Invoice #1042") {
		t.Errorf("user message should combine instruction and text, got %q", user.Content)
	}
}

func TestOpenAIAnalyzerGenerateError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limited", "type": "requests"}}`))
	}))
	defer srv.Close()

	a := NewOpenAIAnalyzer("test-key", "gpt-4o-mini", srv.URL)

	if _, err := a.Generate(context.Background(), "Summarize", "text", testParams); err == nil {
		t.Error("expected error from provider failure")
	}
}

func TestOpenAIAnalyzerModel(t *testing.T) {
	a := NewOpenAIAnalyzer("key", "gpt-4o-mini", "")
	if a.Model() != "gpt-4o-mini" {
		t.Errorf("Model = %q", a.Model())
	}
}
