package reviewer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"reviewd/internal/services"
)

func completionBody(content string) map[string]any {
	return map[string]any{
		"choices": []any{
			map[string]any{
				"message": map[string]any{
					"content": content,
				},
			},
		},
	}
}

func TestClientReview(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method %s", r.Method)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test" {
			t.Fatalf("unexpected authorization header %q", auth)
		}
		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
			ResponseFormat map[string]string `json:"response_format"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Fatalf("unexpected messages: %+v", req.Messages)
		}
		if !strings.Contains(req.Messages[1].Content, "print(1)") {
			t.Fatalf("user prompt missing code: %q", req.Messages[1].Content)
		}
		if req.ResponseFormat["type"] != "json_object" {
			t.Fatalf("expected json response format, got %+v", req.ResponseFormat)
		}
		payload := completionBody(`{"overallScore":80,"issues":[],"suggestions":[],"security":[],"bestPractices":[],"summary":"ok"}`)
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			t.Fatalf("encode response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test", BaseURL: server.URL, Model: "demo-model"})
	result, err := client.Review(context.Background(), "print(1)", "python")
	if err != nil {
		t.Fatalf("Review returned error: %v", err)
	}
	if result.OverallScore != 80 || result.Summary != "ok" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestClientReviewCodeFence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := completionBody("```json\n{\"overallScore\":72,\"issues\":[],\"suggestions\":[],\"security\":[],\"bestPractices\":[],\"summary\":\"fenced\"}\n```")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			t.Fatalf("encode response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test", BaseURL: server.URL, Model: "demo-model"})
	result, err := client.Review(context.Background(), "x = 1", "python")
	if err != nil {
		t.Fatalf("Review returned error: %v", err)
	}
	if result.OverallScore != 72 || result.Summary != "fenced" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestClientReviewHTTPFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test", BaseURL: server.URL, Model: "demo"})
	_, err := client.Review(context.Background(), "x = 1", "python")
	if err == nil {
		t.Fatal("expected error on upstream failure")
	}
	if !errors.Is(err, services.ErrExternalService) {
		t.Fatalf("expected external service classification, got %v", err)
	}
}

func TestClientReviewNoRetry(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test", BaseURL: server.URL, Model: "demo"})
	if _, err := client.Review(context.Background(), "x = 1", "python"); err == nil {
		t.Fatal("expected error")
	}
	if calls.Load() != 1 {
		t.Fatalf("expected exactly one upstream call, got %d", calls.Load())
	}
}

func TestClientReviewUnparseablePayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := completionBody("this is not json at all")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			t.Fatalf("encode response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test", BaseURL: server.URL, Model: "demo"})
	_, err := client.Review(context.Background(), "x = 1", "python")
	if !errors.Is(err, services.ErrExternalService) {
		t.Fatalf("expected external service error, got %v", err)
	}
}

func TestClientReviewInvalidStructureRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := completionBody(`{"overallScore":180,"issues":[],"suggestions":[],"security":[],"bestPractices":[],"summary":"broken"}`)
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			t.Fatalf("encode response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test", BaseURL: server.URL, Model: "demo"})
	_, err := client.Review(context.Background(), "x = 1", "python")
	if !errors.Is(err, services.ErrExternalService) {
		t.Fatalf("expected external service error for invalid structure, got %v", err)
	}
}

func TestClientReviewRequiresAPIKey(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://127.0.0.1:1", Model: "demo"})
	_, err := client.Review(context.Background(), "x = 1", "python")
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestDecodeModelJSONVariants(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"bare", `{"ok":true}`},
		{"fenced", "```json\n{\"ok\":true}\n```"},
		{"fenced no language", "```\n{\"ok\":true}\n```"},
		{"prose wrapped", "Here is the review:\n{\"ok\":true}\nHope that helps."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var parsed struct {
				OK bool `json:"ok"`
			}
			if err := DecodeModelJSON(tc.payload, &parsed); err != nil {
				t.Fatalf("DecodeModelJSON failed: %v", err)
			}
			if !parsed.OK {
				t.Fatal("expected ok=true")
			}
		})
	}
}

func TestDecodeModelJSONEmpty(t *testing.T) {
	var target any
	if err := DecodeModelJSON("   ", &target); err == nil {
		t.Fatal("expected error for empty payload")
	}
}
