// internal/summarize/ollama_test.go
package summarize_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dsablic/ghrecap/internal/summarize"
)

func TestSummarize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/generate" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}

		var req struct {
			Model  string `json:"model"`
			Prompt string `json:"prompt"`
			Stream bool   `json:"stream"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "llama3.1:latest" {
			t.Errorf("unexpected model %q", req.Model)
		}
		if req.Stream {
			t.Error("stream must be false")
		}
		if !strings.Contains(req.Prompt, "# GitHub Activity Summary") {
			t.Error("prompt should embed the report content")
		}

		json.NewEncoder(w).Encode(map[string]string{"response": "A fine week of work."})
	}))
	defer server.Close()

	client := summarize.New(server.URL, "", nil)
	got, err := client.Summarize(context.Background(), "# GitHub Activity Summary\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "A fine week of work." {
		t.Errorf("unexpected summary %q", got)
	}
}

func TestSummarizeServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := summarize.New(server.URL, "", nil)
	if _, err := client.Summarize(context.Background(), "content"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestSummarizeConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := summarize.New(server.URL, "", nil)
	if _, err := client.Summarize(context.Background(), "content"); err == nil {
		t.Fatal("expected error when Ollama is unreachable")
	}
}

func TestSummarizeEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer server.Close()

	client := summarize.New(server.URL, "", nil)
	got, err := client.Summarize(context.Background(), "content")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "No summary generated." {
		t.Errorf("unexpected fallback %q", got)
	}
}

func TestReadReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.md")
	if err := os.WriteFile(path, []byte("# GitHub Activity Summary\n"), 0644); err != nil {
		t.Fatal(err)
	}

	content, err := summarize.ReadReport(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(content, "# GitHub Activity Summary") {
		t.Errorf("unexpected content %q", content)
	}

	if _, err := summarize.ReadReport(filepath.Join(t.TempDir(), "missing.md")); err == nil {
		t.Error("expected error for a missing file")
	}
}
