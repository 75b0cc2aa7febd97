package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/repolens/repolens/internal/schema"
)

func TestFileContents_DecodesBase64(t *testing.T) {
	client, _ := stubUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"type": "file", "name": "hello.txt", "path": "docs/hello.txt",
			"size": 5, "sha": "abc123",
			"content": "aGVsbG8=", "encoding": "base64",
		})
	})

	tool := NewFileContentsTool(client)
	result, err := tool.Execute(context.Background(), map[string]any{
		"owner": "octocat", "repo": "hello", "path": "docs/hello.txt",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := result.(map[string]any)
	if out["content"] != "hello" {
		t.Errorf("expected decoded content %q, got %q", "hello", out["content"])
	}
	if out["name"] != "hello.txt" || out["path"] != "docs/hello.txt" {
		t.Errorf("unexpected name/path: %v / %v", out["name"], out["path"])
	}
	if out["sha"] != "abc123" {
		t.Errorf("unexpected sha: %v", out["sha"])
	}
	if out["size"] != 5 {
		t.Errorf("unexpected size: %v", out["size"])
	}
}

func TestFileContents_DirectoryIsInvalidInput(t *testing.T) {
	client, calls := stubUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{"type": "file", "name": "a.go"},
			{"type": "file", "name": "b.go"},
		})
	})

	tool := NewFileContentsTool(client)
	_, err := tool.Execute(context.Background(), map[string]any{
		"owner": "octocat", "repo": "hello", "path": "src",
	})
	wantToolError(t, err, schema.KindInvalidInput, "Path is not a file")

	if *calls != 1 {
		t.Errorf("expected exactly one upstream call, got %d", *calls)
	}
}

func TestFileContents_DefaultRef(t *testing.T) {
	var ref string
	client, _ := stubUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		ref = r.URL.Query().Get("ref")
		json.NewEncoder(w).Encode(map[string]any{
			"type": "file", "name": "f", "content": "", "encoding": "base64",
		})
	})

	tool := NewFileContentsTool(client)
	if _, err := tool.Execute(context.Background(), map[string]any{
		"owner": "octocat", "repo": "hello", "path": "f",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref != "main" {
		t.Errorf("expected default ref main, got %q", ref)
	}
}
