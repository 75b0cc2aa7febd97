package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestRepositoryInfo_Reshaping(t *testing.T) {
	client, _ := stubUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/octocat/hello" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"name":              "hello",
			"full_name":         "octocat/hello",
			"description":       "demo repo",
			"language":          "Go",
			"stargazers_count":  42,
			"forks_count":       7,
			"open_issues_count": 3,
			"created_at":        "2020-01-01T00:00:00Z",
			"updated_at":        "2024-06-01T00:00:00Z",
			"clone_url":         "https://example.test/octocat/hello.git",
			"default_branch":    "main",
		})
	})

	tool := NewRepositoryInfoTool(client)
	result, err := tool.Execute(context.Background(), map[string]any{
		"owner": "octocat", "repo": "hello",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := result.(map[string]any)
	want := map[string]any{
		"name":           "hello",
		"full_name":      "octocat/hello",
		"description":    "demo repo",
		"language":       "Go",
		"stars":          42,
		"forks":          7,
		"open_issues":    3,
		"created_at":     "2020-01-01T00:00:00Z",
		"updated_at":     "2024-06-01T00:00:00Z",
		"clone_url":      "https://example.test/octocat/hello.git",
		"default_branch": "main",
	}
	for k, v := range want {
		if out[k] != v {
			t.Errorf("field %s: expected %v, got %v", k, v, out[k])
		}
	}
}
