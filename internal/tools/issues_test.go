package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"reflect"
	"testing"

	"github.com/repolens/repolens/internal/schema"
)

func TestListIssues_Reshaping(t *testing.T) {
	client, _ := stubUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{{
			"number":     7,
			"title":      "Crash on empty input",
			"body":       "stack trace attached",
			"state":      "open",
			"user":       map[string]any{"login": "reporter"},
			"created_at": "2024-01-01T00:00:00Z",
			"updated_at": "2024-01-02T00:00:00Z",
			"labels": []map[string]any{
				{"name": "bug"},
				{"name": "help wanted"},
			},
			"assignees": []map[string]any{{"login": "fixer"}},
		}})
	})

	tool := NewListIssuesTool(client)
	result, err := tool.Execute(context.Background(), map[string]any{
		"owner": "octocat", "repo": "hello",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	issues := result.([]map[string]any)
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}
	issue := issues[0]
	if issue["number"] != 7 {
		t.Errorf("unexpected number: %v", issue["number"])
	}
	if issue["author"] != "reporter" {
		t.Errorf("unexpected author: %v", issue["author"])
	}
	if !reflect.DeepEqual(issue["labels"], []string{"bug", "help wanted"}) {
		t.Errorf("expected ordered label names, got %v", issue["labels"])
	}
	if !reflect.DeepEqual(issue["assignees"], []string{"fixer"}) {
		t.Errorf("expected one assignee login, got %v", issue["assignees"])
	}
}

func TestListIssues_DefaultsAndFilters(t *testing.T) {
	var state, perPage string
	client, _ := stubUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		state = r.URL.Query().Get("state")
		perPage = r.URL.Query().Get("per_page")
		json.NewEncoder(w).Encode([]any{})
	})

	tool := NewListIssuesTool(client)

	if _, err := tool.Execute(context.Background(), map[string]any{
		"owner": "octocat", "repo": "hello",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state != "open" || perPage != "30" {
		t.Errorf("expected defaults state=open per_page=30, got %q / %q", state, perPage)
	}

	if _, err := tool.Execute(context.Background(), map[string]any{
		"owner": "octocat", "repo": "hello", "state": "closed", "per_page": 5,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state != "closed" || perPage != "5" {
		t.Errorf("expected state=closed per_page=5, got %q / %q", state, perPage)
	}
}

func TestListIssues_InvalidState(t *testing.T) {
	client, calls := stubUpstream(t, upstreamFailure(500, "should not be called"))

	tool := NewListIssuesTool(client)
	_, err := tool.Execute(context.Background(), map[string]any{
		"owner": "octocat", "repo": "hello", "state": "stale",
	})
	wantToolError(t, err, schema.KindInvalidInput, "Invalid state: stale")
	if *calls != 0 {
		t.Errorf("expected no upstream calls, got %d", *calls)
	}
}
