package tools

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/time/rate"

	"github.com/repolens/repolens/internal/github"
	"github.com/repolens/repolens/internal/schema"
)

// stubUpstream points a client at a stub GitHub API and counts requests.
func stubUpstream(t *testing.T, handler http.HandlerFunc) (*github.Client, *int) {
	t.Helper()
	calls := new(int)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	client := github.NewClient("test-token",
		github.WithBaseURL(srv.URL),
		github.WithLimiter(rate.NewLimiter(rate.Inf, 1)))
	return client, calls
}

// upstreamFailure replies with status and a GitHub-shaped error body.
func upstreamFailure(status int, message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]string{"message": message})
	}
}

// wantToolError asserts err is a ToolError with the given kind and message.
func wantToolError(t *testing.T, err error, kind schema.ErrorKind, message string) {
	t.Helper()
	var toolErr *schema.ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("expected ToolError, got %v", err)
	}
	if toolErr.Kind != kind {
		t.Errorf("expected kind %q, got %q", kind, toolErr.Kind)
	}
	if toolErr.Message != message {
		t.Errorf("expected message %q, got %q", message, toolErr.Message)
	}
}
