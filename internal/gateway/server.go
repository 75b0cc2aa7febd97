// Package gateway serves the repolens HTTP surface: health, tool discovery,
// and tool invocation over plain POST or a websocket stream.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/repolens/repolens/internal/schema"
	"github.com/repolens/repolens/internal/tools"
)

// Server is the repolens HTTP gateway.
type Server struct {
	registry *tools.Registry
	addr     string
}

// NewServer creates a gateway listening on port.
func NewServer(registry *tools.Registry, port int) *Server {
	return &Server{
		registry: registry,
		addr:     fmt.Sprintf(":%d", port),
	}
}

// Handler returns the full route tree with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /tools", s.handleTools)
	mux.HandleFunc("POST /tools/{name}", s.handleInvoke)
	mux.HandleFunc("GET /ws", s.handleWS)

	return withCORS(withRequestLog(mux))
}

// Start runs the server until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("gateway: listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("gateway: shutdown", "err", err)
		}
		slog.Info("gateway: stopped")
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleTools(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.registry.Descriptors())
}

// invokeRequest is the POST /tools/{name} body.
type invokeRequest struct {
	Arguments map[string]any `json:"arguments"`
}

func (s *Server) handleInvoke(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	// An absent body is an empty arguments object; malformed JSON is not.
	var req invokeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, schema.Errf(schema.KindInvalidInput, "invalid request body: %v", err))
		return
	}

	result, err := s.registry.Invoke(r.Context(), name, req.Arguments)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("gateway: encode response", "err", err)
	}
}

// writeError maps an error to its HTTP status and the uniform {"error": ...}
// body. Each kind gets a distinct status; nothing collapses into a blanket
// 500 except genuinely internal failures and the missing-credential case,
// which keeps its historical 500 and fixed message.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]any{"error": err.Error()})
}

func statusFor(err error) int {
	var toolErr *schema.ToolError
	if !errors.As(err, &toolErr) {
		return http.StatusInternalServerError
	}
	switch toolErr.Kind {
	case schema.KindNotFound:
		return http.StatusNotFound
	case schema.KindPermission:
		return http.StatusForbidden
	case schema.KindInvalidInput:
		return http.StatusBadRequest
	case schema.KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
