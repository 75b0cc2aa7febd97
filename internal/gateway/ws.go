package gateway

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/repolens/repolens/internal/schema"
)

var upgrader = websocket.Upgrader{
	// Same policy as the CORS middleware: any origin may call the gateway.
	CheckOrigin: func(*http.Request) bool { return true },
}

// wsFrame is one inbound websocket invocation.
type wsFrame struct {
	ID        string         `json:"id"`
	Tool      string         `json:"tool"`
	Arguments map[string]any `json:"arguments"`
}

// wsReply answers one frame; exactly one of Result and Error is set.
type wsReply struct {
	ID     string `json:"id,omitempty"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// handleWS upgrades the connection and dispatches each text frame like a
// POST /tools/{name} call, answering on the same socket.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("gateway: ws upgrade failed", "err", err)
		return
	}
	defer conn.Close()
	slog.Info("gateway: ws connected", "remote", r.RemoteAddr)

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Debug("gateway: ws read", "err", err)
			}
			return
		}

		var frame wsFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			if writeErr := conn.WriteJSON(wsReply{Error: "invalid frame: " + err.Error()}); writeErr != nil {
				return
			}
			continue
		}

		reply := wsReply{ID: frame.ID}
		result, err := s.registry.Invoke(r.Context(), frame.Tool, frame.Arguments)
		if err != nil {
			reply.Error = err.Error()
			var toolErr *schema.ToolError
			if errors.As(err, &toolErr) && toolErr.Kind == schema.KindInternal {
				slog.Error("gateway: ws invoke", "tool", frame.Tool, "err", err)
			}
		} else {
			reply.Result = result
		}
		if err := conn.WriteJSON(reply); err != nil {
			return
		}
	}
}
