package schema

import "fmt"

// ErrorKind classifies a tool failure. The gateway maps each kind to a
// distinct HTTP status; no failure surfaces as an unhandled fault.
type ErrorKind string

const (
	// KindNotFound covers unknown tool names and upstream 404s.
	KindNotFound ErrorKind = "not_found"
	// KindPermission covers upstream 403s (rate limit or insufficient scope).
	KindPermission ErrorKind = "permission"
	// KindInvalidInput covers argument violations detected before or during
	// adaptation, such as requesting file contents on a directory.
	KindInvalidInput ErrorKind = "invalid_input"
	// KindUnavailable means the upstream client has no credential configured.
	KindUnavailable ErrorKind = "unavailable"
	// KindUpstream covers any other upstream failure; the raw upstream
	// message passes through verbatim.
	KindUpstream ErrorKind = "upstream"
	// KindInternal covers unexpected adapter failures.
	KindInternal ErrorKind = "internal"
)

// Fixed user-visible messages shared by all adapters.
const (
	MsgToolNotFound = "Tool not found"
	MsgNotFound     = "Resource not found"
	MsgRateLimited  = "Rate limit exceeded or insufficient permissions"
	MsgNoToken      = "GitHub token not configured"
	MsgNotAFile     = "Path is not a file"
)

// ToolError is the uniform failure type crossing the dispatch boundary.
type ToolError struct {
	Kind    ErrorKind
	Message string
}

func (e *ToolError) Error() string { return e.Message }

// Errf builds a ToolError with a formatted message.
func Errf(kind ErrorKind, format string, args ...any) *ToolError {
	return &ToolError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
