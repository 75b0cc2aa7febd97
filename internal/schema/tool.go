// Package schema contains the core contracts shared across repolens packages.
// Concrete implementations live in their respective packages; this package is
// the single canonical source of truth for the tool and error definitions.
package schema

import (
	"context"
	"encoding/json"
)

// Tool is the interface every gateway tool must satisfy. Each tool is backed
// by exactly one upstream API call; Execute returns the reshaped result as a
// JSON-marshalable value.
type Tool interface {
	Name() string
	Description() string
	// Parameters returns the JSON Schema (as raw JSON bytes) for this tool's arguments.
	Parameters() json.RawMessage
	Execute(ctx context.Context, args map[string]any) (any, error)
}

// Descriptor is the discovery-endpoint view of a tool.
type Descriptor struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
}
