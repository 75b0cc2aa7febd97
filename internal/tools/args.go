package tools

import (
	"encoding/json"
	"errors"

	"github.com/repolens/repolens/internal/github"
	"github.com/repolens/repolens/internal/schema"
)

// decodeArgs round-trips the loose argument map through JSON into a typed
// per-tool parameter struct. Unknown keys are ignored; type mismatches fail
// InvalidInput.
func decodeArgs(args map[string]any, v any) error {
	data, err := json.Marshal(args)
	if err != nil {
		return schema.Errf(schema.KindInvalidInput, "invalid arguments: %v", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return schema.Errf(schema.KindInvalidInput, "invalid arguments: %v", err)
	}
	return nil
}

// upstreamError reduces an upstream failure to the shared error taxonomy:
// 404 and 403 collapse to fixed messages, anything else passes the raw
// upstream message through.
func upstreamError(err error) error {
	var apiErr *github.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 404:
			return &schema.ToolError{Kind: schema.KindNotFound, Message: schema.MsgNotFound}
		case 403:
			return &schema.ToolError{Kind: schema.KindPermission, Message: schema.MsgRateLimited}
		default:
			return &schema.ToolError{Kind: schema.KindUpstream, Message: apiErr.Message}
		}
	}
	return &schema.ToolError{Kind: schema.KindUpstream, Message: err.Error()}
}
