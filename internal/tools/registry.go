// Package tools holds the gateway's tool registry and the per-tool adapters
// that call the GitHub API and reshape its responses.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/repolens/repolens/internal/github"
	"github.com/repolens/repolens/internal/schema"
)

// ToolName is the canonical name of a built-in tool.
type ToolName string

const (
	ToolRepositoryInfo ToolName = "get_repository_info"
	ToolListIssues     ToolName = "list_issues"
	ToolFileContents   ToolName = "get_file_contents"
	ToolSearchFiles    ToolName = "search_files"
	ToolSearchCode     ToolName = "search_code"
	ToolCommits        ToolName = "get_commits"
)

// CanonicalTools lists every tool the gateway must expose. Build fails when
// one is missing, so an unknown name can only come from the wire.
var CanonicalTools = []ToolName{
	ToolRepositoryInfo,
	ToolListIssues,
	ToolFileContents,
	ToolSearchFiles,
	ToolSearchCode,
	ToolCommits,
}

// Registry holds the set of named tools plus the shared upstream client.
// It is immutable after Build.
type Registry struct {
	tools   map[string]schema.Tool
	schemas map[string]toolSchema
	client  *github.Client
}

// GetTool returns the tool with the given name, or nil.
func (r *Registry) GetTool(name ToolName) schema.Tool {
	return r.tools[string(name)]
}

// Descriptors returns the discovery view of every tool, sorted by name.
func (r *Registry) Descriptors() []schema.Descriptor {
	list := make([]schema.Descriptor, 0, len(r.tools))
	for _, t := range r.tools {
		list = append(list, schema.Descriptor{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: t.Parameters(),
		})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// Configured reports whether an upstream credential is available.
func (r *Registry) Configured() bool { return r.client != nil }

// Invoke dispatches one tool call. Unknown names, a missing credential, and
// declared-required arguments are all checked before the adapter runs; an
// adapter panic is recovered into an internal ToolError.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]any) (result any, err error) {
	tool, ok := r.tools[name]
	if !ok {
		return nil, &schema.ToolError{Kind: schema.KindNotFound, Message: schema.MsgToolNotFound}
	}
	if r.client == nil {
		return nil, &schema.ToolError{Kind: schema.KindUnavailable, Message: schema.MsgNoToken}
	}
	if args == nil {
		args = map[string]any{}
	}
	if err := r.schemas[name].validate(args); err != nil {
		return nil, err
	}

	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("tools: adapter panic", "tool", name, "panic", rec)
			err = schema.Errf(schema.KindInternal, "%v", rec)
			result = nil
		}
	}()

	return tool.Execute(ctx, args)
}

// toolSchema is the parsed slice of a tool's JSON Schema the registry
// enforces at dispatch time.
type toolSchema struct {
	Properties map[string]json.RawMessage `json:"properties"`
	Required   []string                   `json:"required"`
}

// validate checks that every declared-required argument is present and, for
// strings, non-empty.
func (s toolSchema) validate(args map[string]any) error {
	for _, key := range s.Required {
		v, ok := args[key]
		if !ok {
			return schema.Errf(schema.KindInvalidInput, "Missing required argument: %s", key)
		}
		if str, isStr := v.(string); isStr && str == "" {
			return schema.Errf(schema.KindInvalidInput, "Missing required argument: %s", key)
		}
	}
	return nil
}

func parseToolSchema(t schema.Tool) (toolSchema, error) {
	var s toolSchema
	if err := json.Unmarshal(t.Parameters(), &s); err != nil {
		return s, fmt.Errorf("tool %s: invalid parameter schema: %w", t.Name(), err)
	}
	for _, key := range s.Required {
		if _, ok := s.Properties[key]; !ok {
			return s, fmt.Errorf("tool %s: required parameter %q not declared in properties", t.Name(), key)
		}
	}
	return s, nil
}
