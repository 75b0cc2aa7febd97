package tools

import (
	"fmt"

	"github.com/repolens/repolens/internal/github"
	"github.com/repolens/repolens/internal/schema"
)

// RegistryBuilder accumulates tools during the construction phase.
// Call Build() to produce an immutable Registry ready for use.
type RegistryBuilder struct {
	client *github.Client
	tools  map[string]schema.Tool
}

// NewRegistryBuilder returns a fresh RegistryBuilder. client may be nil when
// no credential is configured; the built registry then serves discovery only
// and every Invoke fails Unavailable.
func NewRegistryBuilder(client *github.Client) *RegistryBuilder {
	return &RegistryBuilder{client: client, tools: make(map[string]schema.Tool)}
}

// WithTool adds a tool and returns the builder, enabling chaining.
func (b *RegistryBuilder) WithTool(tool schema.Tool) *RegistryBuilder {
	b.tools[tool.Name()] = tool

	return b
}

// Build produces an immutable Registry from the accumulated tools. Every
// tool's parameter schema must parse and its required list must be backed by
// declared properties, so a schema defect fails at startup rather than on a
// live request.
func (b *RegistryBuilder) Build() (*Registry, error) {
	tools := make(map[string]schema.Tool, len(b.tools))
	schemas := make(map[string]toolSchema, len(b.tools))
	for name, t := range b.tools {
		parsed, err := parseToolSchema(t)
		if err != nil {
			return nil, err
		}
		tools[name] = t
		schemas[name] = parsed
	}
	return &Registry{tools: tools, schemas: schemas, client: b.client}, nil
}

// Default builds the registry with the full canonical tool set.
func Default(client *github.Client) (*Registry, error) {
	reg, err := NewRegistryBuilder(client).
		WithTool(NewRepositoryInfoTool(client)).
		WithTool(NewListIssuesTool(client)).
		WithTool(NewFileContentsTool(client)).
		WithTool(NewSearchFilesTool(client)).
		WithTool(NewSearchCodeTool(client)).
		WithTool(NewCommitsTool(client)).
		Build()
	if err != nil {
		return nil, err
	}
	for _, name := range CanonicalTools {
		if reg.GetTool(name) == nil {
			return nil, fmt.Errorf("canonical tool %s not registered", name)
		}
	}
	return reg, nil
}
