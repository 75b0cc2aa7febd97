package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/repolens/repolens/internal/github"
	"github.com/repolens/repolens/internal/schema"
)

func TestInvoke_UnknownTool(t *testing.T) {
	client, _ := stubUpstream(t, upstreamFailure(500, "should not be called"))
	reg, err := Default(client)
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}

	_, err = reg.Invoke(context.Background(), "no_such_tool", nil)
	wantToolError(t, err, schema.KindNotFound, schema.MsgToolNotFound)
}

func TestInvoke_NoCredential(t *testing.T) {
	reg, err := Default(nil)
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}

	_, err = reg.Invoke(context.Background(), string(ToolRepositoryInfo),
		map[string]any{"owner": "octocat", "repo": "hello"})
	wantToolError(t, err, schema.KindUnavailable, "GitHub token not configured")
}

func TestInvoke_MissingRequiredArgument(t *testing.T) {
	client, calls := stubUpstream(t, upstreamFailure(500, "should not be called"))
	reg, err := Default(client)
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}

	_, err = reg.Invoke(context.Background(), string(ToolRepositoryInfo),
		map[string]any{"owner": "octocat"})
	wantToolError(t, err, schema.KindInvalidInput, "Missing required argument: repo")

	// Empty strings do not count as present.
	_, err = reg.Invoke(context.Background(), string(ToolRepositoryInfo),
		map[string]any{"owner": "octocat", "repo": ""})
	wantToolError(t, err, schema.KindInvalidInput, "Missing required argument: repo")

	if *calls != 0 {
		t.Errorf("expected no upstream calls, got %d", *calls)
	}
}

func TestDefault_AllCanonicalToolsPresent(t *testing.T) {
	reg, err := Default(nil)
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	for _, name := range CanonicalTools {
		if reg.GetTool(name) == nil {
			t.Errorf("tool %s missing from default registry", name)
		}
	}
	if got := len(reg.Descriptors()); got != len(CanonicalTools) {
		t.Errorf("expected %d descriptors, got %d", len(CanonicalTools), got)
	}
}

func TestDescriptors_SortedWithSchemas(t *testing.T) {
	reg, err := Default(nil)
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	descriptors := reg.Descriptors()
	for i := 1; i < len(descriptors); i++ {
		if descriptors[i-1].Name >= descriptors[i].Name {
			t.Errorf("descriptors not sorted: %q before %q", descriptors[i-1].Name, descriptors[i].Name)
		}
	}
	for _, d := range descriptors {
		var s map[string]any
		if err := json.Unmarshal(d.InputSchema, &s); err != nil {
			t.Errorf("tool %s: schema does not parse: %v", d.Name, err)
		}
	}
}

// badSchemaTool declares required parameters its schema never defines.
type badSchemaTool struct{}

func (badSchemaTool) Name() string        { return "bad" }
func (badSchemaTool) Description() string { return "broken on purpose" }
func (badSchemaTool) Parameters() json.RawMessage {
	return json.RawMessage(`{"type": "object", "properties": {}, "required": ["ghost"]}`)
}
func (badSchemaTool) Execute(context.Context, map[string]any) (any, error) { return nil, nil }

func TestBuild_RejectsUndeclaredRequired(t *testing.T) {
	_, err := NewRegistryBuilder(nil).WithTool(badSchemaTool{}).Build()
	if err == nil {
		t.Fatal("expected build error for undeclared required parameter")
	}
}

// malformedSchemaTool returns unparsable schema bytes.
type malformedSchemaTool struct{}

func (malformedSchemaTool) Name() string                { return "malformed" }
func (malformedSchemaTool) Description() string         { return "broken on purpose" }
func (malformedSchemaTool) Parameters() json.RawMessage { return json.RawMessage("{not json") }
func (malformedSchemaTool) Execute(context.Context, map[string]any) (any, error) {
	return nil, nil
}

func TestBuild_RejectsMalformedSchema(t *testing.T) {
	_, err := NewRegistryBuilder(nil).WithTool(malformedSchemaTool{}).Build()
	if err == nil {
		t.Fatal("expected build error for malformed schema")
	}
}

// panicTool blows up during Execute.
type panicTool struct{}

func (panicTool) Name() string                { return "panic_tool" }
func (panicTool) Description() string         { return "panics on purpose" }
func (panicTool) Parameters() json.RawMessage { return json.RawMessage(`{"type": "object"}`) }
func (panicTool) Execute(context.Context, map[string]any) (any, error) {
	panic("boom")
}

func TestInvoke_RecoversPanic(t *testing.T) {
	client := github.NewClient("test-token")
	reg, err := NewRegistryBuilder(client).WithTool(panicTool{}).Build()
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}

	_, err = reg.Invoke(context.Background(), "panic_tool", nil)
	wantToolError(t, err, schema.KindInternal, "boom")
}

func TestUpstreamError_Mapping(t *testing.T) {
	cases := []struct {
		status  int
		message string
		kind    schema.ErrorKind
		want    string
	}{
		{404, "Not Found", schema.KindNotFound, "Resource not found"},
		{403, "API rate limit exceeded", schema.KindPermission, "Rate limit exceeded or insufficient permissions"},
		{422, "Validation Failed", schema.KindUpstream, "Validation Failed"},
		{500, "Server Error", schema.KindUpstream, "Server Error"},
	}
	for _, tc := range cases {
		err := upstreamError(&github.APIError{StatusCode: tc.status, Message: tc.message})
		wantToolError(t, err, tc.kind, tc.want)
	}
}

// Every adapter shares the same failure path; cover it across the whole set.
func TestAllAdapters_SharedFailureSemantics(t *testing.T) {
	args := map[string]any{
		"owner": "octocat", "repo": "hello",
		"path": "main.go", "query": "needle",
	}

	for _, tc := range []struct {
		name   string
		status int
		want   string
		kind   schema.ErrorKind
	}{
		{"not found", http.StatusNotFound, "Resource not found", schema.KindNotFound},
		{"forbidden", http.StatusForbidden, "Rate limit exceeded or insufficient permissions", schema.KindPermission},
	} {
		client, _ := stubUpstream(t, upstreamFailure(tc.status, "upstream says no"))
		reg, err := Default(client)
		if err != nil {
			t.Fatalf("build registry: %v", err)
		}
		for _, name := range CanonicalTools {
			_, err := reg.Invoke(context.Background(), string(name), args)
			wantToolError(t, err, tc.kind, tc.want)
		}
	}
}
