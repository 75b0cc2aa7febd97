package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/repolens/repolens/internal/github"
)

// searchPerPage is the fixed page size for both search tools.
const searchPerPage = 30

// searchParamSchema is shared by search_files and search_code.
const searchParamSchema = `{
	"type": "object",
	"properties": {
		"owner": {
			"type": "string",
			"description": "Repository owner"
		},
		"repo": {
			"type": "string",
			"description": "Repository name"
		},
		"query": {
			"type": "string",
			"description": "Search query"
		}
	},
	"required": ["owner", "repo", "query"]
}`

type searchParams struct {
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
	Query string `json:"query"`
}

// scopedQuery appends the repository qualifier to the caller's query so the
// search never leaves the requested repository.
func scopedQuery(p searchParams) string {
	return fmt.Sprintf("%s repo:%s/%s", p.Query, p.Owner, p.Repo)
}

func reshapeSearch(result *github.SearchResult, textMatches bool) map[string]any {
	items := make([]map[string]any, 0, len(result.Items))
	for _, item := range result.Items {
		m := map[string]any{
			"name":  item.Name,
			"path":  item.Path,
			"sha":   item.SHA,
			"url":   item.HTMLURL,
			"score": item.Score,
		}
		if textMatches && len(item.TextMatches) > 0 {
			m["text_matches"] = item.TextMatches
		}
		items = append(items, m)
	}
	return map[string]any{
		"total_count": result.TotalCount,
		"items":       items,
	}
}

// ---------------------------------------------------------------------------
// SearchFilesTool
// ---------------------------------------------------------------------------

// SearchFilesTool searches for files matching a query inside one repository.
type SearchFilesTool struct {
	client *github.Client
}

func NewSearchFilesTool(client *github.Client) *SearchFilesTool {
	return &SearchFilesTool{client: client}
}

func (t *SearchFilesTool) Name() string { return string(ToolSearchFiles) }
func (t *SearchFilesTool) Description() string {
	return "Search for files in a repository by name or content."
}
func (t *SearchFilesTool) Parameters() json.RawMessage {
	return json.RawMessage(searchParamSchema)
}

func (t *SearchFilesTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	var p searchParams
	if err := decodeArgs(args, &p); err != nil {
		return nil, err
	}

	result, err := t.client.SearchCode(ctx, scopedQuery(p), searchPerPage, false)
	if err != nil {
		return nil, upstreamError(err)
	}
	return reshapeSearch(result, false), nil
}

// ---------------------------------------------------------------------------
// SearchCodeTool
// ---------------------------------------------------------------------------

// SearchCodeTool is SearchFilesTool plus raw text-match snippets.
type SearchCodeTool struct {
	client *github.Client
}

func NewSearchCodeTool(client *github.Client) *SearchCodeTool {
	return &SearchCodeTool{client: client}
}

func (t *SearchCodeTool) Name() string { return string(ToolSearchCode) }
func (t *SearchCodeTool) Description() string {
	return "Search code in a repository; matches include text snippets when available."
}
func (t *SearchCodeTool) Parameters() json.RawMessage {
	return json.RawMessage(searchParamSchema)
}

func (t *SearchCodeTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	var p searchParams
	if err := decodeArgs(args, &p); err != nil {
		return nil, err
	}

	result, err := t.client.SearchCode(ctx, scopedQuery(p), searchPerPage, true)
	if err != nil {
		return nil, upstreamError(err)
	}
	return reshapeSearch(result, true), nil
}
