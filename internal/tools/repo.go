package tools

import (
	"context"
	"encoding/json"

	"github.com/repolens/repolens/internal/github"
)

// RepositoryInfoTool fetches repository metadata.
type RepositoryInfoTool struct {
	client *github.Client
}

func NewRepositoryInfoTool(client *github.Client) *RepositoryInfoTool {
	return &RepositoryInfoTool{client: client}
}

func (t *RepositoryInfoTool) Name() string { return string(ToolRepositoryInfo) }
func (t *RepositoryInfoTool) Description() string {
	return "Get metadata about a GitHub repository: stars, forks, language, timestamps."
}
func (t *RepositoryInfoTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"owner": {
				"type": "string",
				"description": "Repository owner"
			},
			"repo": {
				"type": "string",
				"description": "Repository name"
			}
		},
		"required": ["owner", "repo"]
	}`)
}

type repositoryInfoParams struct {
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
}

func (t *RepositoryInfoTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	var p repositoryInfoParams
	if err := decodeArgs(args, &p); err != nil {
		return nil, err
	}

	repo, err := t.client.Repository(ctx, p.Owner, p.Repo)
	if err != nil {
		return nil, upstreamError(err)
	}

	return map[string]any{
		"name":           repo.Name,
		"full_name":      repo.FullName,
		"description":    repo.Description,
		"language":       repo.Language,
		"stars":          repo.Stars,
		"forks":          repo.Forks,
		"open_issues":    repo.OpenIssues,
		"created_at":     repo.CreatedAt,
		"updated_at":     repo.UpdatedAt,
		"clone_url":      repo.CloneURL,
		"default_branch": repo.DefaultBranch,
	}, nil
}
