package tools

import (
	"context"
	"encoding/json"

	"github.com/repolens/repolens/internal/github"
)

// CommitsTool fetches commit history from a ref.
type CommitsTool struct {
	client *github.Client
}

func NewCommitsTool(client *github.Client) *CommitsTool {
	return &CommitsTool{client: client}
}

func (t *CommitsTool) Name() string { return string(ToolCommits) }
func (t *CommitsTool) Description() string {
	return "Get commit history for a repository from a branch, tag, or commit SHA."
}
func (t *CommitsTool) Parameters() json.RawMessage {
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
			},
			"ref": {
				"type": "string",
				"description": "Branch, tag, or commit SHA to start from",
				"default": "main"
			},
			"per_page": {
				"type": "integer",
				"default": 30,
				"minimum": 1,
				"maximum": 100
			}
		},
		"required": ["owner", "repo"]
	}`)
}

type commitsParams struct {
	Owner   string `json:"owner"`
	Repo    string `json:"repo"`
	Ref     string `json:"ref"`
	PerPage int    `json:"per_page"`
}

func (t *CommitsTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	var p commitsParams
	if err := decodeArgs(args, &p); err != nil {
		return nil, err
	}
	if p.Ref == "" {
		p.Ref = "main"
	}
	if p.PerPage <= 0 {
		p.PerPage = defaultPerPage
	}

	commits, err := t.client.Commits(ctx, p.Owner, p.Repo, p.Ref, p.PerPage)
	if err != nil {
		return nil, upstreamError(err)
	}

	out := make([]map[string]any, 0, len(commits))
	for _, c := range commits {
		out = append(out, map[string]any{
			"sha":     c.SHA,
			"message": c.Commit.Message,
			"author": map[string]any{
				"name":  c.Commit.Author.Name,
				"email": c.Commit.Author.Email,
				"date":  c.Commit.Author.Date,
			},
			"committer": map[string]any{
				"name":  c.Commit.Committer.Name,
				"email": c.Commit.Committer.Email,
				"date":  c.Commit.Committer.Date,
			},
			"url": c.HTMLURL,
		})
	}
	return out, nil
}
