package tools

import (
	"context"
	"encoding/json"

	"github.com/repolens/repolens/internal/github"
	"github.com/repolens/repolens/internal/schema"
)

const defaultPerPage = 30

// ListIssuesTool fetches issues for a repository filtered by state.
type ListIssuesTool struct {
	client *github.Client
}

func NewListIssuesTool(client *github.Client) *ListIssuesTool {
	return &ListIssuesTool{client: client}
}

func (t *ListIssuesTool) Name() string { return string(ToolListIssues) }
func (t *ListIssuesTool) Description() string {
	return "List issues in a repository, filtered by state (open, closed, or all)."
}
func (t *ListIssuesTool) Parameters() json.RawMessage {
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
			"state": {
				"type": "string",
				"enum": ["open", "closed", "all"],
				"default": "open"
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

type listIssuesParams struct {
	Owner   string `json:"owner"`
	Repo    string `json:"repo"`
	State   string `json:"state"`
	PerPage int    `json:"per_page"`
}

func (t *ListIssuesTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	var p listIssuesParams
	if err := decodeArgs(args, &p); err != nil {
		return nil, err
	}
	if p.State == "" {
		p.State = "open"
	}
	switch p.State {
	case "open", "closed", "all":
	default:
		return nil, schema.Errf(schema.KindInvalidInput, "Invalid state: %s", p.State)
	}
	if p.PerPage <= 0 {
		p.PerPage = defaultPerPage
	}

	issues, err := t.client.Issues(ctx, p.Owner, p.Repo, p.State, p.PerPage)
	if err != nil {
		return nil, upstreamError(err)
	}

	out := make([]map[string]any, 0, len(issues))
	for _, issue := range issues {
		labels := make([]string, 0, len(issue.Labels))
		for _, l := range issue.Labels {
			labels = append(labels, l.Name)
		}
		assignees := make([]string, 0, len(issue.Assignees))
		for _, a := range issue.Assignees {
			assignees = append(assignees, a.Login)
		}
		out = append(out, map[string]any{
			"number":     issue.Number,
			"title":      issue.Title,
			"body":       issue.Body,
			"state":      issue.State,
			"author":     issue.User.Login,
			"created_at": issue.CreatedAt,
			"updated_at": issue.UpdatedAt,
			"labels":     labels,
			"assignees":  assignees,
		})
	}
	return out, nil
}
