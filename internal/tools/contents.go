package tools

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/repolens/repolens/internal/github"
	"github.com/repolens/repolens/internal/schema"
)

// FileContentsTool fetches and decodes a single file from a repository.
type FileContentsTool struct {
	client *github.Client
}

func NewFileContentsTool(client *github.Client) *FileContentsTool {
	return &FileContentsTool{client: client}
}

func (t *FileContentsTool) Name() string { return string(ToolFileContents) }
func (t *FileContentsTool) Description() string {
	return "Get the decoded contents of a file at a path, optionally at a specific ref."
}
func (t *FileContentsTool) Parameters() json.RawMessage {
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
			"path": {
				"type": "string",
				"description": "File path inside the repository"
			},
			"ref": {
				"type": "string",
				"description": "Branch, tag, or commit SHA",
				"default": "main"
			}
		},
		"required": ["owner", "repo", "path"]
	}`)
}

type fileContentsParams struct {
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
	Path  string `json:"path"`
	Ref   string `json:"ref"`
}

func (t *FileContentsTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	var p fileContentsParams
	if err := decodeArgs(args, &p); err != nil {
		return nil, err
	}
	if p.Ref == "" {
		p.Ref = "main"
	}

	content, err := t.client.Contents(ctx, p.Owner, p.Repo, p.Path, p.Ref)
	if err != nil {
		if errors.Is(err, github.ErrDirectory) {
			return nil, &schema.ToolError{Kind: schema.KindInvalidInput, Message: schema.MsgNotAFile}
		}
		return nil, upstreamError(err)
	}

	text, err := content.Decode()
	if err != nil {
		return nil, schema.Errf(schema.KindInternal, "decode content: %v", err)
	}

	return map[string]any{
		"name":    content.Name,
		"path":    content.Path,
		"size":    content.Size,
		"content": text,
		"sha":     content.SHA,
	}, nil
}
