package github

import (
	"encoding/base64"
	"strings"
)

// Repository is the subset of repository metadata the gateway reshapes.
type Repository struct {
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	Description   string `json:"description"`
	Language      string `json:"language"`
	Stars         int    `json:"stargazers_count"`
	Forks         int    `json:"forks_count"`
	OpenIssues    int    `json:"open_issues_count"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
	CloneURL      string `json:"clone_url"`
	DefaultBranch string `json:"default_branch"`
}

// User is an issue author or assignee.
type User struct {
	Login string `json:"login"`
}

// Label is an issue label.
type Label struct {
	Name string `json:"name"`
}

// Issue is one issue as returned by the issues endpoint.
type Issue struct {
	Number    int     `json:"number"`
	Title     string  `json:"title"`
	Body      string  `json:"body"`
	State     string  `json:"state"`
	User      User    `json:"user"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
	Labels    []Label `json:"labels"`
	Assignees []User  `json:"assignees"`
}

// Content is a single file entry from the contents endpoint.
type Content struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	Path     string `json:"path"`
	SHA      string `json:"sha"`
	Size     int    `json:"size"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// Decode returns the decoded file text. The contents endpoint base64-encodes
// file bodies with embedded newlines, which the decoder must not see.
func (c *Content) Decode() (string, error) {
	if c.Encoding != "base64" {
		return c.Content, nil
	}
	cleaned := strings.ReplaceAll(c.Content, "\n", "")
	data, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// TextMatch is a raw search snippet attached to a search item.
type TextMatch struct {
	Fragment string `json:"fragment"`
	Property string `json:"property,omitempty"`
}

// SearchItem is one code-search match.
type SearchItem struct {
	Name        string      `json:"name"`
	Path        string      `json:"path"`
	SHA         string      `json:"sha"`
	HTMLURL     string      `json:"html_url"`
	Score       float64     `json:"score"`
	TextMatches []TextMatch `json:"text_matches,omitempty"`
}

// SearchResult is the code-search response envelope.
type SearchResult struct {
	TotalCount int          `json:"total_count"`
	Items      []SearchItem `json:"items"`
}

// Signature is a commit author or committer identity.
type Signature struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Date  string `json:"date"`
}

// CommitDetail is the nested commit object carrying message and identities.
type CommitDetail struct {
	Message   string    `json:"message"`
	Author    Signature `json:"author"`
	Committer Signature `json:"committer"`
}

// Commit is one entry from the commits endpoint.
type Commit struct {
	SHA     string       `json:"sha"`
	Commit  CommitDetail `json:"commit"`
	HTMLURL string       `json:"html_url"`
}

// RateResource is one quota bucket from the rate-limit endpoint.
type RateResource struct {
	Limit     int   `json:"limit"`
	Remaining int   `json:"remaining"`
	Reset     int64 `json:"reset"`
}

// RateLimit is the rate-limit response envelope.
type RateLimit struct {
	Resources struct {
		Core RateResource `json:"core"`
	} `json:"resources"`
}
