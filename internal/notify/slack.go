// Package notify delivers operational alerts to Slack.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	slackgo "github.com/slack-go/slack"
)

// Slack posts messages to a fixed channel.
type Slack struct {
	client  *slackgo.Client
	channel string
}

// NewSlack creates a Slack notifier. Returns nil when not configured, which
// callers treat as alerting disabled.
func NewSlack(token, channel string) *Slack {
	if token == "" || channel == "" {
		return nil
	}
	return &Slack{client: slackgo.New(token), channel: channel}
}

// Post sends text to the configured channel.
func (s *Slack) Post(ctx context.Context, text string) error {
	_, _, err := s.client.PostMessageContext(ctx, s.channel,
		slackgo.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("slack post: %w", err)
	}
	slog.Info("notify: slack message sent", "channel", s.channel)
	return nil
}
