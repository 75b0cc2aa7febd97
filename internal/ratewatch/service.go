// Package ratewatch periodically probes the GitHub rate-limit endpoint and
// raises an alert when the remaining core quota drops below a threshold.
package ratewatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	robfigcron "github.com/robfig/cron/v3"

	"github.com/repolens/repolens/internal/github"
)

const defaultSchedule = "*/15 * * * *"

// Notifier delivers a low-quota alert. A nil Notifier disables alerting.
type Notifier interface {
	Post(ctx context.Context, text string) error
}

// Service is the periodic rate-limit probe.
type Service struct {
	client    *github.Client
	schedule  robfigcron.Schedule
	threshold int
	notifier  Notifier

	// alerted suppresses repeat alerts until the quota recovers.
	alerted bool
}

// NewService creates a ratewatch Service. expr is a standard five-field cron
// expression; empty means every 15 minutes.
func NewService(client *github.Client, expr string, threshold int, notifier Notifier) (*Service, error) {
	if expr == "" {
		expr = defaultSchedule
	}
	parser := robfigcron.NewParser(
		robfigcron.Minute | robfigcron.Hour | robfigcron.Dom | robfigcron.Month | robfigcron.Dow,
	)
	sched, err := parser.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("ratewatch: invalid schedule %q: %w", expr, err)
	}
	return &Service{
		client:    client,
		schedule:  sched,
		threshold: threshold,
		notifier:  notifier,
	}, nil
}

// Start runs the probe loop until ctx is cancelled.
func (s *Service) Start(ctx context.Context) error {
	slog.Info("ratewatch: started", "threshold", s.threshold)

	for {
		next := s.schedule.Next(time.Now())
		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			slog.Info("ratewatch: stopped")
			return ctx.Err()
		case <-timer.C:
			s.check(ctx)
		}
	}
}

func (s *Service) check(ctx context.Context) {
	rl, err := s.client.RateLimit(ctx)
	if err != nil {
		slog.Warn("ratewatch: probe failed", "err", err)
		return
	}

	core := rl.Resources.Core
	slog.Info("ratewatch: quota", "remaining", core.Remaining, "limit", core.Limit)

	if core.Remaining >= s.threshold {
		s.alerted = false
		return
	}
	if s.alerted || s.notifier == nil {
		return
	}

	reset := time.Unix(core.Reset, 0).UTC().Format(time.RFC3339)
	msg := fmt.Sprintf("repolens: GitHub API quota low — %d of %d remaining, resets at %s",
		core.Remaining, core.Limit, reset)
	if err := s.notifier.Post(ctx, msg); err != nil {
		slog.Warn("ratewatch: alert failed", "err", err)
		return
	}
	s.alerted = true
}
