// Package dependency wires core repolens services using go.uber.org/dig.
package dependency

import (
	"go.uber.org/dig"

	"github.com/repolens/repolens/internal/config"
	"github.com/repolens/repolens/internal/gateway"
	"github.com/repolens/repolens/internal/github"
	"github.com/repolens/repolens/internal/notify"
	"github.com/repolens/repolens/internal/ratewatch"
	"github.com/repolens/repolens/internal/tools"
)

// Container holds the resolved core service singletons.
// Callers use the typed getter methods; they never need to import dig directly.
type Container struct {
	client    *github.Client
	registry  *tools.Registry
	server    *gateway.Server
	ratewatch *ratewatch.Service
}

func (c *Container) Client() *github.Client        { return c.client }
func (c *Container) Registry() *tools.Registry     { return c.registry }
func (c *Container) Server() *gateway.Server       { return c.server }
func (c *Container) Ratewatch() *ratewatch.Service { return c.ratewatch }

// New builds and wires all core services from cfg.
func New(cfg *config.Config) (*Container, error) {
	d := dig.New()

	if err := d.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}
	if err := d.Provide(newClient); err != nil {
		return nil, err
	}
	if err := d.Provide(newRegistry); err != nil {
		return nil, err
	}
	if err := d.Provide(newServer); err != nil {
		return nil, err
	}
	if err := d.Provide(newNotifier); err != nil {
		return nil, err
	}
	if err := d.Provide(newRatewatch); err != nil {
		return nil, err
	}

	var result *Container
	err := d.Invoke(func(
		client *github.Client,
		registry *tools.Registry,
		server *gateway.Server,
		rw *ratewatch.Service,
	) {
		result = &Container{
			client:    client,
			registry:  registry,
			server:    server,
			ratewatch: rw,
		}
	})
	return result, err
}

// newClient returns nil when no credential is configured; the registry then
// serves discovery only and every invocation fails Unavailable.
func newClient(cfg *config.Config) *github.Client {
	if cfg.GitHub.Token == "" {
		return nil
	}
	return github.NewClient(cfg.GitHub.Token)
}

func newRegistry(client *github.Client) (*tools.Registry, error) {
	return tools.Default(client)
}

func newServer(cfg *config.Config, registry *tools.Registry) *gateway.Server {
	return gateway.NewServer(registry, cfg.Port)
}

func newNotifier(cfg *config.Config) *notify.Slack {
	return notify.NewSlack(cfg.Slack.Token, cfg.Slack.Channel)
}

// newRatewatch returns nil when there is no client to probe with.
func newRatewatch(cfg *config.Config, client *github.Client, notifier *notify.Slack) (*ratewatch.Service, error) {
	if client == nil {
		return nil, nil
	}
	var n ratewatch.Notifier
	if notifier != nil {
		n = notifier
	}
	return ratewatch.NewService(client, cfg.Ratewatch.Schedule, cfg.Ratewatch.Threshold, n)
}
