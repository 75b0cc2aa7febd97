// Package config defines and loads the repolens configuration.
//
// Values come from ~/.repolens/config.json (or .yaml), with environment
// variables taking precedence so containerized deployments can run without a
// config file at all.
package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// GitHubConfig holds the upstream credential and the documentation-default
// repository coordinates. Owner/Repo are surfaced by the status command and
// never auto-injected into tool arguments.
type GitHubConfig struct {
	Token string `json:"token" yaml:"token"`
	Owner string `json:"owner" yaml:"owner"`
	Repo  string `json:"repo" yaml:"repo"`
}

// RatewatchConfig configures the periodic rate-limit probe.
type RatewatchConfig struct {
	// Schedule is a standard five-field cron expression.
	Schedule string `json:"schedule" yaml:"schedule"`
	// Threshold is the remaining-quota floor below which an alert fires.
	Threshold int `json:"threshold" yaml:"threshold"`
}

// SlackConfig configures the optional low-quota alert channel.
type SlackConfig struct {
	Token   string `json:"token" yaml:"token"`
	Channel string `json:"channel" yaml:"channel"`
}

// Config is the full repolens configuration.
type Config struct {
	Port      int             `json:"port" yaml:"port"`
	GitHub    GitHubConfig    `json:"github" yaml:"github"`
	Ratewatch RatewatchConfig `json:"ratewatch" yaml:"ratewatch"`
	Slack     SlackConfig     `json:"slack" yaml:"slack"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Port: 5001,
		Ratewatch: RatewatchConfig{
			Schedule:  "*/15 * * * *",
			Threshold: 100,
		},
	}
}

// ConfigPath returns the default configuration file path: ~/.repolens/config.json.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".repolens/config.json"
	}
	return filepath.Join(home, ".repolens", "config.json")
}

// DataDir returns the repolens data directory: ~/.repolens.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".repolens"
	}
	return filepath.Join(home, ".repolens")
}

// applyEnv overlays environment variables onto cfg.
func applyEnv(cfg *Config) {
	if v := os.Getenv("REPOLENS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("GITHUB_TOKEN"); v != "" {
		cfg.GitHub.Token = v
	}
	if v := os.Getenv("GITHUB_OWNER"); v != "" {
		cfg.GitHub.Owner = v
	}
	if v := os.Getenv("GITHUB_REPO"); v != "" {
		cfg.GitHub.Repo = v
	}
	if v := os.Getenv("SLACK_BOT_TOKEN"); v != "" {
		cfg.Slack.Token = v
	}
	if v := os.Getenv("SLACK_CHANNEL"); v != "" {
		cfg.Slack.Channel = v
	}
}
