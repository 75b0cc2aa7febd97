package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/repolens/repolens/internal/config"
	"github.com/repolens/repolens/internal/github"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show repolens status",
	RunE:  runStatus,
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfgPath := config.ConfigPath()

	fmt.Printf("%s repolens Status\n\n", logo)

	_, statErr := os.Stat(cfgPath)
	cfgMark := "✗"
	if statErr == nil {
		cfgMark = "✓"
	}
	fmt.Printf("Config:    %s %s\n", cfgPath, cfgMark)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Printf("  (could not load config: %v)\n", err)
		return nil
	}

	fmt.Printf("Port:      %d\n", cfg.Port)
	if cfg.GitHub.Owner != "" || cfg.GitHub.Repo != "" {
		fmt.Printf("Default:   %s/%s\n", cfg.GitHub.Owner, cfg.GitHub.Repo)
	}

	if cfg.GitHub.Token == "" {
		fmt.Println("Token:     ✗ not configured")
		return nil
	}
	fmt.Println("Token:     ✓ configured")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := github.NewClient(cfg.GitHub.Token)
	rl, err := client.RateLimit(ctx)
	if err != nil {
		fmt.Printf("Quota:     ✗ probe failed: %v\n", err)
		return nil
	}
	core := rl.Resources.Core
	fmt.Printf("Quota:     %d of %d remaining (resets %s)\n",
		core.Remaining, core.Limit,
		time.Unix(core.Reset, 0).Local().Format("15:04:05"))
	return nil
}
