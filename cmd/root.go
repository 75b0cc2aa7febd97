// Package cmd implements the repolens CLI using cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"
const logo = "🔍"

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "repolens",
	Short: logo + " repolens — GitHub repository tool gateway",
	Long:  logo + " repolens — an HTTP gateway exposing GitHub repository analysis tools",
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(statusCmd)
}
