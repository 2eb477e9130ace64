// Package cli implements the arkivsim command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Persistent flags available to all subcommands
	configPath string
	adminURL   string

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "arkivsim",
	Short: "arkivsim is a stateful archive API simulator",
	Long: `arkivsim emulates an asynchronous Noark archive API for integration
testing. It serves case, journal entry, document file and code-list
endpoints on the simulator port, and a mock admin API for behavior
injection (FAIL, TIMEOUT, EMPTY) on the admin port.

Configuration can be provided via flags, environment variables, or a
YAML configuration file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&adminURL, "admin-url", "http://localhost:8080", "Admin API base URL")
}
