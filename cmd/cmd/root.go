package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"newsstudio/internal/config"
	"newsstudio/internal/logger"
	"newsstudio/internal/store"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "newsstudio",
	Short: "News Studio turns Spanish news feeds into social media drafts.",
	Long: `News Studio ingests Spanish real-estate and tech news feeds, filters
them through keyword guardrails, classifies each item and composes
deterministic Instagram-style drafts (hook, carousel slides, caption,
hashtags) for the Althara and Oxono brands.

Typical workflow:
  newsstudio ingest
  newsstudio news list
  newsstudio generate <news-id>
  newsstudio drafts approve <draft-id>
  newsstudio drafts publish <draft-id>`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .newsstudio.yaml)")
}

// initConfig loads configuration from file and environment.
func initConfig() {
	if _, err := config.Load(cfgFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
}

// openStore opens the SQLite store under the configured data directory.
func openStore() (*store.Store, error) {
	cfg := config.Get()
	s, err := store.NewStore(cfg.App.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return s, nil
}

// fetchTimeout parses the configured fetch timeout, falling back to 10s.
func fetchTimeout() time.Duration {
	cfg := config.Get()
	d, err := time.ParseDuration(cfg.Fetch.Timeout)
	if err != nil || d <= 0 {
		logger.Warn("invalid fetch timeout, using default", "value", cfg.Fetch.Timeout)
		return 10 * time.Second
	}
	return d
}
