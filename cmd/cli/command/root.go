package command

// root.go defines the root command for the catalogctl application.
// set up the global flags here.

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"mangacatalog/internal/config"
)

var (
	apiURL string // Global flag for API server URL
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "catalogctl - manga catalog administration",
	Long: `catalogctl manages the manga catalog service. It can:
- Apply or revert the database schema
- Seed the default countries and types
- Run the HTTP API
- Browse and delete catalog entries through a running API

Use "catalogctl command --help" to see all available commands.`,
	SilenceUsage: true,
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
	// Global persistent flags = available to all subcommands
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "http://localhost:8080", "API server URL")
}

// loadConfig is shared by the commands that talk to the database directly.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)
	return cfg, logger, nil
}
