package command

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mangacatalog/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.Start(ctx, cfg, logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
