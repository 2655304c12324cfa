package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"mangacatalog/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Database schema commands",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		return database.Migrate(cfg.DatabaseURL, "up", logger)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Revert the last migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		return database.Migrate(cfg.DatabaseURL, "down", logger)
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the applied schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		version, dirty, err := database.MigrationVersion(cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to read schema version: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "version: %d dirty: %t\n", version, dirty)
		return nil
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
	rootCmd.AddCommand(migrateCmd)
}
