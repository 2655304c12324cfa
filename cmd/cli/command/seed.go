package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"mangacatalog/database"
	"mangacatalog/internal/microservices/http-api/repository"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the default countries and types",
	Long:  `Insert the default countries (paises) and types (tipos). Existing rows are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		db, err := database.Connect(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer database.Close(db)

		res, err := database.Seed(cmd.Context(), repository.NewStore(db))
		if err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d countries and %d types.\n", res.Countries, res.Types)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
