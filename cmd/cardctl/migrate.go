package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heyemlee/quicklink-app/internal/repository/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending PostgreSQL migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := postgres.Open(cmd.Context(), cfg.Postgres, log)
		if err != nil {
			return err
		}
		defer store.Close()

		version, err := store.Migrate()
		if err != nil {
			return fmt.Errorf("migrating: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Schema at version %d\n", version)
		return nil
	},
}
