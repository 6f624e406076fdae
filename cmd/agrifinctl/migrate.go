package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	dbinfra "agrifin-backend/internal/infrastructure/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long: `Create or update the users, farmers, loans and products tables.

Examples:
  # Migrate the default sqlite database
  agrifinctl migrate

  # Migrate MySQL
  DB_DRIVER=mysql MYSQL_HOST=localhost agrifinctl migrate`,
	RunE: runMigrate,
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	db, provider, log, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = provider.Close() }()
	defer func() { _ = log.Sync() }()

	if err := dbinfra.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
	return nil
}
