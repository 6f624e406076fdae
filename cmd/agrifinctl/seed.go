package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	dbinfra "agrifin-backend/internal/infrastructure/db"
	"agrifin-backend/internal/seed"
)

var seedReset bool

func init() {
	seedCmd.Flags().BoolVar(&seedReset, "reset", false, "Delete all products and users before seeding")
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample products and user accounts",
	Long: `Load the sample marketplace listings and demo accounts.

Without --reset listings are only added to an empty catalogue and accounts
whose email already exists are left alone.

Examples:
  agrifinctl seed
  agrifinctl seed --reset`,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, _ []string) error {
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
	res, err := seed.Run(ctx, db, seedReset, log)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Products: %d\n", res.Products)
	fmt.Fprintf(out, "Users:    %d\n", res.Users)
	if res.Users > 0 {
		fmt.Fprintln(out, "Admin login: admin@agrifin.com / admin123")
	}
	return nil
}
