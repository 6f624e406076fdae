// Package main implements agrifinctl, the operator CLI for schema and demo data.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"agrifin-backend/internal/config"
	dbinfra "agrifin-backend/internal/infrastructure/db"
	"agrifin-backend/internal/logging"
)

var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "agrifinctl",
	Short: "Operator commands for the AgriFin backend",
	Long: `agrifinctl manages the AgriFin database: it applies the schema and
loads the demo marketplace data. Connection settings come from the same
environment variables (and .env file) as the API server.`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

// openDB loads config and connects; the caller closes the provider.
func openDB(ctx context.Context) (*gorm.DB, *dbinfra.Provider, *zap.Logger, error) {
	_ = godotenv.Load()
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}
	log, err := logging.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		return nil, nil, nil, err
	}
	provider := dbinfra.NewProvider(func() (*gorm.DB, error) {
		return dbinfra.OpenGorm(cfg.DBDriver, cfg.DSN(), false)
	}, log)
	db, err := provider.Get(ctx)
	if err != nil {
		_ = provider.Close()
		return nil, nil, nil, fmt.Errorf("connect %s: %w", cfg.DBDriver, err)
	}
	return db, provider, log, nil
}
