package main

import (
	"fmt"
	"os"

	"logistics-backoffice/internal/config"
	"logistics-backoffice/internal/infrastructure/database/postgres"
	"logistics-backoffice/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	root := &cobra.Command{
		Use:           "backoffice",
		Short:         "Logistics back-office API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCommand(), newMigrateCommand(), newCreateUserCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// bootstrap loads configuration and initializes the global logger.
func bootstrap() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	env := cfg.Server.Environment
	if env == "" {
		env = "development"
	}
	if err := logger.Init(env, cfg.Server.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("Configuration loaded", zap.String("environment", env))
	return cfg, nil
}

func openDatabase(cfg *config.Config) (*postgres.DB, error) {
	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		return nil, fmt.Errorf("database configuration is missing: set DB_HOST and DB_NAME")
	}

	db, err := postgres.NewDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func closeDatabase(db *postgres.DB) {
	if err := db.Close(); err != nil {
		logger.Error("Failed to close database connection", zap.Error(err))
	}
}
