package main

import (
	"fmt"
	"strconv"

	"logistics-backoffice/internal/infrastructure/database/migrations"
	"logistics-backoffice/internal/infrastructure/database/postgres"
	"logistics-backoffice/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(migrateUp)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down [steps]",
		Short: "Roll back the given number of migrations (default 1)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					return fmt.Errorf("steps must be a positive integer, got %q", args[0])
				}
				steps = n
			}
			return withDatabase(func(db *postgres.DB) error {
				sqlDB, err := db.DB.DB()
				if err != nil {
					return err
				}
				if err := migrations.Down(sqlDB, steps); err != nil {
					return err
				}
				logger.Info("Migrations rolled back", zap.Int("steps", steps))
				return nil
			})
		},
	})

	return cmd
}

func migrateUp(db *postgres.DB) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	if err := migrations.Up(sqlDB); err != nil {
		return err
	}
	logger.Info("Migrations applied")
	return nil
}

func withDatabase(fn func(db *postgres.DB) error) error {
	cfg, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer closeDatabase(db)

	return fn(db)
}
