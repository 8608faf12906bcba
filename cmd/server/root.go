package main

import (
	"context"
	"fmt"

	"github.com/MassBabyGeek/TrilhaVital-backend/internal/config"
	"github.com/MassBabyGeek/TrilhaVital-backend/internal/database"
	"github.com/MassBabyGeek/TrilhaVital-backend/internal/logger"
	"github.com/spf13/cobra"
)

var (
	cfg *config.Config

	portFlag   string
	driverFlag string
)

var rootCmd = &cobra.Command{
	Use:   "trilhavital",
	Short: "TrilhaVital fitness tracker backend",
	Long: `TrilhaVital stores a body profile (age, weight, height), derives the BMI
(IMC) with its classification, and lets you compose workouts from an
exercise catalog.

CONFIGURATION (environment):

  PORT                 HTTP port (8080)
  DB_DRIVER            sqlite | postgres (sqlite)
  SQLITE_PATH          SQLite file (trilhavital.db)
  DATABASE_URL         Postgres DSN, or DB_HOST/DB_PORT/DB_USER/DB_PASSWORD/DB_NAME
  DEFAULT_USER_EMAIL   current user when no X-User-Email header is sent
  SEED_ON_START        seed the exercise catalog when serving (true)
  DEBUG                verbose logs (false)

Running without a subcommand is the same as 'trilhavital serve'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("could not load config: %w", err)
		}
		if portFlag != "" {
			cfg.Port = portFlag
		}
		if driverFlag != "" {
			cfg.DBDriver = driverFlag
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger.SetDebug(cfg.Debug)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&portFlag, "port", "", "HTTP port (overrides PORT)")
	rootCmd.PersistentFlags().StringVar(&driverFlag, "driver", "", "database driver: sqlite or postgres (overrides DB_DRIVER)")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

// openStore ouvre le stockage et crée le schéma si besoin
func openStore(ctx context.Context) (database.Store, error) {
	store, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}
