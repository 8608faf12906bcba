package main

import (
	"github.com/MassBabyGeek/TrilhaVital-backend/internal/logger"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()

		logger.Success("Schema ready (%s)", cfg.DBDriver)
		return nil
	},
}
