package main

import (
	"fmt"

	"github.com/MassBabyGeek/TrilhaVital-backend/internal/database"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the exercise catalog (idempotent)",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()

		count, err := database.Seed(cmd.Context(), store)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d exercises in catalog\n", count)
		return nil
	},
}
