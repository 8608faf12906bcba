package database

import (
	"context"
	"fmt"

	"github.com/MassBabyGeek/TrilhaVital-backend/internal/catalog"
	"github.com/MassBabyGeek/TrilhaVital-backend/internal/logger"
)

// Seed insère le catalogue embarqué. Peut être relancé sans créer de doublons.
func Seed(ctx context.Context, store Store) (int, error) {
	exercises, err := catalog.Default()
	if err != nil {
		return 0, err
	}

	logger.Info("Seeding %d exercises...", len(exercises))
	count, err := store.UpsertExercises(ctx, exercises)
	if err != nil {
		return 0, fmt.Errorf("seed exercises: %w", err)
	}
	logger.Success("Catalog ready: %d exercises", count)
	return count, nil
}
