package database

import (
	"context"
	"errors"
	"fmt"

	model "github.com/MassBabyGeek/TrilhaVital-backend/internal/models"
)

// ErrNotFound est retournée quand l'enregistrement demandé n'existe pas
var ErrNotFound = errors.New("record not found")

// ValidationError signale une donnée refusée par la couche de stockage
// (référence inconnue, contrainte violée). Elle est exposée en 400.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error { return e.Err }

// IsValidation indique si err est (ou enveloppe) une ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Store est le client de stockage partagé par tous les handlers.
// Il est ouvert une fois au démarrage et fermé à l'arrêt du process.
type Store interface {
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error

	// UpsertExercises insère les exercices absents (clé naturelle: name)
	// et retourne le nombre d'exercices présents après l'opération.
	UpsertExercises(ctx context.Context, exercises []model.Exercise) (int, error)
	ListExercises(ctx context.Context) ([]model.Exercise, error)

	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpsertProfile(ctx context.Context, email string, in model.ProfileInput) (*model.User, error)

	// CreateWorkout crée l'entraînement et ses exercices dans une seule transaction
	CreateWorkout(ctx context.Context, email string, in model.CreateWorkoutInput) (*model.Workout, error)
	ListWorkouts(ctx context.Context, email string) ([]model.Workout, error)
	GetWorkout(ctx context.Context, email, id string) (*model.Workout, error)
}

func unknownExercises(missing []string) error {
	return &ValidationError{Message: fmt.Sprintf("exercício não encontrado: %v", missing)}
}

// missingIDs retourne les ids demandés absents de found, dans l'ordre demandé
func missingIDs(wanted, found []string) []string {
	present := make(map[string]bool, len(found))
	for _, id := range found {
		present[id] = true
	}
	var missing []string
	for _, id := range wanted {
		if !present[id] {
			missing = append(missing, id)
		}
	}
	return missing
}
