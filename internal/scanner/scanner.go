package scanner

import (
	"database/sql"

	model "github.com/MassBabyGeek/TrilhaVital-backend/internal/models"
	"github.com/lib/pq"
)

// Row est implémenté par pgx.Row, pgx.Rows et *sql.Row
type Row interface {
	Scan(dest ...interface{}) error
}

// ScanExercise scanne une ligne SQL vers un Exercise
// Colonnes: id, name, muscle_group, description
func ScanExercise(row Row) (*model.Exercise, error) {
	var ex model.Exercise
	if err := row.Scan(&ex.ID, &ex.Name, &ex.MuscleGroup, &ex.Description); err != nil {
		return nil, err
	}
	return &ex, nil
}

// ScanUserWithProfile scanne un utilisateur joint (LEFT JOIN) à son profil.
// Le profil est nil quand les colonnes du profil sont NULL.
// Colonnes: u.id, u.name, u.email, u.created_at, u.updated_at,
// p.id, p.age, p.weight, p.height, p.imc, p.created_at, p.updated_at
func ScanUserWithProfile(row Row) (*model.User, error) {
	var user model.User
	var profileID sql.NullString
	var age sql.NullInt64
	var weight, height, imc sql.NullFloat64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.CreatedAt, &user.UpdatedAt,
		&profileID, &age, &weight, &height, &imc, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if profileID.Valid {
		user.Profile = &model.Profile{
			ID:     profileID.String,
			UserID: user.ID,
			Age:    int(age.Int64),
			Weight: weight.Float64,
			Height: height.Float64,
			IMC:    imc.Float64,
			DateFields: model.DateFields{
				CreatedAt: createdAt.Time,
				UpdatedAt: updatedAt.Time,
			},
		}
	}

	return &user, nil
}

// ScanWorkout scanne une ligne SQL vers un Workout (sans ses exercices)
// Colonnes: id, name, user_id, created_at
func ScanWorkout(row Row) (*model.Workout, error) {
	var w model.Workout
	if err := row.Scan(&w.ID, &w.Name, &w.UserID, &w.CreatedAt); err != nil {
		return nil, err
	}
	w.WorkoutExercises = []model.WorkoutExercise{}
	return &w, nil
}

// ScanWorkoutExercise scanne une ligne workout_exercises jointe à exercises
// Colonnes: we.id, we.workout_id, we.exercise_id, we.position, we.sets, we.reps,
// we.rest_seconds, e.id, e.name, e.muscle_group, e.description
func ScanWorkoutExercise(row Row) (*model.WorkoutExercise, error) {
	var we model.WorkoutExercise
	var ex model.Exercise

	err := row.Scan(
		&we.ID, &we.WorkoutID, &we.ExerciseID, &we.Position, &we.Sets, &we.Reps, &we.RestSeconds,
		&ex.ID, &ex.Name, &ex.MuscleGroup, &ex.Description,
	)
	if err != nil {
		return nil, err
	}

	we.Exercise = &ex
	return &we, nil
}

// ScanIDs scanne un tableau Postgres d'identifiants avec pq.Array.
// pq ne lit que la représentation texte: la colonne doit être castée, ex: array_agg(id)::text.
// NULL (aucune ligne agrégée) donne une slice vide.
func ScanIDs(row Row) ([]string, error) {
	var ids []string
	if err := row.Scan(pq.Array(&ids)); err != nil {
		return nil, err
	}
	return ids, nil
}
