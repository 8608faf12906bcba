package database

import (
	"context"
	"testing"

	model "github.com/MassBabyGeek/TrilhaVital-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEmail = "user@example.com"

// storeFactory ouvre un Store vide et migré, fermé à la fin du test
type storeFactory func(t *testing.T) Store

// runStoreContract exécute le même comportement attendu sur chaque implémentation de Store
func runStoreContract(t *testing.T, newStore storeFactory) {
	tests := []struct {
		name string
		run  func(*testing.T, storeFactory)
	}{
		{"SeedIsIdempotent", contractSeedIsIdempotent},
		{"UpsertExercisesKeepsExisting", contractUpsertExercisesKeepsExisting},
		{"ListExercisesOrder", contractListExercisesOrder},
		{"ListExercisesEmpty", contractListExercisesEmpty},
		{"GetUserByEmailNotFound", contractGetUserByEmailNotFound},
		{"UpsertProfileCreatesThenUpdates", contractUpsertProfileCreatesThenUpdates},
		{"UpsertProfileForUserWithoutProfile", contractUpsertProfileForUserWithoutProfile},
		{"CreateWorkout", contractCreateWorkout},
		{"CreateWorkoutUnknownExerciseIsAtomic", contractCreateWorkoutUnknownExerciseIsAtomic},
		{"CreateWorkoutWithoutUser", contractCreateWorkoutWithoutUser},
		{"ListWorkoutsScopedToUser", contractListWorkoutsScopedToUser},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) { tt.run(t, newStore) })
	}
}

func intPtr(v int) *int { return &v }

func seedExercises(t *testing.T, store Store) []model.Exercise {
	t.Helper()
	ctx := context.Background()
	_, err := store.UpsertExercises(ctx, []model.Exercise{
		{Name: "Remada Cavalinho", MuscleGroup: "Costas"},
		{Name: "Supino Reto com Barra", MuscleGroup: "Peito"},
		{Name: "Puxada Frontal (Pulley)", MuscleGroup: "Costas"},
		{Name: "Crucifixo na Máquina (Voador)", MuscleGroup: "Peito"},
		{Name: "Agachamento Livre com Barra", MuscleGroup: "Pernas"},
	})
	require.NoError(t, err)
	exercises, err := store.ListExercises(ctx)
	require.NoError(t, err)
	return exercises
}

// countRows compte les lignes d'une table, quelle que soit l'implémentation
func countRows(t *testing.T, store Store, table string) int64 {
	t.Helper()
	var n int64
	switch s := store.(type) {
	case *SQLiteStore:
		require.NoError(t, s.db.Table(table).Count(&n).Error)
	case *PostgresStore:
		require.NoError(t, s.pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n))
	default:
		t.Fatalf("unsupported store %T", store)
	}
	return n
}

// insertBareUser crée un utilisateur sans profil
func insertBareUser(t *testing.T, store Store, name, email string) {
	t.Helper()
	id := uuid.NewString()
	switch s := store.(type) {
	case *SQLiteStore:
		require.NoError(t, s.db.Create(&model.User{ID: id, Name: name, Email: email}).Error)
	case *PostgresStore:
		_, err := s.pool.Exec(context.Background(),
			`INSERT INTO users (id, name, email) VALUES ($1, $2, $3)`, id, name, email)
		require.NoError(t, err)
	default:
		t.Fatalf("unsupported store %T", store)
	}
}

func contractSeedIsIdempotent(t *testing.T, newStore storeFactory) {
	store := newStore(t)
	ctx := context.Background()

	first, err := Seed(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, 13, first)

	before, err := store.ListExercises(ctx)
	require.NoError(t, err)

	second, err := Seed(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	after, err := store.ListExercises(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after, "existing rows keep their ids")
}

func contractUpsertExercisesKeepsExisting(t *testing.T, newStore storeFactory) {
	store := newStore(t)
	ctx := context.Background()

	_, err := store.UpsertExercises(ctx, []model.Exercise{{Name: "Leg Press 45°", MuscleGroup: "Pernas", Description: "original"}})
	require.NoError(t, err)
	count, err := store.UpsertExercises(ctx, []model.Exercise{{Name: "Leg Press 45°", MuscleGroup: "Pernas", Description: "changed"}})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	exercises, err := store.ListExercises(ctx)
	require.NoError(t, err)
	require.Len(t, exercises, 1)
	assert.Equal(t, "original", exercises[0].Description)
}

func contractListExercisesOrder(t *testing.T, newStore storeFactory) {
	store := newStore(t)
	exercises := seedExercises(t, store)

	var got []string
	for _, ex := range exercises {
		got = append(got, ex.MuscleGroup+"/"+ex.Name)
	}
	assert.Equal(t, []string{
		"Costas/Puxada Frontal (Pulley)",
		"Costas/Remada Cavalinho",
		"Peito/Crucifixo na Máquina (Voador)",
		"Peito/Supino Reto com Barra",
		"Pernas/Agachamento Livre com Barra",
	}, got)
}

func contractListExercisesEmpty(t *testing.T, newStore storeFactory) {
	store := newStore(t)
	exercises, err := store.ListExercises(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, exercises)
	assert.Empty(t, exercises)
}

func contractGetUserByEmailNotFound(t *testing.T, newStore storeFactory) {
	store := newStore(t)
	_, err := store.GetUserByEmail(context.Background(), testEmail)
	assert.ErrorIs(t, err, ErrNotFound)
}

func contractUpsertProfileCreatesThenUpdates(t *testing.T, newStore storeFactory) {
	store := newStore(t)
	ctx := context.Background()

	created, err := store.UpsertProfile(ctx, testEmail, model.ProfileInput{Name: "Ana", Age: 30, Weight: 75.5, Height: 1.75, IMC: 24.65})
	require.NoError(t, err)
	require.NotNil(t, created.Profile)
	assert.Equal(t, "Ana", created.Name)
	assert.Equal(t, testEmail, created.Email)
	assert.Equal(t, 24.65, created.Profile.IMC)
	assert.Equal(t, created.ID, created.Profile.UserID)

	updated, err := store.UpsertProfile(ctx, testEmail, model.ProfileInput{Name: "Ana Souza", Age: 31, Weight: 70, Height: 1.75, IMC: 22.86})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.Profile.ID, updated.Profile.ID)
	assert.Equal(t, "Ana Souza", updated.Name)
	assert.Equal(t, 31, updated.Profile.Age)
	assert.Equal(t, 70.0, updated.Profile.Weight)
	assert.Equal(t, 22.86, updated.Profile.IMC)

	assert.EqualValues(t, 1, countRows(t, store, "users"))
	assert.EqualValues(t, 1, countRows(t, store, "profiles"))
}

func contractUpsertProfileForUserWithoutProfile(t *testing.T, newStore storeFactory) {
	store := newStore(t)
	ctx := context.Background()
	insertBareUser(t, store, "Bia", testEmail)

	user, err := store.UpsertProfile(ctx, testEmail, model.ProfileInput{Name: "Bia", Age: 22, Weight: 55, Height: 1.6, IMC: 21.48})
	require.NoError(t, err)
	require.NotNil(t, user.Profile)
	assert.Equal(t, 21.48, user.Profile.IMC)
}

func createUser(t *testing.T, store Store) {
	t.Helper()
	_, err := store.UpsertProfile(context.Background(), testEmail, model.ProfileInput{Name: "Ana", Age: 30, Weight: 60, Height: 1.6, IMC: 23.44})
	require.NoError(t, err)
}

func contractCreateWorkout(t *testing.T, newStore storeFactory) {
	store := newStore(t)
	ctx := context.Background()
	exercises := seedExercises(t, store)
	createUser(t, store)

	in := model.CreateWorkoutInput{
		Name: "Treino A",
		Exercises: []model.WorkoutExerciseInput{
			{ExerciseID: exercises[3].ID, Sets: 4, Reps: "8-10", RestSeconds: intPtr(90)},
			{ExerciseID: exercises[0].ID, Sets: 3, Reps: "12", RestSeconds: intPtr(60)},
			{ExerciseID: exercises[3].ID, Sets: 2, Reps: "até a falha", RestSeconds: intPtr(0)},
		},
	}
	workout, err := store.CreateWorkout(ctx, testEmail, in)
	require.NoError(t, err)

	assert.Equal(t, "Treino A", workout.Name)
	require.Len(t, workout.WorkoutExercises, 3)
	for i, we := range workout.WorkoutExercises {
		assert.Equal(t, i, we.Position)
		assert.Equal(t, in.Exercises[i].ExerciseID, we.ExerciseID)
		require.NotNil(t, we.Exercise)
		assert.Equal(t, we.ExerciseID, we.Exercise.ID)
	}
	assert.Equal(t, "Supino Reto com Barra", workout.WorkoutExercises[0].Exercise.Name)
	assert.Equal(t, 0, workout.WorkoutExercises[2].RestSeconds)

	got, err := store.GetWorkout(ctx, testEmail, workout.ID)
	require.NoError(t, err)
	assert.Equal(t, workout.ID, got.ID)
	assert.Len(t, got.WorkoutExercises, 3)
}

func contractCreateWorkoutUnknownExerciseIsAtomic(t *testing.T, newStore storeFactory) {
	store := newStore(t)
	ctx := context.Background()
	exercises := seedExercises(t, store)
	createUser(t, store)

	missing := uuid.NewString()
	_, err := store.CreateWorkout(ctx, testEmail, model.CreateWorkoutInput{
		Name: "Treino B",
		Exercises: []model.WorkoutExerciseInput{
			{ExerciseID: exercises[0].ID, Sets: 3, Reps: "10", RestSeconds: intPtr(60)},
			{ExerciseID: missing, Sets: 3, Reps: "10", RestSeconds: intPtr(60)},
		},
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), missing)

	assertNoWorkouts(t, store)
}

func contractCreateWorkoutWithoutUser(t *testing.T, newStore storeFactory) {
	store := newStore(t)
	exercises := seedExercises(t, store)

	_, err := store.CreateWorkout(context.Background(), testEmail, model.CreateWorkoutInput{
		Name:      "Treino C",
		Exercises: []model.WorkoutExerciseInput{{ExerciseID: exercises[0].ID, Sets: 1, Reps: "5", RestSeconds: intPtr(30)}},
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assertNoWorkouts(t, store)
}

func assertNoWorkouts(t *testing.T, store Store) {
	t.Helper()
	assert.Zero(t, countRows(t, store, "workouts"))
	assert.Zero(t, countRows(t, store, "workout_exercises"))
}

func contractListWorkoutsScopedToUser(t *testing.T, newStore storeFactory) {
	store := newStore(t)
	ctx := context.Background()
	exercises := seedExercises(t, store)
	createUser(t, store)
	_, err := store.UpsertProfile(ctx, "outro@example.com", model.ProfileInput{Name: "Caio", Age: 40, Weight: 90, Height: 1.8, IMC: 27.78})
	require.NoError(t, err)

	entry := []model.WorkoutExerciseInput{{ExerciseID: exercises[1].ID, Sets: 3, Reps: "10", RestSeconds: intPtr(45)}}
	mine, err := store.CreateWorkout(ctx, testEmail, model.CreateWorkoutInput{Name: "Meu treino", Exercises: entry})
	require.NoError(t, err)
	theirs, err := store.CreateWorkout(ctx, "outro@example.com", model.CreateWorkoutInput{Name: "Outro treino", Exercises: entry})
	require.NoError(t, err)

	workouts, err := store.ListWorkouts(ctx, testEmail)
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.Equal(t, mine.ID, workouts[0].ID)
	require.Len(t, workouts[0].WorkoutExercises, 1)
	assert.NotNil(t, workouts[0].WorkoutExercises[0].Exercise)

	_, err = store.GetWorkout(ctx, testEmail, theirs.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
