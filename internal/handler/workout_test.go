package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	model "github.com/MassBabyGeek/TrilhaVital-backend/internal/models"
	"github.com/MassBabyGeek/TrilhaVital-backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWorkout(t *testing.T) {
	s := newServer(t)
	s.createProfile(t)
	exercises := s.exercises(t)

	body := fmt.Sprintf(`{"name":"  Treino A  ","exercises":[
		{"exerciseId":%q,"sets":4,"reps":"8-12","restSeconds":90},
		{"exerciseId":%q,"sets":3,"reps":"15","restSeconds":0}
	]}`, exercises[5].ID, exercises[0].ID)

	rec := s.do(t, http.MethodPost, "/workouts", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var workout model.Workout
	decode(t, rec, &workout)
	assert.NotEmpty(t, workout.ID)
	assert.Equal(t, "Treino A", workout.Name)
	require.Len(t, workout.WorkoutExercises, 2)

	first, second := workout.WorkoutExercises[0], workout.WorkoutExercises[1]
	assert.Equal(t, exercises[5].ID, first.ExerciseID)
	assert.Equal(t, 4, first.Sets)
	assert.Equal(t, "8-12", first.Reps)
	assert.Equal(t, 90, first.RestSeconds)
	require.NotNil(t, first.Exercise)
	assert.Equal(t, exercises[5].Name, first.Exercise.Name)
	assert.Equal(t, exercises[0].ID, second.ExerciseID)
	assert.Equal(t, 0, second.RestSeconds)

	rec = s.do(t, http.MethodGet, "/workouts/"+workout.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched model.Workout
	decode(t, rec, &fetched)
	assert.Equal(t, workout.ID, fetched.ID)
	assert.Len(t, fetched.WorkoutExercises, 2)

	rec = s.do(t, http.MethodGet, "/workouts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []model.Workout
	decode(t, rec, &list)
	assert.Len(t, list, 1)
}

func TestCreateWorkoutValidation(t *testing.T) {
	s := newServer(t)
	s.createProfile(t)
	id := s.exercises(t)[0].ID

	tests := []struct {
		name    string
		body    string
		field   string
		message string
	}{
		{"short name", fmt.Sprintf(`{"name":" ab ","exercises":[{"exerciseId":%q,"sets":3,"reps":"10","restSeconds":60}]}`, id),
			"name", "O nome do treino deve ter pelo menos 3 caracteres."},
		{"no exercises", `{"name":"Treino A","exercises":[]}`,
			"exercises", "O treino precisa ter pelo menos um exercício."},
		{"missing exercises", `{"name":"Treino A"}`,
			"exercises", "O treino precisa ter pelo menos um exercício."},
		{"zero sets", fmt.Sprintf(`{"name":"Treino A","exercises":[{"exerciseId":%q,"sets":0,"reps":"10","restSeconds":60}]}`, id),
			"exercises[0].sets", "O número de séries deve ser pelo menos 1."},
		{"empty reps", fmt.Sprintf(`{"name":"Treino A","exercises":[{"exerciseId":%q,"sets":3,"reps":"","restSeconds":60}]}`, id),
			"exercises[0].reps", "As repetições são obrigatórias."},
		{"negative rest", fmt.Sprintf(`{"name":"Treino A","exercises":[{"exerciseId":%q,"sets":3,"reps":"10","restSeconds":-1}]}`, id),
			"exercises[0].restSeconds", "O descanso não pode ser negativo."},
		{"missing rest", fmt.Sprintf(`{"name":"Treino A","exercises":[{"exerciseId":%q,"sets":3,"reps":"10"}]}`, id),
			"exercises[0].restSeconds", "O descanso é obrigatório."},
		{"bad exercise id", `{"name":"Treino A","exercises":[{"exerciseId":"42","sets":3,"reps":"10","restSeconds":60}]}`,
			"exercises[0].exerciseId", "ID do exercício inválido."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, "/workouts", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

			var body utils.ErrorResponse
			decode(t, rec, &body)
			assert.Equal(t, "Dados inválidos", body.Error)
			assert.Contains(t, body.Details[tt.field], tt.message)
		})
	}

	workouts, err := s.store.ListWorkouts(context.Background(), defaultEmail)
	require.NoError(t, err)
	assert.Empty(t, workouts)
}

func TestCreateWorkoutUnknownExerciseIsAtomic(t *testing.T) {
	s := newServer(t)
	s.createProfile(t)
	known := s.exercises(t)[0].ID

	body := fmt.Sprintf(`{"name":"Treino A","exercises":[
		{"exerciseId":%q,"sets":3,"reps":"10","restSeconds":60},
		{"exerciseId":%q,"sets":3,"reps":"10","restSeconds":60}
	]}`, known, uuid.NewString())

	rec := s.do(t, http.MethodPost, "/workouts", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	workouts, err := s.store.ListWorkouts(context.Background(), defaultEmail)
	require.NoError(t, err)
	assert.Empty(t, workouts)
}

func TestCreateWorkoutWithoutProfile(t *testing.T) {
	s := newServer(t)
	id := s.exercises(t)[0].ID

	body := fmt.Sprintf(`{"name":"Treino A","exercises":[{"exerciseId":%q,"sets":3,"reps":"10","restSeconds":60}]}`, id)
	rec := s.do(t, http.MethodPost, "/workouts", body)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Perfil não encontrado. Salve seu perfil antes de criar um treino."}`, rec.Body.String())
}

func TestGetWorkoutScopedToUser(t *testing.T) {
	s := newServer(t)
	s.createProfile(t)
	id := s.exercises(t)[0].ID

	body := fmt.Sprintf(`{"name":"Treino A","exercises":[{"exerciseId":%q,"sets":3,"reps":"10","restSeconds":60}]}`, id)
	rec := s.do(t, http.MethodPost, "/workouts", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	var workout model.Workout
	decode(t, rec, &workout)

	other := "bia@example.com"
	rec = s.do(t, http.MethodPost, "/profile", `{"name":"Bia","age":25,"weight":50,"height":1.6}`, "X-User-Email", other)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/workouts/"+workout.ID, "", "X-User-Email", other)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Treino não encontrado."}`, rec.Body.String())
}

func TestCreateWorkoutStorageFailure(t *testing.T) {
	s := newServerWithStore(t, failingStore{err: errBroken})

	body := fmt.Sprintf(`{"name":"Treino A","exercises":[{"exerciseId":%q,"sets":3,"reps":"10","restSeconds":60}]}`, uuid.NewString())
	rec := s.do(t, http.MethodPost, "/workouts", body)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
