package model

import "time"

type Workout struct {
	ID               string            `json:"id" gorm:"primaryKey;type:text"`
	Name             string            `json:"name" gorm:"not null"`
	UserID           string            `json:"userId" gorm:"index;not null;type:text"`
	CreatedAt        time.Time         `json:"createdAt"`
	WorkoutExercises []WorkoutExercise `json:"workoutExercises" gorm:"foreignKey:WorkoutID;constraint:OnDelete:CASCADE"`
}

type WorkoutExercise struct {
	ID          string    `json:"id" gorm:"primaryKey;type:text"`
	WorkoutID   string    `json:"workoutId" gorm:"index;not null;type:text"`
	ExerciseID  string    `json:"exerciseId" gorm:"index;not null;type:text"`
	Position    int       `json:"position"`
	Sets        int       `json:"sets"`
	Reps        string    `json:"reps"`
	RestSeconds int       `json:"restSeconds"`
	Exercise    *Exercise `json:"exercise,omitempty" gorm:"foreignKey:ExerciseID;constraint:OnDelete:RESTRICT"`
}

// CreateWorkoutInput est le corps attendu par POST /workouts
type CreateWorkoutInput struct {
	Name      string                 `json:"name" validate:"min=3"`
	Exercises []WorkoutExerciseInput `json:"exercises" validate:"min=1,dive"`
}

type WorkoutExerciseInput struct {
	ExerciseID  string `json:"exerciseId" validate:"required,uuid"`
	Sets        int    `json:"sets" validate:"min=1"`
	Reps        string `json:"reps" validate:"required"`
	RestSeconds *int   `json:"restSeconds" validate:"required,min=0"`
}

// ExerciseIDs retourne les identifiants distincts référencés par l'entraînement
func (in CreateWorkoutInput) ExerciseIDs() []string {
	seen := make(map[string]struct{}, len(in.Exercises))
	ids := make([]string, 0, len(in.Exercises))
	for _, ex := range in.Exercises {
		if _, ok := seen[ex.ExerciseID]; ok {
			continue
		}
		seen[ex.ExerciseID] = struct{}{}
		ids = append(ids, ex.ExerciseID)
	}
	return ids
}
