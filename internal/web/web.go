package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/MassBabyGeek/TrilhaVital-backend/internal/bmi"
	model "github.com/MassBabyGeek/TrilhaVital-backend/internal/models"
)

//go:embed templates/*.gohtml
var files embed.FS

const (
	PageProfile  = "profile.gohtml"
	PageWorkouts = "workouts.gohtml"
)

// Renderer garde les templates parsés au démarrage
type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"decimal": func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) },
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: map[string]*template.Template{}}
	for _, page := range []string{PageProfile, PageWorkouts} {
		t, err := template.New(page).Funcs(funcs).ParseFS(files, "templates/base.gohtml", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		r.pages[page] = t
	}
	return r, nil
}

// Render exécute la page dans un buffer pour ne rien écrire en cas d'erreur
func (r *Renderer) Render(w io.Writer, page string, data interface{}) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base.gohtml", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

type ProfilePage struct {
	Title          string
	User           *model.User
	IMC            *float64
	Classification bmi.Classification
}

// NewProfilePage prépare la page profil; user peut être nil si aucun profil n'existe
func NewProfilePage(user *model.User) ProfilePage {
	imc := user.IMCValue()
	return ProfilePage{
		Title:          "Meu Perfil de Saúde",
		User:           user,
		IMC:            imc,
		Classification: bmi.Classify(imc),
	}
}

type ExerciseGroup struct {
	MuscleGroup string
	Exercises   []model.Exercise
}

type WorkoutsPage struct {
	Title    string
	Groups   []ExerciseGroup
	Workouts []model.Workout
}

func NewWorkoutsPage(exercises []model.Exercise, workouts []model.Workout) WorkoutsPage {
	return WorkoutsPage{
		Title:    "Montar Treino",
		Groups:   GroupExercises(exercises),
		Workouts: workouts,
	}
}

// GroupExercises regroupe les exercices par groupe musculaire en conservant l'ordre reçu
func GroupExercises(exercises []model.Exercise) []ExerciseGroup {
	var groups []ExerciseGroup
	index := map[string]int{}
	for _, ex := range exercises {
		i, ok := index[ex.MuscleGroup]
		if !ok {
			i = len(groups)
			index[ex.MuscleGroup] = i
			groups = append(groups, ExerciseGroup{MuscleGroup: ex.MuscleGroup})
		}
		groups[i].Exercises = append(groups[i].Exercises, ex)
	}
	return groups
}
