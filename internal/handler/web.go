package handler

import (
	"errors"
	"net/http"

	"github.com/MassBabyGeek/TrilhaVital-backend/internal/database"
	model "github.com/MassBabyGeek/TrilhaVital-backend/internal/models"
	"github.com/MassBabyGeek/TrilhaVital-backend/internal/logger"
	"github.com/MassBabyGeek/TrilhaVital-backend/internal/web"
)

// ProfilePage affiche le formulaire de profil et la classification courante
func (h *Handler) ProfilePage(w http.ResponseWriter, r *http.Request) {
	email, ok := currentEmail(w, r)
	if !ok {
		return
	}

	user, err := h.Store.GetUserByEmail(r.Context(), email)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		logger.Error("profile page: %v", err)
		http.Error(w, internalError, http.StatusInternalServerError)
		return
	}

	h.render(w, web.PageProfile, web.NewProfilePage(user))
}

// WorkoutsPage affiche le catalogue et les entraînements existants
func (h *Handler) WorkoutsPage(w http.ResponseWriter, r *http.Request) {
	email, ok := currentEmail(w, r)
	if !ok {
		return
	}

	exercises, err := h.Store.ListExercises(r.Context())
	if err != nil {
		logger.Error("workouts page: %v", err)
		http.Error(w, internalError, http.StatusInternalServerError)
		return
	}

	workouts, err := h.Store.ListWorkouts(r.Context(), email)
	if errors.Is(err, database.ErrNotFound) {
		workouts, err = []model.Workout{}, nil
	}
	if err != nil {
		logger.Error("workouts page: %v", err)
		http.Error(w, internalError, http.StatusInternalServerError)
		return
	}

	h.render(w, web.PageWorkouts, web.NewWorkoutsPage(exercises, workouts))
}

func (h *Handler) render(w http.ResponseWriter, page string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.Pages.Render(w, page, data); err != nil {
		logger.Error("render %s: %v", page, err)
		http.Error(w, internalError, http.StatusInternalServerError)
	}
}
