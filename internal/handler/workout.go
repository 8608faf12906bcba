package handler

import (
	"net/http"
	"strings"

	model "github.com/MassBabyGeek/TrilhaVital-backend/internal/models"
	"github.com/MassBabyGeek/TrilhaVital-backend/internal/utils"
	"github.com/gorilla/mux"
)

const msgWorkoutNotFound = "Treino não encontrado."

// CreateWorkout valide le corps puis crée l'entraînement et ses exercices en une transaction
func (h *Handler) CreateWorkout(w http.ResponseWriter, r *http.Request) {
	email, ok := currentEmail(w, r)
	if !ok {
		return
	}

	var input model.CreateWorkoutInput
	if err := utils.DecodeJSON(w, r, &input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Corpo JSON inválido.", err)
		return
	}
	input.Name = strings.TrimSpace(input.Name)

	details, err := utils.ValidateStruct(input)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, internalError, err)
		return
	}
	if details != nil {
		utils.ValidationFailed(w, details)
		return
	}

	workout, err := h.Store.CreateWorkout(r.Context(), email, input)
	if err != nil {
		storageError(w, err, "Perfil não encontrado. Salve seu perfil antes de criar um treino.")
		return
	}
	utils.JSON(w, http.StatusCreated, workout)
}

// GetWorkouts liste les entraînements de l'utilisateur courant, du plus récent au plus ancien
func (h *Handler) GetWorkouts(w http.ResponseWriter, r *http.Request) {
	email, ok := currentEmail(w, r)
	if !ok {
		return
	}

	workouts, err := h.Store.ListWorkouts(r.Context(), email)
	if err != nil {
		storageError(w, err, "Perfil não encontrado.")
		return
	}
	utils.JSON(w, http.StatusOK, workouts)
}

func (h *Handler) GetWorkout(w http.ResponseWriter, r *http.Request) {
	email, ok := currentEmail(w, r)
	if !ok {
		return
	}

	workout, err := h.Store.GetWorkout(r.Context(), email, mux.Vars(r)["id"])
	if err != nil {
		storageError(w, err, msgWorkoutNotFound)
		return
	}
	utils.JSON(w, http.StatusOK, workout)
}
