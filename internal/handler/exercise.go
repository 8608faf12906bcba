package handler

import (
	"net/http"

	"github.com/MassBabyGeek/TrilhaVital-backend/internal/utils"
)

// GetExercises liste le catalogue trié par groupe musculaire puis par nom
func (h *Handler) GetExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.Store.ListExercises(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, internalError, err)
		return
	}
	utils.JSON(w, http.StatusOK, exercises)
}
