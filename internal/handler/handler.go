package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MassBabyGeek/TrilhaVital-backend/internal/database"
	"github.com/MassBabyGeek/TrilhaVital-backend/internal/middleware"
	"github.com/MassBabyGeek/TrilhaVital-backend/internal/utils"
	"github.com/MassBabyGeek/TrilhaVital-backend/internal/web"
)

const internalError = "Erro interno do servidor."

// Handler regroupe les dépendances partagées par les endpoints
type Handler struct {
	Store database.Store
	Pages *web.Renderer
}

func New(store database.Store, pages *web.Renderer) *Handler {
	return &Handler{Store: store, Pages: pages}
}

// currentEmail retourne l'identité posée par middleware.Identity
func currentEmail(w http.ResponseWriter, r *http.Request) (string, bool) {
	email, ok := middleware.GetEmailFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Usuário não identificado.", nil)
		return "", false
	}
	return email, true
}

// storageError traduit une erreur du Store en réponse HTTP
func storageError(w http.ResponseWriter, err error, notFound string) {
	var ve *database.ValidationError
	switch {
	case errors.Is(err, database.ErrNotFound):
		utils.Error(w, http.StatusNotFound, notFound, err)
	case errors.As(err, &ve):
		utils.Error(w, http.StatusBadRequest, ve.Message, err)
	default:
		utils.Error(w, http.StatusInternalServerError, internalError, err)
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.Store.Ping(ctx); err != nil {
		utils.Error(w, http.StatusServiceUnavailable, "database unavailable", err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
