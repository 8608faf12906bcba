package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MassBabyGeek/TrilhaVital-backend/internal/bmi"
	model "github.com/MassBabyGeek/TrilhaVital-backend/internal/models"
	"github.com/MassBabyGeek/TrilhaVital-backend/internal/utils"
)

const (
	msgRequiredFields = "Todos os campos são obrigatórios."
	msgInvalidAge     = "Idade inválida."
	msgInvalidWeight  = "Peso inválido."
	msgInvalidHeight  = "Altura inválida."
	msgOutOfRange     = "Valores fora do intervalo permitido."
)

type profileRequest struct {
	Name   string           `json:"name"`
	Email  string           `json:"email"`
	Age    utils.FormNumber `json:"age"`
	Weight utils.FormNumber `json:"weight"`
	Height utils.FormNumber `json:"height"`
}

// GetProfile retourne l'utilisateur courant avec son profil et sa classification
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	email, ok := currentEmail(w, r)
	if !ok {
		return
	}

	user, err := h.Store.GetUserByEmail(r.Context(), email)
	if err != nil {
		storageError(w, err, "Perfil não encontrado.")
		return
	}

	user.Classify()
	utils.Data(w, http.StatusOK, user)
}

// SaveProfile crée ou met à jour le profil de l'utilisateur courant et recalcule l'IMC
func (h *Handler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	email, ok := currentEmail(w, r)
	if !ok {
		return
	}

	var req profileRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Corpo JSON inválido.", err)
		return
	}

	if req.Email != "" {
		if !utils.ValidateVar(req.Email, "email") {
			utils.Error(w, http.StatusBadRequest, "Email inválido.", nil)
			return
		}
		if !strings.EqualFold(strings.TrimSpace(req.Email), email) {
			utils.Error(w, http.StatusBadRequest, "O email não corresponde ao usuário atual.", nil)
			return
		}
	}

	input, msg := parseProfile(req)
	if msg != "" {
		utils.Error(w, http.StatusBadRequest, msg, nil)
		return
	}

	user, err := h.Store.UpsertProfile(r.Context(), email, input)
	if err != nil {
		storageError(w, err, "Perfil não encontrado.")
		return
	}

	user.Classify()
	utils.Data(w, http.StatusOK, user)
}

// parseProfile valide et convertit le formulaire; msg est vide si tout est valide
func parseProfile(req profileRequest) (model.ProfileInput, string) {
	var in model.ProfileInput

	in.Name = strings.TrimSpace(req.Name)
	if in.Name == "" || req.Age.Empty() || req.Weight.Empty() || req.Height.Empty() {
		return in, msgRequiredFields
	}

	age, err := req.Age.Int()
	if err != nil || age <= 0 {
		return in, msgInvalidAge
	}
	weight, err := req.Weight.Float()
	if err != nil || weight <= 0 {
		return in, msgInvalidWeight
	}
	height, err := req.Height.Float()
	if err != nil || height <= 0 {
		return in, msgInvalidHeight
	}

	in.Age, in.Weight, in.Height = age, weight, height
	details, err := utils.ValidateStruct(in)
	switch {
	case err != nil:
		return in, msgRequiredFields
	case details["Age"] != nil:
		return in, msgInvalidAge
	case details["Weight"] != nil:
		return in, msgInvalidWeight
	case details["Height"] != nil:
		return in, msgInvalidHeight
	case details != nil:
		return in, msgRequiredFields
	}

	imc, err := bmi.Compute(weight, height)
	if err != nil {
		return in, msgInvalidHeight
	}
	in.IMC = imc
	return in, ""
}

type bmiResponse struct {
	IMC            float64            `json:"imc"`
	Classification bmi.Classification `json:"classification"`
}

// PreviewBMI calcule l'IMC et la classification sans rien enregistrer
func (h *Handler) PreviewBMI(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	weight, err := utils.FormNumber{Raw: strings.TrimSpace(q.Get("weight"))}.Float()
	if err != nil || weight <= 0 {
		utils.Error(w, http.StatusBadRequest, msgInvalidWeight, nil)
		return
	}
	height, err := utils.FormNumber{Raw: strings.TrimSpace(q.Get("height"))}.Float()
	if err != nil {
		utils.Error(w, http.StatusBadRequest, msgInvalidHeight, nil)
		return
	}

	imc, err := bmi.Compute(weight, height)
	if errors.Is(err, bmi.ErrOutOfRange) {
		utils.Error(w, http.StatusBadRequest, msgOutOfRange, err)
		return
	}
	if err != nil {
		utils.Error(w, http.StatusBadRequest, msgInvalidHeight, err)
		return
	}
	utils.JSON(w, http.StatusOK, bmiResponse{IMC: imc, Classification: bmi.Classify(&imc)})
}
