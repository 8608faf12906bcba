package utils

import (
	"encoding/json"
	"net/http"

	"github.com/MassBabyGeek/TrilhaVital-backend/internal/logger"
)

// ErrorResponse est le corps renvoyé pour toute erreur
type ErrorResponse struct {
	Error   string              `json:"error"`
	Details map[string][]string `json:"details,omitempty"`
}

// DataResponse enveloppe une ressource sous la clé "data"
type DataResponse struct {
	Data interface{} `json:"data"`
}

// JSON encode payload avant d'écrire le status: un payload non encodable donne un 500 lisible
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.Error("encode response: %v", err)
		status = http.StatusInternalServerError
		body, _ = json.Marshal(ErrorResponse{Error: "Erro interno do servidor."})
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		logger.Error("write response: %v", err)
	}
}

// Data renvoie {"data": payload} avec le status donné
func Data(w http.ResponseWriter, status int, payload interface{}) {
	JSON(w, status, DataResponse{Data: payload})
}

// Error renvoie un message d'erreur lisible. err n'est jamais exposé au client, seulement loggé.
func Error(w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		logger.Error("[%d] %s: %v", status, message, err)
	} else {
		logger.Warning("[%d] %s", status, message)
	}
	JSON(w, status, ErrorResponse{Error: message})
}

// ValidationFailed renvoie un 400 avec le détail par champ
func ValidationFailed(w http.ResponseWriter, details map[string][]string) {
	logger.Warning("[%d] invalid payload: %v", http.StatusBadRequest, details)
	JSON(w, http.StatusBadRequest, ErrorResponse{Error: "Dados inválidos", Details: details})
}
