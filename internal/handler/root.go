package handler

import (
	"net/http"

	"github.com/MassBabyGeek/TrilhaVital-backend/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "TrilhaVital API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"exercises": []map[string]string{
				{"method": "GET", "path": "/exercises", "description": "Catálogo de exercícios (grupo muscular, nome)"},
			},
			"profile": []map[string]string{
				{"method": "GET", "path": "/profile", "description": "Perfil do usuário atual com classificação do IMC"},
				{"method": "POST", "path": "/profile", "description": "Criar ou atualizar o perfil e recalcular o IMC"},
				{"method": "GET", "path": "/bmi?weight=&height=", "description": "Calcular o IMC sem salvar"},
			},
			"workouts": []map[string]string{
				{"method": "GET", "path": "/workouts", "description": "Treinos do usuário atual"},
				{"method": "POST", "path": "/workouts", "description": "Criar um treino com seus exercícios"},
				{"method": "GET", "path": "/workouts/{id}", "description": "Detalhe de um treino"},
			},
			"pages": []map[string]string{
				{"method": "GET", "path": "/", "description": "Página de perfil"},
				{"method": "GET", "path": "/treinos", "description": "Página de montagem de treinos"},
			},
			"system": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Health check"},
				{"method": "GET", "path": "/metrics", "description": "Métricas Prometheus"},
			},
		},
		"identity": "Header X-User-Email (opcional) define o usuário atual",
	}

	utils.JSON(w, http.StatusOK, routes)
}
