package api

import (
	"net/http"

	"github.com/MassBabyGeek/TrilhaVital-backend/internal/config"
	"github.com/MassBabyGeek/TrilhaVital-backend/internal/handler"
	"github.com/MassBabyGeek/TrilhaVital-backend/internal/logger"
	"github.com/MassBabyGeek/TrilhaVital-backend/internal/middleware"
	"github.com/MassBabyGeek/TrilhaVital-backend/internal/utils"
	"github.com/gorilla/mux"
)

func SetupRouter(cfg *config.Config, h *handler.Handler, metrics *middleware.Metrics) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.Recover)
	r.Use(middleware.LoggerMiddleware)
	r.Use(metrics.Middleware)

	// Routes qui dépendent de l'utilisateur courant
	identified := r.NewRoute().Subrouter()
	identified.Use(middleware.Identity(cfg.DefaultUserEmail))

	// Pages
	identified.HandleFunc("/", h.ProfilePage).Methods(http.MethodGet)
	identified.HandleFunc("/treinos", h.WorkoutsPage).Methods(http.MethodGet)

	// Root - API documentation
	r.HandleFunc("/api", handler.RootHandler).Methods(http.MethodGet)

	// Exercises
	r.HandleFunc("/exercises", h.GetExercises).Methods(http.MethodGet)

	// Profile
	identified.HandleFunc("/profile", h.GetProfile).Methods(http.MethodGet)
	identified.HandleFunc("/profile", h.SaveProfile).Methods(http.MethodPost)
	r.HandleFunc("/bmi", h.PreviewBMI).Methods(http.MethodGet)

	// Workouts
	identified.HandleFunc("/workouts", h.GetWorkouts).Methods(http.MethodGet)
	identified.HandleFunc("/workouts", h.CreateWorkout).Methods(http.MethodPost)
	identified.HandleFunc("/workouts/{id}", h.GetWorkout).Methods(http.MethodGet)

	// Health check & metrics
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Warning("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		utils.Error(w, http.StatusNotFound, "Rota não encontrada.", nil)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.Error(w, http.StatusMethodNotAllowed, "Método não permitido.", nil)
	})

	return middleware.CORSMiddleware(cfg.CORSOrigin)(r)
}
