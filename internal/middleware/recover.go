package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/MassBabyGeek/TrilhaVital-backend/internal/logger"
	"github.com/MassBabyGeek/TrilhaVital-backend/internal/utils"
)

// Recover transforme un panic en 500 générique et log la stack
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.Error("panic on %s %s: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
				utils.Error(w, http.StatusInternalServerError, "Erro interno do servidor.", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
