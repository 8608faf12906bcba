package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/MassBabyGeek/TrilhaVital-backend/internal/utils"
)

// Context keys
type contextKey string

const emailContextKey = contextKey("email")

// IdentityHeader permet de choisir l'utilisateur courant en attendant une vraie authentification
const IdentityHeader = "X-User-Email"

// Identity injecte l'email de l'utilisateur courant dans le contexte:
// le header X-User-Email s'il est présent, sinon defaultEmail.
func Identity(defaultEmail string) func(http.Handler) http.Handler {
	defaultEmail = strings.ToLower(strings.TrimSpace(defaultEmail))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := defaultEmail
			if h := strings.TrimSpace(r.Header.Get(IdentityHeader)); h != "" {
				if !utils.ValidateVar(h, "email") {
					utils.Error(w, http.StatusBadRequest, "Email de identificação inválido.", nil)
					return
				}
				email = strings.ToLower(h)
			}

			next.ServeHTTP(w, r.WithContext(WithEmail(r.Context(), email)))
		})
	}
}

// WithEmail retourne un contexte portant l'email de l'utilisateur courant
func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailContextKey, email)
}

// GetEmailFromContext récupère l'email de l'utilisateur courant
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailContextKey).(string)
	return email, ok && email != ""
}
