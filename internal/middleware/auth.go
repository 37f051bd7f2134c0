package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"digiraksha/internal/apperr"
	"digiraksha/internal/auth"
	handlers "digiraksha/internal/handler"
	"digiraksha/internal/logger"
	"digiraksha/internal/service"
)

const notAuthenticatedMessage = "Not authenticated"

// Authenticate resolves the bearer token to a user and stores it in the
// request context. Requests without a valid token get 401.
func Authenticate(authService service.AuthService) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				w.Header().Set("WWW-Authenticate", "Bearer")
				handlers.WriteAppError(w, r, apperr.Unauthenticated(notAuthenticatedMessage, nil))
				return
			}

			user, err := authService.Authenticate(r.Context(), token)
			if err != nil {
				w.Header().Set("WWW-Authenticate", "Bearer")
				handlers.WriteAppError(w, r, err)
				return
			}

			ctx := auth.ContextWithUser(r.Context(), user)
			ctx = logger.ContextWithIdentity(ctx, user.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
