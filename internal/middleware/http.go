package middleware

import (
	"net/http"

	ghandlers "github.com/gorilla/handlers"

	"digiraksha/internal/logger"
)

// CORS lets the browser front end call the API from any origin.
func CORS() Middleware {
	return ghandlers.CORS(
		ghandlers.AllowedOrigins([]string{"*"}),
		ghandlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		}),
		ghandlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)
}

func Recovery() Middleware {
	return ghandlers.RecoveryHandler(
		ghandlers.RecoveryLogger(logger.Default()),
		ghandlers.PrintRecoveryStack(true),
	)
}

func Compress(next http.Handler) http.Handler {
	return ghandlers.CompressHandler(next)
}
