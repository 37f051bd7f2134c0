package middleware

import (
	"net/http"
)

type Middleware func(http.Handler) http.Handler

// Chain wraps h with middlewares in order, so the last one runs first.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
