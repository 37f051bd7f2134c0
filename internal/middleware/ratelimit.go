package middleware

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"digiraksha/internal/apperr"
	handlers "digiraksha/internal/handler"
	"digiraksha/internal/logger"
)

// NewRateLimit builds a per client IP limiter from a formatted rate such as
// "20-M".
func NewRateLimit(rate string) (mux.MiddlewareFunc, error) {
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("parse rate limit %q: %w", rate, err)
	}

	instance := limiter.New(memory.NewStore(), parsed)
	mw := stdlib.NewMiddleware(instance,
		stdlib.WithLimitReachedHandler(limitReached),
		stdlib.WithErrorHandler(limiterFailed),
	)

	return mw.Handler, nil
}

func limitReached(w http.ResponseWriter, r *http.Request) {
	logger.FromContext(r.Context()).WithField("path", r.URL.Path).Warn("rate limit reached")
	handlers.WriteError(w, "Too many requests", http.StatusTooManyRequests)
}

func limiterFailed(w http.ResponseWriter, r *http.Request, err error) {
	handlers.WriteAppError(w, r, apperr.Upstream("rate limiter store failed", err))
}
