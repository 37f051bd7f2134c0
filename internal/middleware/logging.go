package middleware

import (
	"net/http"

	"github.com/felixge/httpsnoop"

	"digiraksha/internal/logger"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger attaches a request-scoped logger to the context and logs
// every finished request.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, rlog := logger.ContextWithLogger(r.Context())
		w.Header().Set(requestIDHeader, logger.RequestIDFromContext(ctx))

		m := httpsnoop.CaptureMetrics(next, w, r.WithContext(ctx))

		entry := rlog.WithField("method", r.Method).
			WithField("path", r.URL.Path).
			WithField("status", m.Code).
			WithField("duration", m.Duration).
			WithField("bytes", m.Written)

		if m.Code >= http.StatusInternalServerError {
			entry.Warn("request served")
			return
		}
		entry.Info("request served")
	})
}
