package handlers

import (
	"io"
	"net/http"

	"digiraksha/internal/logger"
)

const homePage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Digi-रक्षा</title></head>
<body>
<h1>Digi-रक्षा</h1>
<p>Disaster management API. See <a href="/health">/health</a> for status.</p>
</body>
</html>
`

type HealthResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Database string `json:"database"`
	Tables   int    `json:"tables,omitempty"`
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, homePage)
}

// HealthHandler reports healthy only while the database answers.
func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	count, err := h.HealthService.CountTables(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).WithError(err).Error("health check failed")
		WriteJSON(w, HealthResponse{
			Status:   "unhealthy",
			Message:  "Database is unreachable",
			Database: "error",
		}, http.StatusServiceUnavailable)
		return
	}

	WriteJSON(w, HealthResponse{
		Status:   "healthy",
		Message:  "Digi-रक्षा API is running successfully",
		Database: "ok",
		Tables:   count,
	}, http.StatusOK)
}
