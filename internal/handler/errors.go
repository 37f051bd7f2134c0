package handlers

import (
	"encoding/json"
	"net/http"

	"digiraksha/internal/apperr"
	"digiraksha/internal/logger"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	WriteJSON(w, ErrorResponse{Detail: message}, statusCode)
}

func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteAppError maps err to its status and client-safe message. Upstream
// causes are logged, never returned.
func WriteAppError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.HTTPStatus(err)

	rlog := logger.FromContext(r.Context()).WithError(err).WithField("status", status)
	if status >= http.StatusInternalServerError {
		rlog.Error("request failed")
	} else {
		rlog.Debug("request rejected")
	}

	WriteError(w, apperr.PublicMessage(err), status)
}
