package handlers

import (
	"net/http"

	"digiraksha/internal/models"
	"digiraksha/internal/service"
)

type SOSCreatedResponse struct {
	*models.SOSAlert
	AlertID string `json:"alert_id"`
	Message string `json:"message"`
}

type MarkSafeResponse struct {
	Message        string `json:"message"`
	ResolvedAlerts int64  `json:"resolved_alerts"`
	SafeID         string `json:"safe_id"`
}

func (h *Handlers) CreateSOS(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	values, err := h.readValues(w, r)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	latitude, err := requiredFloat(values, "latitude")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}
	longitude, err := requiredFloat(values, "longitude")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	alert, err := h.SOSService.Create(r.Context(), user, service.CreateSOSInput{
		Latitude:            latitude,
		Longitude:           longitude,
		LocationDescription: trimmed(values, "location_description"),
		EmergencyType:       trimmed(values, "emergency_type"),
	})
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, SOSCreatedResponse{
		SOSAlert: alert,
		AlertID:  alert.ID,
		Message:  "SOS alert created successfully",
	}, http.StatusCreated)
}

func (h *Handlers) ListActiveSOS(w http.ResponseWriter, r *http.Request) {
	page, err := readPage(r)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	alerts, err := h.SOSService.ListActive(r.Context(), page)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, newListResponse("alerts", alerts, len(alerts)), http.StatusOK)
}

func (h *Handlers) NearbySOS(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	latitude, err := requiredFloat(query, "latitude")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}
	longitude, err := requiredFloat(query, "longitude")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}
	radius, err := optionalFloat(query, "radius_km")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	radiusKm := service.DefaultRadiusKm
	if radius != nil {
		radiusKm = *radius
	}

	alerts, err := h.SOSService.Nearby(r.Context(), latitude, longitude, radiusKm)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, newListResponse("alerts", alerts, len(alerts)), http.StatusOK)
}

// MarkSafe serves both /api/sos/safe and /api/safe.
func (h *Handlers) MarkSafe(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	values, err := h.readValues(w, r)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	latitude, err := requiredFloat(values, "latitude")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}
	longitude, err := requiredFloat(values, "longitude")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	result, err := h.SOSService.MarkSafe(r.Context(), user, service.MarkSafeInput{
		Latitude:  latitude,
		Longitude: longitude,
		Message:   trimmed(values, "message"),
	})
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, MarkSafeResponse{
		Message:        "Marked as safe successfully",
		ResolvedAlerts: result.ResolvedAlerts,
		SafeID:         result.Record.ID,
	}, http.StatusOK)
}

func (h *Handlers) UpdateSOSStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "SOS alert not found")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	status, err := h.readStatus(w, r)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	if err := h.SOSService.UpdateStatus(r.Context(), id, models.SOSStatus(status)); err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, MessageResponse{Message: "SOS alert status updated successfully"}, http.StatusOK)
}
