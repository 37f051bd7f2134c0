package handlers

import (
	"net/http"

	"digiraksha/internal/models"
	"digiraksha/internal/service"
)

const incidentNotFound = "Incident not found"

type CreateIncidentRequest struct {
	IncidentType string `form:"incident_type" validate:"required"`
	Description  string `form:"description" validate:"required"`
	Location     string `form:"location" validate:"required"`
}

type IncidentCreatedResponse struct {
	*models.Incident
	Message       string  `json:"message"`
	ImageUploaded bool    `json:"image_uploaded"`
	ImageURL      *string `json:"image_url"`
}

func (h *Handlers) CreateIncident(w http.ResponseWriter, r *http.Request) {
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

	req := CreateIncidentRequest{
		IncidentType: trimmed(values, "incident_type"),
		Description:  trimmed(values, "description"),
		Location:     trimmed(values, "location"),
	}
	if err := h.validate(req); err != nil {
		WriteAppError(w, r, err)
		return
	}

	latitude, err := optionalFloat(values, "latitude")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}
	longitude, err := optionalFloat(values, "longitude")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	photo, err := h.readUpload(r, "photo", "incident_image")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}
	defer closeUpload(photo)

	incident, outcome, err := h.IncidentService.Create(r.Context(), user, service.CreateIncidentInput{
		Type:        models.IncidentType(req.IncidentType),
		Description: req.Description,
		Location:    req.Location,
		Latitude:    latitude,
		Longitude:   longitude,
		Photo:       photo,
	})
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, IncidentCreatedResponse{
		Incident:      incident,
		Message:       "Incident reported successfully",
		ImageUploaded: outcome.Uploaded(),
		ImageURL:      outcome.URLPtr(),
	}, http.StatusCreated)
}

func (h *Handlers) ListIncidents(w http.ResponseWriter, r *http.Request) {
	page, err := readPage(r)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	incidents, err := h.IncidentService.List(r.Context(), page)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, newListResponse("incidents", incidents, len(incidents)), http.StatusOK)
}

func (h *Handlers) GetIncident(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, incidentNotFound)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	incident, err := h.IncidentService.Get(r.Context(), id)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, incident, http.StatusOK)
}

func (h *Handlers) UpdateIncidentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, incidentNotFound)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	status, err := h.readStatus(w, r)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	if err := h.IncidentService.UpdateStatus(r.Context(), id, models.IncidentStatus(status)); err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, MessageResponse{Message: "Incident status updated successfully"}, http.StatusOK)
}
