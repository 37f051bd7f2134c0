package handlers

import (
	"net/http"
	"strings"

	"digiraksha/internal/models"
	"digiraksha/internal/repository"
	"digiraksha/internal/service"
)

const missingNotFound = "Missing person report not found"

type ReportMissingRequest struct {
	Name             string `form:"name" validate:"required"`
	Age              string `form:"age" validate:"required,number"`
	LastSeenLocation string `form:"last_seen_location" validate:"required"`
	Description      string `form:"description" validate:"required"`
	ReporterContact  string `form:"reporter_contact" validate:"required"`
}

type MissingPersonCreatedResponse struct {
	*models.MissingPerson
	Message       string  `json:"message"`
	ImageUploaded bool    `json:"image_uploaded"`
	ImageURL      *string `json:"image_url"`
}

func (h *Handlers) ReportMissingPerson(w http.ResponseWriter, r *http.Request) {
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

	req := ReportMissingRequest{
		Name:             trimmed(values, "name"),
		Age:              trimmed(values, "age"),
		LastSeenLocation: trimmed(values, "last_seen_location"),
		Description:      trimmed(values, "description"),
		ReporterContact:  trimmed(values, "reporter_contact"),
	}
	if err := h.validate(req); err != nil {
		WriteAppError(w, r, err)
		return
	}

	age, err := optionalInt(values, "age", 0)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	photo, err := h.readUpload(r, "photo", "person_photo")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}
	defer closeUpload(photo)

	person, outcome, err := h.MissingService.Report(r.Context(), user, service.ReportMissingInput{
		Name:             req.Name,
		Age:              age,
		LastSeenLocation: req.LastSeenLocation,
		Description:      req.Description,
		ReporterContact:  req.ReporterContact,
		Photo:            photo,
	})
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, MissingPersonCreatedResponse{
		MissingPerson: person,
		Message:       "Missing person reported successfully",
		ImageUploaded: outcome.Uploaded(),
		ImageURL:      outcome.URLPtr(),
	}, http.StatusCreated)
}

func (h *Handlers) ListMissingPersons(w http.ResponseWriter, r *http.Request) {
	page, err := readPage(r)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	query := r.URL.Query()
	persons, err := h.MissingService.List(r.Context(), repository.MissingPersonFilter{
		Page:   page,
		Search: query.Get("search"),
		Status: models.MissingPersonStatus(strings.TrimSpace(query.Get("status"))),
	})
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, newListResponse("missing_persons", persons, len(persons)), http.StatusOK)
}

func (h *Handlers) GetMissingPerson(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, missingNotFound)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	person, err := h.MissingService.Get(r.Context(), id)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, person, http.StatusOK)
}

func (h *Handlers) UpdateMissingPersonStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, missingNotFound)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	status, err := h.readStatus(w, r)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	if err := h.MissingService.UpdateStatus(r.Context(), id, models.MissingPersonStatus(status)); err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, MessageResponse{Message: "Missing person status updated successfully"}, http.StatusOK)
}
