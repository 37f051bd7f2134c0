package handlers

import (
	"net/http"
)

type PhotoResponse struct {
	PhotoURL string `json:"photo_url"`
	Message  string `json:"message"`
}

func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, user, http.StatusOK)
}

func (h *Handlers) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	if _, err := h.readValues(w, r); err != nil {
		WriteAppError(w, r, err)
		return
	}

	photo, err := h.readUpload(r, "photo")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}
	defer closeUpload(photo)

	url, err := h.UserService.UploadPhoto(r.Context(), user, photo)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, PhotoResponse{PhotoURL: url, Message: "Photo uploaded successfully"}, http.StatusOK)
}

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, err := readPage(r)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	users, err := h.UserService.List(r.Context(), page)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, newListResponse("users", users, len(users)), http.StatusOK)
}
