package handlers

import (
	"net/http"
	"strings"

	"digiraksha/internal/models"
	"digiraksha/internal/service"
)

const postNotFound = "Community post not found"

type CreatePostRequest struct {
	Category string `form:"category" validate:"required"`
	Message  string `form:"message" validate:"required"`
	Location string `form:"location"`
}

// PostCreatedResponse adds the upload flag to the stored post. The post's
// own message and image_url fields are the response's.
type PostCreatedResponse struct {
	*models.CommunityPost
	ImageUploaded bool `json:"image_uploaded"`
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
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

	req := CreatePostRequest{
		Category: trimmed(values, "category"),
		Message:  trimmed(values, "message"),
		Location: trimmed(values, "location"),
	}
	if err := h.validate(req); err != nil {
		WriteAppError(w, r, err)
		return
	}

	photo, err := h.readUpload(r, "photo", "post_image")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}
	defer closeUpload(photo)

	post, outcome, err := h.CommunityService.Create(r.Context(), user, service.CreatePostInput{
		Category: models.PostCategory(req.Category),
		Message:  req.Message,
		Location: req.Location,
		Photo:    photo,
	})
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, PostCreatedResponse{
		CommunityPost: post,
		ImageUploaded: outcome.Uploaded(),
	}, http.StatusCreated)
}

func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	page, err := readPage(r)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	category := models.PostCategory(strings.TrimSpace(r.URL.Query().Get("category")))
	posts, err := h.CommunityService.List(r.Context(), category, page)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, newListResponse("posts", posts, len(posts)), http.StatusOK)
}

func (h *Handlers) Feed(w http.ResponseWriter, r *http.Request) {
	feed, err := h.CommunityService.Feed(r.Context())
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, newListResponse("posts", feed, len(feed)), http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, postNotFound)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	post, err := h.CommunityService.Get(r.Context(), id)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	id, err := pathID(r, "Community post not found or you don't have permission to delete it")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	if err := h.CommunityService.Delete(r.Context(), user, id); err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, MessageResponse{Message: "Community post deleted successfully"}, http.StatusOK)
}
