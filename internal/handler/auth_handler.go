package handlers

import (
	"net/http"

	"digiraksha/internal/logger"
	"digiraksha/internal/models"
	"digiraksha/internal/service"
)

const tokenTypeBearer = "bearer"

type RegisterRequest struct {
	FirstName   string `form:"first_name" validate:"required"`
	MiddleName  string `form:"middle_name"`
	LastName    string `form:"last_name" validate:"required"`
	City        string `form:"city" validate:"required"`
	PhoneNumber string `form:"phone_number" validate:"required"`
	GovIDType   string `form:"gov_id_type" validate:"required"`
	GovIDNumber string `form:"gov_id_number" validate:"required"`
	Password    string `form:"password" validate:"required"`
}

type LoginRequest struct {
	GovIDNumber string `form:"gov_id_number" validate:"required"`
	Password    string `form:"password" validate:"required"`
}

type RegisterResponse struct {
	AccessToken   string       `json:"access_token"`
	TokenType     string       `json:"token_type"`
	Message       string       `json:"message"`
	UserID        string       `json:"user_id"`
	PhotoUploaded bool         `json:"photo_uploaded"`
	User          *models.User `json:"user"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	Message     string       `json:"message"`
	User        *models.User `json:"user"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	values, err := h.readValues(w, r)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	req := RegisterRequest{
		FirstName:   trimmed(values, "first_name"),
		MiddleName:  trimmed(values, "middle_name"),
		LastName:    trimmed(values, "last_name"),
		City:        trimmed(values, "city"),
		PhoneNumber: trimmed(values, "phone_number"),
		GovIDType:   trimmed(values, "gov_id_type"),
		GovIDNumber: trimmed(values, "gov_id_number"),
		Password:    values.Get("password"),
	}
	if err := h.validate(req); err != nil {
		WriteAppError(w, r, err)
		return
	}

	photo, err := h.readUpload(r, "photo")
	if err != nil {
		WriteAppError(w, r, err)
		return
	}
	defer closeUpload(photo)

	result, err := h.AuthService.Register(r.Context(), service.RegisterInput{
		FirstName:   req.FirstName,
		MiddleName:  req.MiddleName,
		LastName:    req.LastName,
		City:        req.City,
		PhoneNumber: req.PhoneNumber,
		GovIDType:   req.GovIDType,
		GovIDNumber: req.GovIDNumber,
		Password:    req.Password,
		Photo:       photo,
	})
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).WithField("userID", result.User.ID).Info("user registered")

	WriteJSON(w, RegisterResponse{
		AccessToken:   result.AccessToken,
		TokenType:     tokenTypeBearer,
		Message:       "User registered successfully",
		UserID:        result.User.ID,
		PhotoUploaded: result.Photo.Uploaded(),
		User:          result.User,
	}, http.StatusOK)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	values, err := h.readValues(w, r)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	req := LoginRequest{
		GovIDNumber: trimmed(values, "gov_id_number"),
		Password:    values.Get("password"),
	}
	if err := h.validate(req); err != nil {
		WriteAppError(w, r, err)
		return
	}

	user, token, err := h.AuthService.Login(r.Context(), req.GovIDNumber, req.Password)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteJSON(w, LoginResponse{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		Message:     "Login successful",
		User:        user,
	}, http.StatusOK)
}
