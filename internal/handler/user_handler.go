package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"devconnect/internal/middleware"
	"devconnect/internal/repository"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=3"`
}

var registerMessages = map[string]FieldError{
	"Name":     {Msg: "Name is required", Param: "name"},
	"Email":    {Msg: "Please include a valid email", Param: "email"},
	"Password": {Msg: "Please enter a strong password", Param: "password"},
}

type TokenResponse struct {
	Token string `json:"token"`
}

// Register creates the user, derives the gravatar avatar, hashes the
// password and issues a signed token.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if fieldErrors := h.validateRequest(req, registerMessages); fieldErrors != nil {
		WriteErrors(w, fieldErrors, http.StatusBadRequest)
		return
	}

	token, err := h.AuthService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			WriteErrors(w, []FieldError{{Msg: "User already exists", Param: "email"}}, http.StatusBadRequest)
			return
		}
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, TokenResponse{Token: token}, http.StatusOK)
}

// UploadAvatar replaces the caller's avatar with an uploaded image.
func (h *Handlers) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "File is too large or malformed", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		WriteErrors(w, []FieldError{{Msg: "Avatar file is required", Param: "avatar"}}, http.StatusBadRequest)
		return
	}
	defer file.Close()

	user, err := h.UserService.UploadAvatar(r.Context(), userID, header.Filename, file, header.Size)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "User not found", http.StatusNotFound)
			return
		}
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, user, http.StatusOK)
}
