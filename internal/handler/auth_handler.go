package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"devconnect/internal/middleware"
	"devconnect/internal/service"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

var loginMessages = map[string]FieldError{
	"Email":    {Msg: "Email is required", Param: "email"},
	"Password": {Msg: "Password is required", Param: "password"},
}

// Login authenticates a user and issues a signed token. Unknown email
// and wrong password produce the same response.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if fieldErrors := h.validateRequest(req, loginMessages); fieldErrors != nil {
		WriteErrors(w, fieldErrors, http.StatusBadRequest)
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			WriteError(w, "Invalid credentials", http.StatusBadRequest)
			return
		}
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, TokenResponse{Token: token}, http.StatusOK)
}

// GetCurrentUser returns the authenticated user without the password
// hash.
func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	user, err := h.UserRepo.GetUserByID(r.Context(), userID)
	if err != nil {
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, user, http.StatusOK)
}
