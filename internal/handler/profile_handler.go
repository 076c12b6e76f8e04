package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"devconnect/internal/middleware"
	"devconnect/internal/repository"
	"devconnect/internal/service"
)

type ProfileRequest struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	Status         string `json:"status" validate:"required"`
	GithubUsername string `json:"githubUsername"`
	Skills         string `json:"skills" validate:"required"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

var profileMessages = map[string]FieldError{
	"Status": {Msg: "status is required", Param: "status"},
	"Skills": {Msg: "skills is required", Param: "skills"},
}

type ExperienceRequest struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Location    string `json:"location"`
	From        string `json:"from" validate:"required"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

var experienceMessages = map[string]FieldError{
	"Title":   {Msg: "Title is required", Param: "title"},
	"Company": {Msg: "Company is required", Param: "company"},
	"From":    {Msg: "From date is required", Param: "from"},
}

func (h *Handlers) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	profile, err := h.ProfileRepo.GetByUserID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Profile not found", http.StatusNotFound)
			return
		}
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, profile, http.StatusOK)
}

// UpsertProfile creates or updates the caller's profile in one logical
// operation.
func (h *Handlers) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if fieldErrors := h.validateRequest(req, profileMessages); fieldErrors != nil {
		WriteErrors(w, fieldErrors, http.StatusBadRequest)
		return
	}

	profile, err := h.ProfileService.UpsertProfile(r.Context(), userID, service.ProfileInput{
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		Status:         req.Status,
		GithubUsername: req.GithubUsername,
		Skills:         req.Skills,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		Linkedin:       req.Linkedin,
		Instagram:      req.Instagram,
	})
	if err != nil {
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, profile, http.StatusOK)
}

func (h *Handlers) GetProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.ProfileRepo.GetAll(r.Context())
	if err != nil {
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, profiles, http.StatusOK)
}

func (h *Handlers) GetProfileByUserID(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	profile, err := h.ProfileRepo.GetByUserID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Profile not found", http.StatusNotFound)
			return
		}
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, profile, http.StatusOK)
}

// DeleteAccount removes the caller's profile, posts and user.
func (h *Handlers) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	if err := h.ProfileService.DeleteAccount(r.Context(), userID); err != nil {
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, map[string]string{"msg": "User deleted"}, http.StatusOK)
}

func (h *Handlers) AddExperience(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	var req ExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if fieldErrors := h.validateRequest(req, experienceMessages); fieldErrors != nil {
		WriteErrors(w, fieldErrors, http.StatusBadRequest)
		return
	}

	profile, err := h.ProfileService.AddExperience(r.Context(), userID, service.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "No profile found", http.StatusNotFound)
			return
		}
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, profile, http.StatusOK)
}

func (h *Handlers) DeleteExperience(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	experienceID := mux.Vars(r)["experience_id"]

	profile, err := h.ProfileService.DeleteExperience(r.Context(), userID, experienceID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "No profile found", http.StatusNotFound)
			return
		}
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, profile, http.StatusOK)
}
