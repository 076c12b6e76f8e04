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

type PostRequest struct {
	Text string `json:"text" validate:"required"`
}

var postMessages = map[string]FieldError{
	"Text": {Msg: "Text is required", Param: "text"},
}

// CreatePost creates a post carrying a snapshot of the author's name
// and avatar.
func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	var req PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if fieldErrors := h.validateRequest(req, postMessages); fieldErrors != nil {
		WriteErrors(w, fieldErrors, http.StatusBadRequest)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), userID, req.Text)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "User not found", http.StatusNotFound)
			return
		}
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

// GetPosts returns all posts, newest first.
func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostRepo.GetAll(r.Context())
	if err != nil {
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	post, err := h.PostRepo.GetByID(r.Context(), postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Post not found", http.StatusNotFound)
			return
		}
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	post, err := h.PostService.DeletePost(r.Context(), userID, postID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			WriteError(w, "Post not found", http.StatusNotFound)
		case errors.Is(err, service.ErrNotAuthor):
			WriteError(w, "Not authorized", http.StatusUnauthorized)
		default:
			WriteError(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) LikePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	likes, err := h.PostService.LikePost(r.Context(), userID, postID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			WriteError(w, "Post not found", http.StatusNotFound)
		case errors.Is(err, service.ErrAlreadyLiked):
			WriteError(w, "Post already liked", http.StatusBadRequest)
		default:
			WriteError(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, likes, http.StatusOK)
}

func (h *Handlers) UnlikePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	likes, err := h.PostService.UnlikePost(r.Context(), userID, postID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			WriteError(w, "Post not found", http.StatusNotFound)
		case errors.Is(err, service.ErrNotLiked):
			WriteError(w, "Post has not yet been liked", http.StatusBadRequest)
		default:
			WriteError(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, likes, http.StatusOK)
}

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	var req PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if fieldErrors := h.validateRequest(req, postMessages); fieldErrors != nil {
		WriteErrors(w, fieldErrors, http.StatusBadRequest)
		return
	}

	comments, err := h.PostService.AddComment(r.Context(), userID, postID, req.Text)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Post not found", http.StatusNotFound)
			return
		}
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, comments, http.StatusOK)
}

// DeleteComment removes a comment when both the comment id and the
// caller match its author.
func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	postID := vars["id"]
	commentID := vars["comment_id"]

	comments, err := h.PostService.DeleteComment(r.Context(), userID, postID, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Comment not found", http.StatusNotFound)
			return
		}
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, comments, http.StatusOK)
}
