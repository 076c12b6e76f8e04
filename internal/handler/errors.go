package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

// ErrorResponse is the envelope for every validation and business
// failure: {"errors":[{"msg":..., "param":...}]}. Success bodies are
// the resource JSON directly.
type ErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	WriteErrors(w, []FieldError{{Msg: message}}, statusCode)
}

func WriteErrors(w http.ResponseWriter, errs []FieldError, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Errors: errs})
}

func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// validateRequest runs the declarative field constraints and translates
// validator failures into per-field errors before any handler logic
// executes. messages maps struct field names to the response entries.
func (h *Handlers) validateRequest(req interface{}, messages map[string]FieldError) []FieldError {
	err := h.Validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []FieldError{{Msg: "Invalid request"}}
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		if message, ok := messages[fieldError.Field()]; ok {
			fieldErrors = append(fieldErrors, message)
		} else {
			fieldErrors = append(fieldErrors, FieldError{Msg: fmt.Sprintf("%s is invalid", fieldError.Field())})
		}
	}

	return fieldErrors
}
