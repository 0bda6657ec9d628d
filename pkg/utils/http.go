package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

func WriteJSON(w http.ResponseWriter, payload any, code int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}

func DecodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// ErrorResponse describes a standard error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Error   string            `json:"error,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Fields  map[string]any    `json:"fields,omitempty"`
}

func WriteError(w http.ResponseWriter, message, reason string, code int) error {
	return WriteJSON(w, ErrorResponse{Message: message, Error: reason}, code)
}

// WriteErrorFields is WriteError with the structured details of the failure.
func WriteErrorFields(w http.ResponseWriter, message, reason string, fields map[string]any, code int) error {
	return WriteJSON(w, ErrorResponse{Message: message, Error: reason, Fields: fields}, code)
}

// WriteValidationError reports field-level input errors
func WriteValidationError(w http.ResponseWriter, err error) error {
	res := ErrorResponse{
		Message: "invalid request",
		Error:   "INVALID_INPUT",
		Errors:  make(map[string]string),
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, err := range ve {
			res.Errors[err.Field()] = err.Tag()
		}
	}

	return WriteJSON(w, res, http.StatusBadRequest)
}
