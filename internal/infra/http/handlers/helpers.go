package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/brickmate/leadbook/internal/usecase"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, errorBody{Code: code, Message: message})
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationBody struct {
	Code   string       `json:"code"`
	Errors []fieldError `json:"errors"`
}

func respondValidationErrors(w http.ResponseWriter, errs []usecase.ValidationError) {
	body := validationBody{Code: "validation_error"}
	for _, e := range errs {
		body.Errors = append(body.Errors, fieldError{Field: e.Field, Message: e.Message})
	}
	respondJSON(w, http.StatusBadRequest, body)
}
