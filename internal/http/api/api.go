// Package api writes the uniform response envelope: every response is
// either {"success":true,"data":...} or {"success":false,"error":{...}}.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeEmailInUse = "EMAIL_IN_USE"
	CodeInternal   = "INTERNAL"
)

type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorEnvelope struct {
	Success bool      `json:"success"`
	Error   errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func Success(w http.ResponseWriter, status int, data any) {
	write(w, status, successEnvelope{Success: true, Data: data})
}

func Error(w http.ResponseWriter, status int, code, message string) {
	write(w, status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

// ValidationFailed reports field-level errors with a 400 status.
func ValidationFailed(w http.ResponseWriter, details any) {
	write(w, http.StatusBadRequest, errorEnvelope{Error: errorBody{
		Code:    CodeValidation,
		Message: "Invalid payload",
		Details: details,
	}})
}

func Internal(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, CodeInternal, "internal error")
}

func write(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
