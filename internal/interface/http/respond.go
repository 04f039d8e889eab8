package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"flightcal-service/internal/domain/entity"
	"flightcal-service/pkg/utils"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error   string   `json:"error"`
	Code    int      `json:"code"`
	Message string   `json:"message,omitempty"`
	Kind    string   `json:"kind,omitempty"`
	Missing []string `json:"missing,omitempty"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteError writes a standardized error response
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Code:    statusCode,
		Message: message,
	})
}

// WriteServiceError maps domain errors onto HTTP statuses
func WriteServiceError(w http.ResponseWriter, err error) {
	var extractionErr *utils.ExtractionError
	switch {
	case errors.As(err, &extractionErr):
		status := http.StatusInternalServerError
		switch extractionErr.Kind {
		case utils.KindEmptyInput:
			status = http.StatusBadRequest
		case utils.KindMissingRequiredFields:
			status = http.StatusUnprocessableEntity
		}
		WriteJSON(w, status, ErrorResponse{
			Error:   http.StatusText(status),
			Code:    status,
			Message: extractionErr.Error(),
			Kind:    string(extractionErr.Kind),
			Missing: extractionErr.Missing,
		})
	case errors.Is(err, entity.ErrFlightNotFound):
		WriteError(w, http.StatusNotFound, err.Error())
	default:
		WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
