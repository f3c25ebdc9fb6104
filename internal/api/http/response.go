package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"homestay-booking-backend/internal/engine"
	"homestay-booking-backend/internal/logger"
	"homestay-booking-backend/internal/repository"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError maps domain errors onto HTTP statuses. Unknown errors are logged
// and returned as an opaque 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, engine.ErrInvalidRange):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, engine.ErrNotAvailable):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "property is not available for the selected dates"})
	case errors.Is(err, engine.ErrNotCancellable):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "booking can no longer be cancelled"})
	case errors.Is(err, engine.ErrInvalidTransition):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, engine.ErrReferenceCollision):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "could not allocate a booking reference, try again"})
	case errors.Is(err, repository.ErrDuplicateReview):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "booking already has a review"})
	default:
		logger.Error("Request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}
