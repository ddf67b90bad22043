package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError maps the domain error taxonomy onto HTTP statuses. Transient
// store failures surface as 503 so clients know a retry may succeed;
// terminal business failures never do.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrUnknownCompany),
		errors.Is(err, domain.ErrUnknownCarType),
		errors.Is(err, sql.ErrNoRows):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrNoAvailability),
		errors.Is(err, domain.ErrReservationConflict):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrMalformedOrder),
		errors.Is(err, domain.ErrInvalidPeriod):
		status = http.StatusBadRequest
	case domain.IsTransient(err):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		logger.Error("Request failed", "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}
