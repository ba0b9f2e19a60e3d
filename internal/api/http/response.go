package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator"

	"rentafleet-backend/internal/domain"
	"rentafleet-backend/internal/logger"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Data   any    `json:"data,omitempty"`
}

const (
	statusOK    = "OK"
	statusError = "Error"
)

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(Response{Status: statusOK, Data: data}); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(Response{Status: statusError, Error: msg}); err != nil {
		logger.Error("Failed to encode error response", "error", err)
	}
}

// writeDomainError maps domain errors onto HTTP status codes. Unknown errors
// become a 500 with a generic message so internals never leak to clients.
func writeDomainError(w http.ResponseWriter, err error) {
	var statusErr *domain.VehicleStatusError
	var conflictErr *domain.PeriodConflictError
	var integrityErr *domain.IntegrityError

	switch {
	case errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrEmployeeNotFound),
		errors.Is(err, domain.ErrVehicleNotFound),
		errors.Is(err, domain.ErrRentalNotFound),
		errors.Is(err, domain.ErrMaintenanceNotFound),
		errors.Is(err, domain.ErrFineNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidDateRange):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.As(err, &statusErr), errors.As(err, &conflictErr), errors.As(err, &integrityErr):
		writeError(w, http.StatusConflict, err.Error())
	default:
		logger.Error("Unhandled error in request", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// writeValidationError flattens validator violations into one readable line.
func writeValidationError(w http.ResponseWriter, errs validator.ValidationErrors) {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			msgs = append(msgs, "field "+e.Field()+" is required")
		case "email":
			msgs = append(msgs, "field "+e.Field()+" must be a valid email")
		case "dni":
			msgs = append(msgs, "field "+e.Field()+" must be an 8-digit document number")
		case "plate":
			msgs = append(msgs, "field "+e.Field()+" must match ABC-123 or AB-123-CD")
		case "dateformat":
			msgs = append(msgs, "field "+e.Field()+" must be a YYYY-MM-DD date")
		default:
			msgs = append(msgs, "field "+e.Field()+" is invalid")
		}
	}
	writeError(w, http.StatusUnprocessableEntity, strings.Join(msgs, ", "))
}
