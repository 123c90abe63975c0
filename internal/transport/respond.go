package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atelierdoces/backoffice/internal/domain/auth"
	"github.com/atelierdoces/backoffice/internal/domain/cake"
	"github.com/atelierdoces/backoffice/internal/domain/customer"
	"github.com/atelierdoces/backoffice/internal/domain/payment"
	"github.com/atelierdoces/backoffice/internal/domain/project"
	"github.com/atelierdoces/backoffice/internal/repository"
)

// ActionResult is the generic failure shape returned to forms and server
// actions.
type ActionResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	ErrorCode string `json:"error_code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeActionError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ActionResult{Success: false, Message: message, ErrorCode: code})
}

// writeDomainError maps domain sentinels to HTTP statuses and stable
// error codes.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, customer.ErrCustomerNotFound),
		errors.Is(err, project.ErrProjectNotFound),
		errors.Is(err, cake.ErrCakeNotFound),
		errors.Is(err, cake.ErrProjectNotFound),
		errors.Is(err, payment.ErrPaymentNotFound),
		errors.Is(err, payment.ErrProjectNotFound),
		errors.Is(err, project.ErrCustomerNotFound):
		writeActionError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, customer.ErrInvalidInput),
		errors.Is(err, project.ErrInvalidInput),
		errors.Is(err, cake.ErrInvalidInput),
		errors.Is(err, payment.ErrInvalidInput),
		errors.Is(err, project.ErrMalformedDate),
		errors.Is(err, auth.ErrInvalidInput):
		writeActionError(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, repository.ErrDuplicate):
		writeActionError(w, http.StatusConflict, "duplicate", err.Error())
	case errors.Is(err, customer.ErrHasProjects):
		writeActionError(w, http.StatusConflict, "has_projects", err.Error())
	case errors.Is(err, project.ErrInvalidTransition):
		writeActionError(w, http.StatusConflict, "invalid_transition", err.Error())
	case errors.Is(err, auth.ErrUnauthorized), errors.Is(err, auth.ErrInvalidCredentials):
		writeActionError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
	default:
		writeActionError(w, http.StatusInternalServerError, "internal", "internal error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeActionError(w, http.StatusBadRequest, "bad_request", "malformed request body")
		return false
	}
	return true
}
