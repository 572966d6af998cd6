package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"buxmate-backend/internal/domain"
	"buxmate-backend/internal/logger"
)

type envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Success: true, Data: data}); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError maps the domain error taxonomy onto status codes and
// human-readable messages. Anything unrecognized is a 500 with a generic
// message; the underlying error is logged, never surfaced.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, domain.ErrNotFound):
		status, message = http.StatusNotFound, "not found"
	case errors.Is(err, domain.ErrInvalidResponse):
		status, message = http.StatusBadRequest, "response must be ACCEPTED or DECLINED"
	case errors.Is(err, domain.ErrInvalidInput):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvitationExpired):
		status, message = http.StatusGone, "invitation has expired"
	case errors.Is(err, domain.ErrAlreadyResponded):
		status, message = http.StatusConflict, "invitation has already been responded to"
	case errors.Is(err, domain.ErrDuplicateInvitation):
		status, message = http.StatusConflict, "an invitation for this guest already exists"
	case errors.Is(err, domain.ErrConflict):
		status, message = http.StatusConflict, "conflict"
	case errors.Is(err, domain.ErrUnauthorized):
		status, message = http.StatusForbidden, "not allowed"
	case errors.Is(err, domain.ErrStorage):
		logger.Error("Storage failure", "error", err)
		status, message = http.StatusServiceUnavailable, "temporary storage failure, please retry"
	default:
		logger.Error("Unhandled error", "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(envelope{Success: false, Message: message}); encErr != nil {
		logger.Error("Failed to encode error response", "error", encErr)
	}
}

// writeFailure emits an explicit status and message, for handlers that need
// resource-specific wording.
func writeFailure(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Success: false, Message: message}); err != nil {
		logger.Error("Failed to encode error response", "error", err)
	}
}

func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.ErrInvalidInput
	}
	return nil
}
