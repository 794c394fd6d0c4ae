// Package httpx carries the HTTP plumbing shared by every domain handler:
// the JSON response envelope, the domain-error to status-code mapping and
// the router middleware set.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tair/dineboard/internal/domain"
)

// Response is the JSON envelope for every API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RespondJSON writes v as the response body with the given status
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// RespondOK writes a success envelope
func RespondOK(w http.ResponseWriter, status int, message string, data interface{}) {
	RespondJSON(w, status, Response{Success: true, Message: message, Data: data})
}

// RespondError maps a domain error to its status code and writes an error
// envelope. Errors surface synchronously to the caller; every one of them
// is recoverable by correcting the input and retrying.
func RespondError(w http.ResponseWriter, err error) {
	RespondJSON(w, StatusFor(err), Response{Success: false, Error: err.Error()})
}

// StatusFor maps the domain error taxonomy to HTTP status codes
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrPreconditionFailed):
		return http.StatusPreconditionFailed
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
