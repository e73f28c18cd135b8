// Package response provides helpers for writing consistent JSON HTTP responses.
//
// Every handler in this application sends JSON back to the client
// (the print view is the one text/plain exception). Rather than
// repeating the same three lines (set header, set status, encode JSON)
// in every handler, we centralise them here.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/aanand-mishra/employee-dashboard/internal/validation"
)

// ─────────────────────────────────────────────────────────────────────────────
// Response is the standard envelope returned for error cases.
//
// Success responses may return any JSON shape (an employee, a list, stats…).
// Error responses always look like:
//
//	{ "status": "error", "error": "validation failed", "errors": { "email": "Email is required" } }
//
// "errors" is present only for form validation failures; it maps each
// offending field to the message shown beside it.
// ─────────────────────────────────────────────────────────────────────────────
type Response struct {
	Status string            `json:"status"`
	Error  string            `json:"error,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Status string constants for the envelope.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteJSON writes a JSON-encoded response with the given HTTP status code.
//
// IMPORTANT ORDER: Header() → WriteHeader() → body writes.
// Once WriteHeader is called (or the first Write), headers are locked.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any Go error into our standard Response shape.
// Use this for unexpected errors (storage failures, decode errors, etc.)
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// ValidationError turns a form's field → message map into a Response.
//
// Example output:
//
//	{ "status": "error", "error": "validation failed",
//	  "errors": { "fullName": "Full Name is required", "dob": "Date of Birth is required" } }
func ValidationError(errs validation.Errors) Response {
	return Response{
		Status: StatusError,
		Error:  validation.ErrValidationFailed.Error(),
		Errors: errs,
	}
}

// OK is the body for successful calls that have nothing else to return.
func OK() Response {
	return Response{Status: StatusOK}
}
