// Package domainerrors provides coded errors for the service layer.
//
// Stores and adapters return sentinel errors (pkg/platform/sentinel) for
// infrastructure facts; services translate those into coded domain errors
// that the transport layer can map onto HTTP statuses. Negative business
// verdicts (invalid document, failed liveness, no face match) are values,
// not errors, and never pass through this package.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies a domain error for transport mapping and callers.
type Code string

const (
	// CodeInvalidInput covers malformed or missing request fields. No
	// collaborator calls are made for these.
	CodeInvalidInput Code = "invalid_input"

	// CodeNotFound covers lookups for entities that do not exist.
	CodeNotFound Code = "not_found"

	// CodePreconditionFailed covers actions invoked before their
	// prerequisites hold, e.g. comparing faces with no document on record.
	// Distinct from a biometric failure by contract.
	CodePreconditionFailed Code = "precondition_failed"

	// CodeUnauthorized covers invalid or expired session tokens.
	CodeUnauthorized Code = "unauthorized"

	// CodeUnavailable covers collaborator calls that errored or timed out.
	// The caller may retry the whole action.
	CodeUnavailable Code = "unavailable"

	// CodeConflict covers concurrent-modification conflicts.
	CodeConflict Code = "conflict"

	// CodeInternal covers unexpected infrastructure failures.
	CodeInternal Code = "internal"
)

// Error is a coded domain error. It optionally wraps a cause.
type Error struct {
	Code    Code
	Message string
	cause   error
}

// New creates a coded domain error with no cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a coded domain error wrapping a cause.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// HasCode reports whether err is (or wraps) a domain error with the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal for
// errors that did not originate in the domain layer.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf extracts the caller-safe message from err. Non-domain errors
// yield a generic message so internals do not leak to clients.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return "internal error"
}

// ToHTTPStatus maps a domain error code onto an HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodePreconditionFailed:
		return http.StatusConflict
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeUnavailable:
		return http.StatusBadGateway
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
