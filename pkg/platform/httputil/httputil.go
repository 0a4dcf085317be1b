// Package httputil holds the shared HTTP response helpers. Error responses
// carry the domain error code; internal error details never leave the server.
package httputil

import (
	"encoding/json"
	"net/http"

	dErrors "idverify/pkg/domain-errors"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into an HTTP error response. Internal
// errors expose only their code; every other code carries its message.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	status := dErrors.ToHTTPStatus(code)

	resp := errorResponse{Success: false, Error: string(code)}
	if code != dErrors.CodeInternal {
		resp.Message = dErrors.MessageOf(err)
	}
	WriteJSON(w, status, resp)
}
