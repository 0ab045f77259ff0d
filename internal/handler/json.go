package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// successEnvelope is the uniform success response body. Data is omitted
// when there is nothing to return.
type successEnvelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// errorEnvelope is the uniform error response body.
type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeJSON sends a JSON response with the given status code and body.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("write JSON response", "error", err)
	}
}

// writeSuccess sends the success envelope.
func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, successEnvelope{Message: message, Data: data})
}

// writeError sends the error envelope with an error category and detail.
func writeError(w http.ResponseWriter, status int, category, message string) {
	writeJSON(w, status, errorEnvelope{Error: category, Message: message})
}

// writeNotFound sends a not-found-style response: the success envelope
// shape with no data. Ownership failures reuse it so that non-owners
// cannot tell a forbidden post from a missing one.
func writeNotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, successEnvelope{Message: message})
}

// writeInternalError sends the generic 500 response and logs the cause.
func writeInternalError(w http.ResponseWriter, context string, err error) {
	slog.Error(context, "error", err)
	writeError(w, http.StatusInternalServerError, "Internal Error", "An unexpected error occurred. Please try again.")
}

// readJSON decodes the request body into the given destination.
func readJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
