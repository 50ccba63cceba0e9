// ABOUTME: Shared JSON response helpers for all handlers
// ABOUTME: Writes bodies with a consistent content type and error shape

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/hedsouza/bigbmeetup/api/dto/responses"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	// Encoding a DTO built from our own types does not fail; the status
	// line is already out by now anyway.
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, responses.ErrorResponse{Error: message, Details: details})
}
