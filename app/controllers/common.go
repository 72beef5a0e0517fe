package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"connectly/app/services"
)

// sendJSON writes data as a JSON response with the given status.
func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// sendError maps a service error onto the HTTP error taxonomy. Every failure
// is terminal for the request; nothing here retries or recovers.
func sendError(w http.ResponseWriter, err error) {
	var verr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		sendJSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
	case errors.Is(err, services.ErrForbidden):
		sendJSON(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
	case errors.Is(err, services.ErrNotFound):
		sendJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.As(err, &verr):
		sendJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": verr.Fields})
	default:
		sendJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

// decodeJSON decodes the request body into v, reporting malformed payloads
// as a validation failure.
func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &services.ValidationError{Fields: map[string]string{"body": "invalid JSON"}}
	}
	return nil
}
