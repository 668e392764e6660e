package http

import (
	"encoding/json"
	"net/http"

	"github.com/nextbite/nextbite/internal/validate"
)

// writeJSON encodes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeMessage writes the standard {success, message} response shape.
func writeMessage(w http.ResponseWriter, status int, success bool, message string) {
	writeJSON(w, status, map[string]any{
		"success": success,
		"message": message,
	})
}

// writeValidationFailed reports the per-field rule failures as a 400.
func writeValidationFailed(w http.ResponseWriter, errs []validate.FieldError) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"success": false,
		"message": "Validation failed",
		"errors":  errs,
	})
}

// writeServerError writes the generic 500 shape. The failure detail is
// included only outside production.
func writeServerError(w http.ResponseWriter, production bool, err error) {
	body := map[string]any{
		"success": false,
		"message": "Server error occurred",
	}
	if !production && err != nil {
		body["details"] = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, body)
}
