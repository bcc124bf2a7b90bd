package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON encodes data as the response body with the given status.
// Responses carry applicant data, so they are marked as not cacheable.
// When encoding fails nothing but a 500 is written and the error is
// returned for the caller to log.
func WriteJSON(w http.ResponseWriter, data any, status int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("encoding %T response: %w", data, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)

	return w.Write(body)
}
