package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON writes data as the JSON body of a statusCode response.
//
// Responses are marked "Cache-Control: no-store": they carry sealed vaults,
// ownership proofs and account identifiers. When data cannot be marshalled
// nothing but a 500 is written and the marshal error is returned.
//
// Example usage:
//
//	if err := utils.WriteJSON(w, http.StatusCreated, metadata); err != nil {
//	    log.Err(err).Msg("failed to write response")
//	}
func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return fmt.Errorf("error marshalling response: %w", err)
	}

	header := w.Header()
	header.Set("Content-Type", "application/json")
	header.Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)

	if _, err = w.Write(body); err != nil {
		return fmt.Errorf("error writing response: %w", err)
	}
	return nil
}
