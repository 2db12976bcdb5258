// Package calc holds the pieces shared by every calculator package:
// the input validation error and the JSON response helpers used by handlers.
package calc

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
)

// ErrInvalidInput marks a request that can never succeed without changing
// its input. Callers test for it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// Invalidf wraps ErrInvalidInput with a field-specific message.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// WriteJSON encodes v as the response body.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

// WriteError maps a calculation error onto an HTTP status.
func WriteError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Printf("calculation error: %v", err)
	http.Error(w, "Calculation error", http.StatusInternalServerError)
}

// DecodeJSON reads the request body into v and answers 400 on failure.
// It reports whether the handler may continue.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return false
	}
	return true
}
