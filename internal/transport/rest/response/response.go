// Package response writes the API's flat JSON shapes. Errors are
// {"error": "..."}; auth middleware failures add a secondary "message"
// field with login guidance.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rentaride/car-rental-api/internal/domain"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes {"error": msg}.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"error": msg})
}

// Message writes {"message": msg}.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"message": msg})
}

func statusOf(kind domain.ErrKind) int {
	switch kind {
	case domain.KindValidation, domain.KindConflict:
		return http.StatusBadRequest
	case domain.KindAuth:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// DomainError maps a domain error onto the wire. Unknown error types come
// out as a bare 500 so internals never leak.
func DomainError(w http.ResponseWriter, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	body := map[string]string{"error": de.Message}
	if de.Hint != "" {
		body["message"] = de.Hint
	}
	JSON(w, statusOf(de.Kind), body)
}
