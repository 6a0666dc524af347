package http

import (
	"encoding/json"
	"net/http"

	"library-backend/internal/domain"
	"library-backend/internal/logger"
)

// writeJSON writes payload with the success flag set, merging payload keys
// into the response envelope the way the API's clients expect.
func writeJSON(w http.ResponseWriter, status int, payload map[string]interface{}) {
	body := map[string]interface{}{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError maps a domain error onto an HTTP status. Expected failures carry
// their message; anything unclassified is logged and surfaced generically so
// internals never leak.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := err.Error()

	switch domain.KindOf(err) {
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindConflict:
		status = http.StatusConflict
	case domain.KindValidation:
		status = http.StatusBadRequest
	case domain.KindTransaction:
		status = http.StatusServiceUnavailable
		message = "operation could not be completed, please retry"
		logger.Error("Transaction failure", "path", r.URL.Path, "error", err)
	case domain.KindUnauthorized:
		status = http.StatusUnauthorized
	default:
		message = "internal server error"
		logger.Error("Unexpected error", "path", r.URL.Path, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}

func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.ErrInvalidInput
	}
	return nil
}
