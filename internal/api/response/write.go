package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes data as the response body with the given status. Success
// payloads are written bare; only errors get the apierr envelope.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// NoContent writes a 204 for operations with nothing to return
// (removals, resets)
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
