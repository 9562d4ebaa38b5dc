package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// WriteJSON writes the payload as-is. Response bodies are the bare wire
// shapes the clients decode, not an envelope.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

// Fail writes the {error} body the clients' error ladder expects.
func Fail(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"error": message})
}
