package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// envelope is the response shape of the public form endpoints.
type envelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Error   string   `json:"error,omitempty"`
	Details []string `json:"details,omitempty"`
}

// writeJSON encodes into a buffer first so a failed encode never leaves a
// half-written 200.
func writeJSON(w http.ResponseWriter, status int, v any, logger *zap.Logger) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		if logger != nil {
			logger.Error("encoding response", zap.Error(err))
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil && logger != nil {
		logger.Warn("writing response", zap.Error(err))
	}
}
