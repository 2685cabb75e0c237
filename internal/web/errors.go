package web

import (
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/Munhboldn/happyboard/internal/happiness"
	"github.com/Munhboldn/happyboard/internal/logging"
)

// errorResponse is the JSON body for all error replies.
type errorResponse struct {
	Error  string `json:"error"`
	Action string `json:"action,omitempty"`
	Code   string `json:"code,omitempty"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).Error("failed to encode response",
			"error", err, "path", r.URL.Path)
	}
}

// respondError maps a technical error to a user-facing message and writes it.
// The original error is logged; the client sees the mapped message only.
func respondError(w http.ResponseWriter, r *http.Request, status int, err error) {
	msg := happiness.MapError(err)

	logging.FromContext(r.Context()).Warn("request failed",
		"status", status, "code", msg.Code, "error", err, "path", r.URL.Path)

	writeJSON(w, r, status, errorResponse{
		Error:  msg.Message,
		Action: msg.Action,
		Code:   msg.Code,
	})
}

// respondErrorMessage writes a plain error message without mapping.
func respondErrorMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, status, errorResponse{Error: message})
}
