package http

import (
	"net/http"

	"github.com/avolkov/reverso/internal/logger"
	"github.com/avolkov/reverso/internal/utils"
)

// errorResponse is the uniform failure envelope. Every non-2xx response
// body carries a short error label and a human-readable message, and
// nothing else: no stack traces, no internal identifiers.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// messageResponse is the success envelope for operations whose only result
// is an acknowledgement.
type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	if _, err := utils.WriteJSON(w, data, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, statusCode int, label, message string) {
	writeJSON(w, r, errorResponse{Error: label, Message: message}, statusCode)
}

// respondError maps a service error to its status class and writes the
// failure envelope. Unmapped errors are collapsed into a generic 500 so
// that provider internals never leak to the caller.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := mapError(err)
	writeJSON(w, r, body, status)
}
