package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/scream-jar-server/internal/logger"
	"github.com/sbilibin2017/scream-jar-server/internal/middlewares"
)

// MessageResponse carries a human readable outcome
// swagger:model MessageResponse
type MessageResponse struct {
	// Outcome message
	// default: User saved successfully
	Message string `json:"message"`
}

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

const internalServerError = "Internal server error"

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, MessageResponse{Message: message})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeInternalError logs the cause with the request id and answers 500
// without exposing it.
func writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Log.Errorw("internal server error",
		"request_id", middlewares.RequestIDFromContext(r.Context()),
		"error", err,
	)
	writeError(w, http.StatusInternalServerError, internalServerError)
}
