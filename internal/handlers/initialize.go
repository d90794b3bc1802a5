package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=initialize.go -destination=mock_initialize.go -package=handlers

// Initializer creates the database schema.
type Initializer interface {
	Initialize(ctx context.Context) error
}

// NewInitializeHandler returns an HTTP handler that (re)creates the tables.
// @Summary Initialize schema
// @Description Creates the users and screams tables if they do not exist. Safe to call repeatedly.
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.MessageResponse "PostgreSQL tables initialized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /initialize [post]
func NewInitializeHandler(svc Initializer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Initialize(r.Context()); err != nil {
			writeInternalError(w, r, err)
			return
		}
		writeMessage(w, http.StatusOK, "PostgreSQL tables initialized")
	}
}

// RegisterInitializeHandler registers the route for schema initialization
func RegisterInitializeHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/initialize", h)
}
