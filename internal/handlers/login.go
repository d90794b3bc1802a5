package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/scream-jar-server/internal/services"
)

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, id, password string) error
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// User ID
	// required: true
	// default: u1
	ID string `json:"id"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Checks the password of a user. No token is issued.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.MessageResponse "Login successful"
// @Failure 400 {object} handlers.ErrorResponse "Missing Credentials"
// @Failure 401 {object} handlers.ErrorResponse "Invalid ID or password"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		err := svc.Login(r.Context(), req.ID, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				writeError(w, http.StatusBadRequest, "Missing Credentials")
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Invalid ID or password")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeMessage(w, http.StatusOK, "Login successful")
	}
}

// RegisterLoginHandler registers the route for user login
func RegisterLoginHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/login", h)
}
