package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/scream-jar-server/internal/services"
)

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, id, username, password, wallColor string) error
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// User ID chosen by the client
	// required: true
	// default: u1
	ID string `json:"id"`

	// Display name
	// required: true
	// default: Alice
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Wall color
	// required: true
	// default: #ffffff
	WallColor string `json:"wallColor"`
}

// NewRegisterHandler returns an HTTP handler that creates or updates a user with a password.
// @Summary Register user
// @Description Creates the user or updates name, password and wall color of an existing one. The friend list is kept.
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.RegisterRequest true "Register Request"
// @Success 200 {object} handlers.MessageResponse "User saved successfully"
// @Failure 400 {object} handlers.ErrorResponse "Missing fields"
// @Failure 409 {object} handlers.ErrorResponse "id already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		err := svc.Register(r.Context(), req.ID, req.Username, req.Password, req.WallColor)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrUserConflict):
				writeError(w, http.StatusConflict, "id already exists")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeMessage(w, http.StatusOK, "User saved successfully")
	}
}

// RegisterRegisterHandler registers the route for user registration
func RegisterRegisterHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/users", h)
}
