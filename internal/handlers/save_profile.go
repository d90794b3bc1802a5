package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/scream-jar-server/internal/services"
)

//go:generate mockgen -source=save_profile.go -destination=mock_save_profile.go -package=handlers

// ProfileSaver stores users that have no password.
type ProfileSaver interface {
	SaveProfile(ctx context.Context, id, username, wallColor string) error
}

// ProfileRequest represents the JSON body for saving a user without a password
// swagger:model ProfileRequest
type ProfileRequest struct {
	// required: true
	// default: guest1
	ID string `json:"id"`

	// required: true
	// default: Guest
	Username string `json:"username"`

	// required: true
	// default: #000000
	WallColor string `json:"wallColor"`
}

// NewSaveProfileHandler returns an HTTP handler that upserts a user without touching its password.
// @Summary Save user without password
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.ProfileRequest true "Profile Request"
// @Success 200 {object} handlers.MessageResponse "User saved (no password)"
// @Failure 400 {object} handlers.ErrorResponse "Missing fields"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/no-password [post]
func NewSaveProfileHandler(svc ProfileSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := svc.SaveProfile(r.Context(), req.ID, req.Username, req.WallColor); err != nil {
			if errors.Is(err, services.ErrValidation) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeInternalError(w, r, err)
			return
		}

		writeMessage(w, http.StatusOK, "User saved (no password)")
	}
}

// RegisterSaveProfileHandler registers the route for saving users without a password
func RegisterSaveProfileHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/users/no-password", h)
}
