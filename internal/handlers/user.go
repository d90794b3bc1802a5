package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/scream-jar-server/internal/models"
	"github.com/sbilibin2017/scream-jar-server/internal/services"
)

//go:generate mockgen -source=user.go -destination=mock_user.go -package=handlers

// UserLoader returns a stored user.
type UserLoader interface {
	LoadUser(ctx context.Context, id string) (*models.UserDB, error)
}

// UserExistenceChecker reports whether a user is stored.
type UserExistenceChecker interface {
	UserExists(ctx context.Context, id string) (bool, error)
}

// UsernameGetter returns the display name of a user.
type UsernameGetter interface {
	GetUsername(ctx context.Context, id string) (string, error)
}

// FriendSearcher returns the public profile of a user.
type FriendSearcher interface {
	FriendSearch(ctx context.Context, id string) (*models.FriendProfile, error)
}

// ExistsResponse represents the answer of the exists check
// swagger:model ExistsResponse
type ExistsResponse struct {
	// default: true
	Exists bool `json:"exists"`
}

// UsernameResponse represents the display name of a user
// swagger:model UsernameResponse
type UsernameResponse struct {
	// default: Alice
	Username string `json:"username"`
}

// NewLoadUserHandler returns an HTTP handler that loads a user by id.
// @Summary Load user
// @Description Returns id, username, wall color and friend list. The password hash is never returned.
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.FriendProfile "User"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{id} [get]
func NewLoadUserHandler(svc UserLoader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.LoadUser(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeUserLookupError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// NewUserExistsHandler returns an HTTP handler that checks if a user exists.
// @Summary User exists
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} handlers.ExistsResponse
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{id}/exists [get]
func NewUserExistsHandler(svc UserExistenceChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		exists, err := svc.UserExists(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeInternalError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, ExistsResponse{Exists: exists})
	}
}

// NewGetUsernameHandler returns an HTTP handler that returns the display name of a user.
// @Summary Get username
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} handlers.UsernameResponse
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{id}/username [get]
func NewGetUsernameHandler(svc UsernameGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, err := svc.GetUsername(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeUserLookupError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, UsernameResponse{Username: username})
	}
}

// NewFriendSearchHandler returns an HTTP handler that looks up a user before adding it as a friend.
// @Summary Friend search
// @Tags friends
// @Produce json
// @Param id query string true "User ID"
// @Success 200 {object} models.FriendProfile
// @Failure 400 {object} handlers.ErrorResponse "UserID not provided"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /friend-search [get]
func NewFriendSearchHandler(svc FriendSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		if id == "" {
			writeError(w, http.StatusBadRequest, "UserID not provided")
			return
		}

		profile, err := svc.FriendSearch(r.Context(), id)
		if err != nil {
			writeUserLookupError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, profile)
	}
}

func writeUserLookupError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeInternalError(w, r, err)
	}
}

// RegisterUserHandlers registers the user lookup routes
func RegisterUserHandlers(r chi.Router, load, exists, username http.HandlerFunc) {
	r.Get("/users/{id}", load)
	r.Get("/users/{id}/exists", exists)
	r.Get("/users/{id}/username", username)
}

// RegisterFriendSearchHandler registers the route for friend search
func RegisterFriendSearchHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/friend-search", h)
}
