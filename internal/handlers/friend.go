package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/scream-jar-server/internal/logger"
	"github.com/sbilibin2017/scream-jar-server/internal/models"
	"github.com/sbilibin2017/scream-jar-server/internal/services"
)

//go:generate mockgen -source=friend.go -destination=mock_friend.go -package=handlers

// FriendAdder adds a user to a friend list.
type FriendAdder interface {
	AddFriend(ctx context.Context, myUserID, friendUserID string) (models.FriendOutcome, error)
}

// FriendDeleter removes a user from a friend list.
type FriendDeleter interface {
	DeleteFriend(ctx context.Context, myUserID, friendUserID string) (models.FriendOutcome, error)
}

// FriendRequest represents the JSON body of friend list edits
// swagger:model FriendRequest
type FriendRequest struct {
	// Owner of the friend list
	// required: true
	// default: u1
	MyUserID string `json:"myUserID"`

	// Friend to add or remove
	// required: true
	// default: u2
	FriendUserID string `json:"friendUserID"`
}

var friendOutcomeResponses = map[models.FriendOutcome]struct {
	status  int
	message string
}{
	models.FriendAdded:         {http.StatusOK, "Friend added successfully"},
	models.FriendAlreadyExists: {http.StatusOK, "Friend already exists"},
	models.FriendDeleted:       {http.StatusOK, "Friend deleted successfully"},
	models.FriendNotInList:     {http.StatusNotFound, "Friend not in list"},
}

type friendEditFunc func(ctx context.Context, myUserID, friendUserID string) (models.FriendOutcome, error)

// NewAddFriendHandler returns an HTTP handler that adds a friend.
// @Summary Add friend
// @Description Adding a friend twice is not an error. The friend is not required to exist.
// @Tags friends
// @Accept json
// @Produce json
// @Param request body handlers.FriendRequest true "Friend Request"
// @Success 200 {object} handlers.MessageResponse "Friend added successfully / Friend already exists"
// @Failure 400 {object} handlers.ErrorResponse "Missing data"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /add-friend [post]
func NewAddFriendHandler(svc FriendAdder) http.HandlerFunc {
	return newFriendEditHandler(svc.AddFriend)
}

// NewDeleteFriendHandler returns an HTTP handler that removes a friend.
// @Summary Delete friend
// @Tags friends
// @Accept json
// @Produce json
// @Param request body handlers.FriendRequest true "Friend Request"
// @Success 200 {object} handlers.MessageResponse "Friend deleted successfully"
// @Failure 400 {object} handlers.ErrorResponse "Missing data"
// @Failure 404 {object} handlers.MessageResponse "Friend not in list"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /delete-friend [delete]
func NewDeleteFriendHandler(svc FriendDeleter) http.HandlerFunc {
	return newFriendEditHandler(svc.DeleteFriend)
}

func newFriendEditHandler(edit friendEditFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FriendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Missing data")
			return
		}

		outcome, err := edit(r.Context(), req.MyUserID, req.FriendUserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		resp, ok := friendOutcomeResponses[outcome]
		if !ok {
			logger.Log.Errorw("unexpected friend outcome", "outcome", outcome.String())
			writeError(w, http.StatusInternalServerError, internalServerError)
			return
		}
		writeMessage(w, resp.status, resp.message)
	}
}

// RegisterFriendHandlers registers the friend list routes. Both routes should
// run inside a request transaction.
func RegisterFriendHandlers(r chi.Router, add, del http.HandlerFunc) {
	r.Post("/add-friend", add)
	r.Delete("/delete-friend", del)
}
