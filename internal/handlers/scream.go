package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/scream-jar-server/internal/models"
	"github.com/sbilibin2017/scream-jar-server/internal/services"
)

//go:generate mockgen -source=scream.go -destination=mock_scream.go -package=handlers

// ScreamSaver stores a new scream.
type ScreamSaver interface {
	SaveScream(ctx context.Context, in models.ScreamInput) (int64, error)
}

// ScreamLoader lists the screams of a user.
type ScreamLoader interface {
	LoadScreams(ctx context.Context, userID string) ([]models.ScreamDB, error)
}

// ScreamRequest represents the JSON body for posting a scream
// swagger:model ScreamRequest
type ScreamRequest struct {
	// Author
	// required: true
	// default: u1
	UserID string `json:"userID"`

	// Category, 0 is a valid value
	// required: true
	// default: 2
	CategoryIndex *int `json:"categoryIndex"`

	// Text
	// required: true
	// default: AAAAH
	Content string `json:"content"`

	// Client timestamp, stored as is
	// required: true
	// default: 2024-01-01T10:00:00Z
	ScreamDate string `json:"screamDate"`
}

// SaveScreamResponse represents a stored scream
// swagger:model SaveScreamResponse
type SaveScreamResponse struct {
	// default: Scream saved
	Message string `json:"message"`

	// Generated scream id
	// default: 1
	ID int64 `json:"id"`
}

// NewSaveScreamHandler returns an HTTP handler that stores a scream.
// @Summary Save scream
// @Tags screams
// @Accept json
// @Produce json
// @Param request body handlers.ScreamRequest true "Scream Request"
// @Success 200 {object} handlers.SaveScreamResponse "Scream saved"
// @Failure 400 {object} handlers.ErrorResponse "Missing fields"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /screams [post]
func NewSaveScreamHandler(svc ScreamSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ScreamRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		id, err := svc.SaveScream(r.Context(), models.ScreamInput{
			UserID:        req.UserID,
			CategoryIndex: req.CategoryIndex,
			Content:       req.Content,
			ScreamDate:    req.ScreamDate,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrUnknownUser):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, SaveScreamResponse{Message: "Scream saved", ID: id})
	}
}

// NewLoadScreamsHandler returns an HTTP handler that lists the screams of a user in posting order.
// @Summary Load screams
// @Tags screams
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {array} models.ScreamDB
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /screams/{userID} [get]
func NewLoadScreamsHandler(svc ScreamLoader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		screams, err := svc.LoadScreams(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			if errors.Is(err, services.ErrValidation) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeInternalError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, screams)
	}
}

// RegisterScreamHandlers registers the scream routes
func RegisterScreamHandlers(r chi.Router, save, load http.HandlerFunc) {
	r.Post("/screams", save)
	r.Get("/screams/{userID}", load)
}
