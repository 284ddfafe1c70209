// ABOUTME: HTTP handlers for the activity feed endpoints
// ABOUTME: Exposes user activity, friend activity, whoami, and health checks

package handlers

import (
	"context"
	"net/http"

	"activity-viewer-api/api/dto/responses"
	"activity-viewer-api/core/domain"
	"activity-viewer-api/core/interfaces"
)

// ActivityService defines the methods needed from the activity service
type ActivityService interface {
	UserFeed(ctx context.Context, username string) (domain.EnrichedFeed, error)
	FriendFeed(ctx context.Context) (domain.EnrichedFeed, error)
	Whoami(ctx context.Context) (string, error)
}

// ActivityHandler handles activity-related HTTP requests
type ActivityHandler struct {
	activity ActivityService
	logger   interfaces.Logger
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activity ActivityService, logger interfaces.Logger) *ActivityHandler {
	return &ActivityHandler{
		activity: activity,
		logger:   logger,
	}
}

// RegisterRoutes registers all activity-related routes on the mux
func (h *ActivityHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /feed", h.UserFeed)
	mux.HandleFunc("GET /feed/friends", h.FriendFeed)
	mux.HandleFunc("GET /whoami", h.Whoami)
	mux.HandleFunc("GET /healthz", h.Health)
}

// UserFeed handles GET /feed?who=<username>. With no who parameter the feed
// of the authenticated caller is returned.
func (h *ActivityHandler) UserFeed(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("who")

	feed, err := h.activity.UserFeed(r.Context(), username)
	if err != nil {
		h.logError("user feed request failed", username, err)
		writeFeedError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, feed)
}

// FriendFeed handles GET /feed/friends for the authenticated caller.
func (h *ActivityHandler) FriendFeed(w http.ResponseWriter, r *http.Request) {
	feed, err := h.activity.FriendFeed(r.Context())
	if err != nil {
		h.logError("friend feed request failed", "", err)
		writeFeedError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, feed)
}

// Whoami handles GET /whoami, resolving the authenticated caller's username.
func (h *ActivityHandler) Whoami(w http.ResponseWriter, r *http.Request) {
	username, err := h.activity.Whoami(r.Context())
	if err != nil {
		h.logError("whoami request failed", "", err)
		writeFeedError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, responses.WhoamiResponse{Username: username})
}

// Health handles GET /healthz.
func (h *ActivityHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, responses.HealthResponse{Status: "ok"})
}

func (h *ActivityHandler) logError(msg, username string, err error) {
	if h.logger == nil {
		return
	}
	fields := map[string]interface{}{"error": err.Error()}
	if username != "" {
		fields["username"] = username
	}
	h.logger.Warn(msg, fields)
}
