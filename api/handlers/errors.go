// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"encoding/json"
	"net/http"

	"activity-viewer-api/api/dto/responses"
	"activity-viewer-api/core/domain"
	"activity-viewer-api/core/errors"
)

// writeJSON serializes v with the right content type. Encoding failures have
// already committed the status line, so they are swallowed.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeFeedError maps a feed-level domain error to an HTTP response. Upstream
// server failures surface as the whole-response sentinel so clients can tell
// "the upstream is down" apart from "this entry could not be resolved".
func writeFeedError(w http.ResponseWriter, err error) {
	switch {
	case errors.IsAuth(err):
		writeJSON(w, http.StatusUnauthorized, responses.ErrorResponse{
			Error:   "unauthorized",
			Message: "request requires an upstream token",
		})
	case errors.IsValidation(err):
		writeJSON(w, http.StatusBadRequest, responses.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
	case errors.IsNotFound(err):
		writeJSON(w, http.StatusNotFound, domain.SentinelNotAvailable)
	case errors.IsUpstreamServerError(err):
		writeJSON(w, http.StatusBadGateway, domain.SentinelServerError)
	case errors.IsExternalAPI(err):
		writeJSON(w, http.StatusBadGateway, domain.SentinelNotAvailable)
	default:
		writeJSON(w, http.StatusInternalServerError, responses.ErrorResponse{
			Error: "internal_error",
		})
	}
}
