// ABOUTME: Response DTOs for activity feed API endpoints
// ABOUTME: Provides structured error and status responses with JSON serialization

package responses

// ErrorResponse represents an error in API responses
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status"`
}

// WhoamiResponse names the authenticated caller
type WhoamiResponse struct {
	Username string `json:"username"`
}
