// ABOUTME: Authentication middleware extracting the caller's upstream token
// ABOUTME: Places a Principal in the request context for downstream upstream calls

package middleware

import (
	"net/http"
	"strings"

	"activity-viewer-api/core/domain"
)

// usernameHeader optionally names the authenticated caller so whoami can
// avoid an upstream round trip
const usernameHeader = "X-Upstream-Username"

// AuthMiddleware reads the caller's upstream token from the Authorization
// header and stores it as a Principal in the request context. Requests
// without a token pass through unauthenticated; endpoints that need a
// principal reject them individually.
func AuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token != "" {
				principal := domain.Principal{
					Token:    token,
					Username: r.Header.Get(usernameHeader),
				}
				r = r.WithContext(domain.WithPrincipal(r.Context(), principal))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken extracts the token from "Bearer <token>" or "AuthSub
// token=<token>" authorization headers.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	switch {
	case strings.HasPrefix(auth, "Bearer "):
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	case strings.HasPrefix(auth, "AuthSub token="):
		return strings.TrimSpace(strings.TrimPrefix(auth, "AuthSub token="))
	default:
		return ""
	}
}
