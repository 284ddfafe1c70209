// ABOUTME: Principal carries the authenticated caller's credentials per request
// ABOUTME: Replaces ambient session state with an explicit context value

package domain

import "context"

// Principal identifies the authenticated caller of a request. It is attached
// to the request context by the auth middleware and read by the upstream
// client when making authenticated calls.
type Principal struct {
	// Token is the opaque upstream access token
	Token string

	// Username is the caller's upstream account name, when known
	Username string
}

type principalContextKey struct{}

// WithPrincipal returns a context carrying the given principal.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, p)
}

// PrincipalFromContext returns the principal attached to ctx, if any.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalContextKey{}).(Principal)
	return p, ok
}
