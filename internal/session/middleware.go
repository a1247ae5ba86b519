package session

import (
	"context"
	"net/http"

	pkghttp "github.com/Hereaj/portfolio-api/pkg/http"
)

// TokenHeader carries the opaque session token on admin requests.
const TokenHeader = "X-Session-Token"

// contextKey is a custom type for context keys
type contextKey string

const principalContextKey contextKey = "principal"

// Middleware gates admin endpoints on a live session. Requests with an
// absent, unknown, or expired token are rejected before any handler work
// runs, so a failed validation never leaves partial effects behind.
func Middleware(store *Store) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(TokenHeader)
			if token == "" {
				pkghttp.WriteAuthRequired(w, "missing session token")
				return
			}

			sess, ok := store.Validate(token)
			if !ok {
				pkghttp.WriteAuthRequired(w, "invalid or expired session")
				return
			}

			ctx := context.WithValue(r.Context(), principalContextKey, sess.Principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PrincipalFromContext returns the authenticated principal, if any.
func PrincipalFromContext(ctx context.Context) (string, bool) {
	principal, ok := ctx.Value(principalContextKey).(string)
	return principal, ok
}
