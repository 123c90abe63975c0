package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/atelierdoces/backoffice/internal/domain/auth"
)

type userKey struct{}

// AccessResolver resolves a bearer access token to its user.
type AccessResolver interface {
	Authenticate(ctx context.Context, accessToken string) (*auth.User, error)
}

// UserFromContext returns the authenticated user from context, if present.
func UserFromContext(ctx context.Context) (*auth.User, bool) {
	u, ok := ctx.Value(userKey{}).(*auth.User)
	return u, ok
}

// AuthMiddleware enforces bearer token authentication.
func AuthMiddleware(resolver AccessResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if token == "" {
				writeActionError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
				return
			}

			u, err := resolver.Authenticate(r.Context(), token)
			if err != nil {
				writeActionError(w, http.StatusUnauthorized, "unauthorized", "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userKey{}, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a subtree to one role.
func RequireRole(role auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := UserFromContext(r.Context())
			if !ok || u.Role != role {
				writeActionError(w, http.StatusForbidden, "forbidden", "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
