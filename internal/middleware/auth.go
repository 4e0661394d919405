package middleware

import (
	"context"
	"net/http"

	"allergysafe-be/internal/auth"
	"allergysafe-be/internal/session"
)

type contextKey string

const identityKey contextKey = "identity"

// AuthMiddleware resolves the bearer token into an identity on the request
// context. Missing or invalid tokens pass through anonymously; role gating
// happens in the handlers.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := auth.ExtractAccessToken(r)
		if tokenStr == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		role := session.Role(claims.Role)
		if !role.Valid() {
			next.ServeHTTP(w, r)
			return
		}

		id := session.Identity{Role: role, Name: claims.Name}
		ctx := context.WithValue(r.Context(), identityKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFromContext returns the identity the auth middleware resolved.
func IdentityFromContext(ctx context.Context) (session.Identity, bool) {
	id, ok := ctx.Value(identityKey).(session.Identity)
	return id, ok
}

// WithIdentity injects an identity into the context, for tests.
func WithIdentity(ctx context.Context, id session.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}
