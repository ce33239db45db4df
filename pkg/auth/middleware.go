package auth

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const userIDContextKey = contextKey("userID")

// Middleware verifies the bearer token in the Authorization header.
// It extracts the subject from the token and adds it to the request context.
// If the token is invalid or missing, it returns a 401 Unauthorized response.
func Middleware(verifier Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			token, err := verifier.Verify(r.Context(), tokenString)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			subject, ok := token.Subject()
			if !ok {
				http.Error(w, "no claim `sub`", http.StatusUnauthorized)
				return
			}
			// Enrich the request context with the caller identity.
			ctx := context.WithValue(r.Context(), userIDContextKey, subject)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ContextUserID retrieves the authenticated subject from the context.
func ContextUserID(ctx context.Context) string {
	value := ctx.Value(userIDContextKey)
	if value != nil {
		return value.(string)
	}
	return ""
}
