package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// TokenVerifier validates a bearer token and returns the user id it asserts.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

type contextKey string

// userIDKey holds the authenticated user id in the request context.
const userIDKey contextKey = "user_id"

// UserID returns the authenticated user id from the context, or "" if the
// request did not pass RequireAuth.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// WithUserID returns a context carrying the given user id. Intended for
// handler tests that bypass the middleware.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// RequireAuth validates the "Authorization: Bearer <token>" header and
// injects the asserted user id into the request context.
func RequireAuth(tokens TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				unauthorized(w, "not authenticated")
				return
			}

			userID, err := tokens.Verify(tokenString)
			if err != nil {
				unauthorized(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(errorResponse{Code: "UNAUTHORIZED", Message: message})
}
