package http

import (
	"context"
	"net/http"
)

type contextKey int

const userIDKey contextKey = 0

func userIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(userIDKey).(string)
	return v, ok
}

// withAuth resolves the request's bearer token via auth and, on success,
// stores the resulting user ID in the request context for handlers to
// read with userIDFromContext.
func withAuth(auth Authenticator, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := auth.Authenticate(r)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next(w, r.WithContext(ctx))
	}
}
