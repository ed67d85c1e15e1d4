package middleware

import (
	"context"
	"net/http"

	"github.com/Santosh7017/NoteBook/internal/token"
)

// TokenHeader carries the stateless auth token on API requests.
const TokenHeader = "auth-token"

// unexported, collision-proof context key
type userIDContextKeyType struct{}

var userIDKey = userIDContextKeyType{}

// UserIDFromContext extracts the authenticated user ID from context.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// AuthMiddleware gates protected routes on a valid stateless token.
// It is the sole authorization primitive: every protected operation
// goes through here before touching its own logic.
type AuthMiddleware struct {
	Tokens *token.Codec
}

func NewAuthMiddleware(tokens *token.Codec) *AuthMiddleware {
	return &AuthMiddleware{Tokens: tokens}
}

func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Read token header
		raw := r.Header.Get(TokenHeader)
		if raw == "" {
			unauthorized(w)
			return
		}

		// 2. Verify signature, recover user id
		userID, err := a.Tokens.Verify(raw)
		if err != nil {
			unauthorized(w)
			return
		}

		// 3. Attach user_id to context
		ctx := context.WithValue(r.Context(), userIDKey, userID)

		// 4. Continue request
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// unauthorized rejects the request with the same JSON error shape the
// rest of the gateway uses.
func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
}
