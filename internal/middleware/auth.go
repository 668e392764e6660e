// Package middleware provides HTTP middlewares for authentication,
// CORS, and logging.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/nextbite/nextbite/internal/service"
)

type ctxKey string

const emailKey ctxKey = "email"

// TokenParser verifies a session token and returns its claims.
type TokenParser interface {
	Parse(tokenString string) (*service.Claims, error)
}

// BearerAuth is a middleware that enforces session-token authentication.
//
// It expects an "Authorization: Bearer <token>" header, verifies the
// token's signature and expiry, and stores the token's email in the
// request context so handlers derive the acting account from the
// verified token rather than trusting a client-supplied email.
func BearerAuth(tokens TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				unauthorized(w, "authentication required")
				return
			}

			claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				unauthorized(w, "invalid or expired session token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithEmail(r.Context(), claims.Email)))
		})
	}
}

// WithEmail returns a copy of ctx carrying email as the authenticated
// account.
func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey, email)
}

// GetEmailFromContext extracts the authenticated account email from the
// request context. Returns an empty string if not found.
func GetEmailFromContext(ctx context.Context) string {
	val := ctx.Value(emailKey)
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": message,
	})
}
