package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/culinaryos/kitchen/internal/infrastructure/security"
	"github.com/culinaryos/kitchen/pkg/errors"
	"github.com/google/uuid"
)

type contextKey string

const (
	userIDKey    contextKey = "user_id"
	userEmailKey contextKey = "user_email"
	tokenKey     contextKey = "token"
)

// TokenValidator validates bearer tokens. security.TokenService satisfies it.
type TokenValidator interface {
	Validate(ctx context.Context, token string) (*security.Claims, error)
}

// Authenticate requires a valid "Authorization: Bearer <token>" header
func Authenticate(validator TokenValidator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				WriteError(w, r, errors.NewUnauthorizedError("Authorization header required"))
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
				WriteError(w, r, errors.NewUnauthorizedError("Invalid authorization header format"))
				return
			}
			token := strings.TrimSpace(parts[1])

			claims, err := validator.Validate(r.Context(), token)
			if err != nil {
				WriteError(w, r, errors.NewUnauthorizedError("Invalid or expired token").WithCause(err))
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				WriteError(w, r, errors.NewUnauthorizedError("Invalid token subject").WithCause(err))
				return
			}

			ctx := WithUser(r.Context(), userID, claims.Email, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithUser stores the authenticated user in the context
func WithUser(ctx context.Context, userID uuid.UUID, email, token string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	ctx = context.WithValue(ctx, userEmailKey, email)
	return context.WithValue(ctx, tokenKey, token)
}

// UserIDFromContext extracts the authenticated user id
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}

// UserEmailFromContext extracts the authenticated user's email
func UserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(userEmailKey).(string)
	return email, ok
}

// TokenFromContext extracts the raw bearer token
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}
