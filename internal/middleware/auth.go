package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/giftshuffler/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// OrganizerIDKey is the context key for the authenticated organizer ID.
	OrganizerIDKey contextKey = "organizer_id"
	// EmailKey is the context key for the authenticated organizer's email.
	EmailKey contextKey = "email"
)

// GetOrganizerID extracts the organizer ID from the context.
// Returns empty string if not found.
func GetOrganizerID(ctx context.Context) string {
	id, _ := ctx.Value(OrganizerIDKey).(string)
	return id
}

// GetEmail extracts the organizer email from the context.
// Returns empty string if not found.
func GetEmail(ctx context.Context) string {
	email, _ := ctx.Value(EmailKey).(string)
	return email
}

// WithOrganizer returns a context carrying the organizer's identity.
func WithOrganizer(ctx context.Context, organizerID, email string) context.Context {
	ctx = context.WithValue(ctx, OrganizerIDKey, organizerID)
	return context.WithValue(ctx, EmailKey, email)
}

// bearerToken returns the token from an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}

// RequireAuth returns an interceptor that rejects requests without a valid
// Bearer JWT and puts the organizer's identity in the request context.
func RequireAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			authHeader := req.Header().Get("Authorization")
			if authHeader == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}

			tokenString, ok := bearerToken(authHeader)
			if !ok {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			claims, err := jwtManager.Validate(tokenString)
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			return next(WithOrganizer(ctx, claims.OrganizerID(), claims.Email), req)
		}
	}
}

// OptionalAuth validates a Bearer token when one is sent but lets anonymous
// requests through. Used for the read-only endpoints when authentication is
// not required.
func OptionalAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if tokenString, ok := bearerToken(req.Header().Get("Authorization")); ok {
				// Invalid tokens are ignored.
				if claims, err := jwtManager.Validate(tokenString); err == nil {
					ctx = WithOrganizer(ctx, claims.OrganizerID(), claims.Email)
				}
			}
			return next(ctx, req)
		}
	}
}
