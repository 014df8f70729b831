package auth

import (
	"context"
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is the echo context key holding the authenticated user id
const ContextKeyUserID = "user_id"

type ctxKey string

const identityKey ctxKey = "identity"

var bearerTokenRE = regexp.MustCompile(`^Bearer\s+(\S+)\s*$`)

// RequireAuth rejects requests without a valid bearer token.
// A missing token answers 401, a token that fails verification 403.
func RequireAuth(tokens *TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := TokenFromRequest(c.Request())
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "authentication required",
				})
			}

			userID, err := tokens.Verify(token)
			if err != nil {
				return c.JSON(http.StatusForbidden, map[string]string{
					"error": "invalid token",
				})
			}

			// Store identity for handlers and for anything reading the request context
			c.Set(ContextKeyUserID, userID)
			c.SetRequest(c.Request().WithContext(WithIdentity(c.Request().Context(), userID)))

			return next(c)
		}
	}
}

// TokenFromRequest extracts the bearer token from the Authorization header
func TokenFromRequest(r *http.Request) (string, error) {
	groups := bearerTokenRE.FindStringSubmatch(r.Header.Get(echo.HeaderAuthorization))
	if len(groups) == 0 {
		return "", ErrNoToken
	}
	return groups[1], nil
}

// UserIDFromContext retrieves the authenticated user id from the echo context
func UserIDFromContext(c echo.Context) (string, bool) {
	userID, ok := c.Get(ContextKeyUserID).(string)
	return userID, ok && userID != ""
}

// WithIdentity returns a copy of ctx carrying the authenticated user id
func WithIdentity(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, identityKey, userID)
}

// IdentityFromContext returns the user id stored by WithIdentity
func IdentityFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(identityKey).(string)
	return userID, ok && userID != ""
}
