package auth

import (
	"context"

	"podcast-service/internal/domain/user"

	"github.com/labstack/echo/v4"
)

// UserLookup is the user-lookup capability consumed by identity resolution.
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (*user.User, error)
}

// ResolveIdentity runs on every inbound request and attaches the resolved
// identity to the request context, best-effort. Every failure path — missing
// header, malformed or badly signed token, lookup miss — is a normal branch
// that leaves the request anonymous; the middleware never short-circuits the
// pipeline. At most one user lookup happens per request, and only for a
// signature-valid token.
func ResolveIdentity(tokens *TokenService, users UserLookup, headerName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(headerName)
			if raw == "" {
				return next(c)
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				return next(c)
			}

			u, err := users.GetByID(c.Request().Context(), claims.UserID)
			if err != nil {
				// A token referencing a deleted account means anonymity,
				// not an authentication error.
				return next(c)
			}

			c.Set(ContextKeyUser, u)
			return next(c)
		}
	}
}

// CurrentUser returns the resolved identity for this request, if any.
func CurrentUser(c echo.Context) (*user.User, bool) {
	u, ok := c.Get(ContextKeyUser).(*user.User)
	if !ok || u == nil {
		return nil, false
	}
	return u, true
}
