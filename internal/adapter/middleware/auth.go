package middleware

import (
	"context"
	"fmt"
	"strings"

	"agrifin-backend/internal/domain/apperror"
	"agrifin-backend/internal/domain/user"

	"github.com/labstack/echo/v4"
)

const userKey = "auth.user"

var errNoToken = apperror.Unauthorized("Not authorized. Please login to access this resource.")

// Authenticator resolves a bearer token to an active user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*user.User, error)
}

// Auth requires `Authorization: Bearer <token>` and stores the user on the
// echo context.
func Auth(a Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme, tok, ok := strings.Cut(raw, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(tok) == "" {
				return errNoToken
			}
			u, err := a.Authenticate(c.Request().Context(), strings.TrimSpace(tok))
			if err != nil {
				return err
			}
			c.Set(userKey, u)
			return next(c)
		}
	}
}

// RequireRole must run after Auth.
func RequireRole(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u := CurrentUser(c)
			if u == nil {
				return errNoToken
			}
			for _, r := range roles {
				if u.Role == r {
					return next(c)
				}
			}
			return apperror.Forbidden(fmt.Sprintf("User role '%s' is not authorized to access this resource", u.Role))
		}
	}
}

// CurrentUser returns the user stored by Auth, or nil.
func CurrentUser(c echo.Context) *user.User {
	u, _ := c.Get(userKey).(*user.User)
	return u
}
