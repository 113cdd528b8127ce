package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/wildquiz/wildquiz-api/internal/token"
)

// Context keys populated by the middleware chain.
const (
	CtxAccountID = "account_id"
	CtxRole      = "role"
)

// RoleResolver looks up the role for an authenticated account. Kept as a
// small function type so the middleware does not depend on the repository
// interfaces directly.
type RoleResolver func(c echo.Context, accountID string) (string, error)

// Auth validates the bearer token and injects the subject account id into
// the request context. When a resolver is given, the account's role is
// resolved and injected as well (needed only on /admin routes).
func Auth(issuer *token.Issuer, resolveRole RoleResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			subject, err := issuer.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CtxAccountID, subject)

			if resolveRole != nil {
				role, err := resolveRole(c, subject)
				if err != nil {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				c.Set(CtxRole, role)
			}

			return next(c)
		}
	}
}
