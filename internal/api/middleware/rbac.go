package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/wildquiz/wildquiz-api/internal/core/domain"
)

// RBAC admits only requests whose resolved role is in the allowed set. It
// expects Auth to have run with a role resolver; an absent role is forbidden,
// not an internal error. The rejection surfaces as domain.ErrForbidden so the
// central error handler renders the standard envelope.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if _, ok := allowed[role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
