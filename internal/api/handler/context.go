package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wildquiz/wildquiz-api/internal/api/middleware"
)

// ctxAccountID extracts the authenticated account id injected by the Auth
// middleware. An empty value means the middleware never ran on this route,
// which is a wiring bug surfaced as 401 rather than a panic downstream.
func ctxAccountID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.CtxAccountID).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
