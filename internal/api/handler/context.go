package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/legalsheba/legalsheba-api/internal/api/middleware"
	"github.com/legalsheba/legalsheba-api/internal/core/domain"
)

// ctxPrincipal extracts the principal attached by the Authenticate
// middleware. Handlers behind RequireAuth should never see the error
// path; it exists as a fast fail in case a route is miswired.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	principal, ok := c.Get(middleware.PrincipalKey).(domain.Principal)
	if !ok {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized)
	}
	return principal, nil
}
