package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/admindesk/user-service/internal/api/middleware"
	"github.com/admindesk/user-service/internal/core/domain"
)

// ctxPrincipal extracts the principal attached by the Auth middleware.
// Its absence means the route is miswired (handler mounted without Auth);
// that is reported as 401 rather than a panic.
func ctxPrincipal(c echo.Context) (*domain.Principal, error) {
	principal, ok := c.Get(middleware.PrincipalKey).(*domain.Principal)
	if !ok || principal == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return principal, nil
}
