package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/admindesk/user-service/internal/api/metrics"
	"github.com/admindesk/user-service/internal/core/domain"
)

// RequireAccess gates a route on the access policy: the attached principal
// must hold every listed role, unless it holds "admin", which passes
// unconditionally. Must run after Auth; a request with no principal is a
// middleware-ordering bug and is rejected as unauthenticated.
func RequireAccess(required ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := c.Get(PrincipalKey).(*domain.Principal)
			if !ok || principal == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}

			if !domain.HasAccess(principal.Access, required...) {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
