package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/admindesk/user-service/internal/api/metrics"
	"github.com/admindesk/user-service/internal/core/ports"
)

// PrincipalKey is the echo context key under which Auth stores the
// authenticated *domain.Principal.
const PrincipalKey = "principal"

// Auth extracts the bearer token, validates it, and attaches the principal
// to the request context. The scheme prefix must be exactly "Bearer ";
// a missing header or any other scheme is rejected before the token is
// even parsed. All failures are a bare 401; the response never says
// whether the token was missing, malformed, forged, or expired.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			principal, err := tokens.Validate(raw)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(PrincipalKey, principal)
			return next(c)
		}
	}
}
