package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mitienda/tienda-api/internal/api/metrics"
	"github.com/mitienda/tienda-api/internal/core/ports"
)

// ClaimsKey is where Auth stores the verified session claims on the request
// context.
const ClaimsKey = "session_claims"

// Auth verifies the bearer token and injects the decoded claims into the
// request context. An absent token is 401; a malformed, badly signed or
// expired one is 403. The storefront relies on that distinction.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := tokenFromHeader(c.Request().Header.Get("Authorization"))
			if raw == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "No autorizado")
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "Token inválido")
			}

			metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()
			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}

// tokenFromHeader takes whatever follows the first space in the
// Authorization header. The scheme word is not inspected, so a wrong
// scheme still carries a token and fails verification as 403 rather
// than counting as absent.
func tokenFromHeader(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[1] == "" {
		return ""
	}
	return parts[1]
}
