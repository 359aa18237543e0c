package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mitienda/tienda-api/internal/api/middleware"
	"github.com/mitienda/tienda-api/internal/core/auth"
)

// ctxClaims extracts the session claims injected by the Auth middleware.
// Their presence proves the middleware ran; a handler reached without them
// is a wiring bug surfaced as 401 rather than a panic.
func ctxClaims(c echo.Context) (*auth.SessionClaims, error) {
	claims, ok := c.Get(middleware.ClaimsKey).(*auth.SessionClaims)
	if !ok || claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "No autorizado")
	}
	return claims, nil
}
