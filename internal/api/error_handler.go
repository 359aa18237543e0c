package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mitienda/tienda-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": "<mensaje>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, middleware errors).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest, "El correo ya está registrado"
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, "ID de usuario no válido"
	case errors.Is(err, domain.ErrTokenMissing):
		return http.StatusUnauthorized, "No autorizado"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Contraseña incorrecta"
	case errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusForbidden, "Token inválido"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "Usuario no encontrado"
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "Producto no encontrado"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Error interno del servidor"
}
