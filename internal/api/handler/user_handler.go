package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mitienda/tienda-api/internal/api/metrics"
	"github.com/mitienda/tienda-api/internal/core/domain"
	"github.com/mitienda/tienda-api/internal/core/ports"
)

// UserHandler exposes the identity endpoints: registration, login, profile
// and the admin account table.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type messageResponse struct {
	Message string `json:"message"`
}

type registerRequest struct {
	Name     string `json:"nombre" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Address  string `json:"direccion"`
	Phone    string `json:"telefono"`
	Role     string `json:"rol" validate:"omitempty,oneof=cliente admin"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type updateProfileRequest struct {
	Name     *string `json:"nombre"`
	Email    *string `json:"email"`
	Address  *string `json:"direccion"`
	Phone    *string `json:"telefono"`
	Role     *string `json:"rol"`
	Password *string `json:"password"`
}

// adminUpdateRequest deliberately has no password field: the admin table
// edits everything except credentials.
type adminUpdateRequest struct {
	Name    *string `json:"nombre"`
	Email   *string `json:"email"`
	Address *string `json:"direccion"`
	Phone   *string `json:"telefono"`
	Role    *string `json:"rol"`
}

// Register creates a new account.
//
// @Summary      Registrar usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Datos de registro"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/usuarios/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Cuerpo de la petición no válido"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	err := h.users.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		Phone:    req.Phone,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "El correo ya está registrado"})
		}
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Error al guardar el usuario"})
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "Usuario registrado exitosamente"})
}

// Login authenticates an account and returns a session token.
//
// @Summary      Iniciar sesión
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credenciales"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/usuarios/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Cuerpo de la petición no válido"})
	}

	token, err := h.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			metrics.LoginsTotal.WithLabelValues("not_found").Inc()
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Usuario no encontrado"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid_password").Inc()
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Contraseña incorrecta"})
		default:
			metrics.LoginsTotal.WithLabelValues("error").Inc()
			return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Error al buscar el usuario"})
		}
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Message: "Inicio de sesión exitoso", Token: token})
}

// Profile returns the account behind the verified session token. The
// password hash never appears in the payload.
//
// @Summary      Perfil del usuario autenticado
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  domain.User
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/usuarios/perfil [get]
func (h *UserHandler) Profile(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	user, err := h.users.GetProfile(c.Request().Context(), claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "ID de usuario no válido"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Usuario no encontrado"})
		default:
			return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Error al obtener el usuario"})
		}
	}

	return c.JSON(http.StatusOK, user)
}

// UpdateProfile applies a partial update to the account in the path,
// hashing a new password when one is supplied. The route carries no token
// check and no ownership check, matching the storefront's contract.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Cuerpo de la petición no válido"})
	}

	user, err := h.users.Update(c.Request().Context(), c.Param("id"), ports.UserPatch{
		Name:     req.Name,
		Email:    req.Email,
		Address:  req.Address,
		Phone:    req.Phone,
		Role:     req.Role,
		Password: req.Password,
	})
	if err != nil {
		return userUpdateError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

// List returns every account, hashes excluded.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Error al obtener los usuarios"})
	}
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// AdminUpdate is UpdateProfile without the password channel.
func (h *UserHandler) AdminUpdate(c echo.Context) error {
	var req adminUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Cuerpo de la petición no válido"})
	}

	user, err := h.users.Update(c.Request().Context(), c.Param("id"), ports.UserPatch{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		Phone:   req.Phone,
		Role:    req.Role,
	})
	if err != nil {
		return userUpdateError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

// Delete removes an account.
func (h *UserHandler) Delete(c echo.Context) error {
	err := h.users.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "ID de usuario no válido"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Usuario no encontrado"})
		default:
			return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Error al eliminar el usuario"})
		}
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Usuario eliminado con éxito"})
}

func userUpdateError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "ID de usuario no válido"})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Usuario no encontrado"})
	default:
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Error al actualizar el usuario"})
	}
}
