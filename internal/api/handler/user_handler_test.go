package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mitienda/tienda-api/internal/api/middleware"
	"github.com/mitienda/tienda-api/internal/core/auth"
	"github.com/mitienda/tienda-api/internal/core/domain"
	"github.com/mitienda/tienda-api/internal/core/ports"
)

type stubUserService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) error
	loginFn    func(ctx context.Context, email, password string) (string, error)
	profileFn  func(ctx context.Context, id string) (*domain.User, error)
	updateFn   func(ctx context.Context, id string, patch ports.UserPatch) (*domain.User, error)
	listFn     func(ctx context.Context) ([]domain.User, error)
	deleteFn   func(ctx context.Context, id string) error
}

func (s *stubUserService) Register(ctx context.Context, input ports.RegisterInput) error {
	return s.registerFn(ctx, input)
}

func (s *stubUserService) Login(ctx context.Context, email, password string) (string, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubUserService) GetProfile(ctx context.Context, id string) (*domain.User, error) {
	return s.profileFn(ctx, id)
}

func (s *stubUserService) Update(ctx context.Context, id string, patch ports.UserPatch) (*domain.User, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubUserService) List(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	msg, _ := resp["message"].(string)
	return msg
}

func TestUserHandler_Register_Success(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) error {
			if input.Name != "Ana" || input.Email != "a@x.com" || input.Password != "secret1" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/usuarios/register",
		`{"nombre":"Ana","email":"a@x.com","password":"secret1"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got := decodeMessage(t, rec); got != "Usuario registrado exitosamente" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestUserHandler_Register_Duplicate(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) error {
			return domain.ErrEmailTaken
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/usuarios/register",
		`{"nombre":"Ana","email":"a@x.com","password":"otra"}`)

	_ = h.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := decodeMessage(t, rec); got != "El correo ya está registrado" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestUserHandler_Register_MissingFields(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/usuarios/register",
		`{"nombre":"Ana"}`)

	_ = h.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserHandler_Register_InvalidRole(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/usuarios/register",
		`{"nombre":"Ana","email":"a@x.com","password":"pw","rol":"superuser"}`)

	_ = h.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserHandler_Login_Success(t *testing.T) {
	stub := &stubUserService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			if email != "a@x.com" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/usuarios/login",
		`{"email":"a@x.com","password":"secret1"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	if resp["message"] != "Inicio de sesión exitoso" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestUserHandler_Login_WrongPassword(t *testing.T) {
	stub := &stubUserService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/usuarios/login",
		`{"email":"a@x.com","password":"wrong"}`)

	_ = h.Login(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if got := decodeMessage(t, rec); got != "Contraseña incorrecta" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestUserHandler_Login_NotFound(t *testing.T) {
	stub := &stubUserService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			return "", domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/usuarios/login",
		`{"email":"ghost@x.com","password":"pw"}`)

	_ = h.Login(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if got := decodeMessage(t, rec); got != "Usuario no encontrado" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestUserHandler_Profile_Success(t *testing.T) {
	stub := &stubUserService{
		profileFn: func(ctx context.Context, id string) (*domain.User, error) {
			if id != "507f1f77bcf86cd799439011" {
				t.Fatalf("unexpected id: %s", id)
			}
			return &domain.User{
				ID:           id,
				Name:         "Ana",
				Email:        "a@x.com",
				PasswordHash: "$2a$10$topsecret",
				Role:         domain.RoleClient,
			}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/usuarios/perfil", "")
	c.Set(middleware.ClaimsKey, &auth.SessionClaims{UserID: "507f1f77bcf86cd799439011"})

	if err := h.Profile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	if strings.Contains(body, "topsecret") || strings.Contains(body, "password") {
		t.Fatalf("password hash leaked in response: %s", body)
	}
	if !strings.Contains(body, `"nombre":"Ana"`) {
		t.Fatalf("unexpected payload: %s", body)
	}
}

func TestUserHandler_Profile_NoClaims(t *testing.T) {
	stub := &stubUserService{
		profileFn: func(ctx context.Context, id string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/usuarios/perfil", "")

	if err := h.Profile(c); err != nil {
		c.Echo().HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestUserHandler_Profile_NotFound(t *testing.T) {
	stub := &stubUserService{
		profileFn: func(ctx context.Context, id string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/usuarios/perfil", "")
	c.Set(middleware.ClaimsKey, &auth.SessionClaims{UserID: "507f1f77bcf86cd799439011"})

	_ = h.Profile(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUserHandler_UpdateProfile_PasswordForwarded(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(ctx context.Context, id string, patch ports.UserPatch) (*domain.User, error) {
			if id != "507f1f77bcf86cd799439011" {
				t.Fatalf("unexpected id: %s", id)
			}
			if patch.Password == nil || *patch.Password != "newpass" {
				t.Fatalf("expected password in patch, got %+v", patch)
			}
			if patch.Name == nil || *patch.Name != "Ana María" {
				t.Fatalf("expected name in patch, got %+v", patch)
			}
			if patch.Email != nil {
				t.Fatalf("email should be absent from patch")
			}
			return &domain.User{ID: id, Name: *patch.Name}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/api/usuarios/perfil/507f1f77bcf86cd799439011",
		`{"nombre":"Ana María","password":"newpass"}`)
	c.SetParamNames("id")
	c.SetParamValues("507f1f77bcf86cd799439011")

	if err := h.UpdateProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_UpdateProfile_InvalidID(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(ctx context.Context, id string, patch ports.UserPatch) (*domain.User, error) {
			return nil, domain.ErrInvalidID
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/api/usuarios/perfil/zzz", `{"nombre":"x"}`)
	c.SetParamNames("id")
	c.SetParamValues("zzz")

	_ = h.UpdateProfile(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := decodeMessage(t, rec); got != "ID de usuario no válido" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestUserHandler_AdminUpdate_NoPasswordChannel(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(ctx context.Context, id string, patch ports.UserPatch) (*domain.User, error) {
			if patch.Password != nil {
				t.Fatalf("admin update must not carry a password")
			}
			if patch.Role == nil || *patch.Role != domain.RoleAdmin {
				t.Fatalf("expected role in patch, got %+v", patch)
			}
			return &domain.User{ID: id, Role: *patch.Role}, nil
		},
	}
	h := NewUserHandler(stub)

	// A password in the body is silently dropped on this route.
	c, rec := newTestContext(t, http.MethodPut, "/api/usuarios/507f1f77bcf86cd799439011",
		`{"rol":"admin","password":"sneaky"}`)
	c.SetParamNames("id")
	c.SetParamValues("507f1f77bcf86cd799439011")

	if err := h.AdminUpdate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_List(t *testing.T) {
	stub := &stubUserService{
		listFn: func(ctx context.Context) ([]domain.User, error) {
			return []domain.User{
				{ID: "1", Name: "Ana", PasswordHash: "hash1"},
				{ID: "2", Name: "Eva", PasswordHash: "hash2"},
			}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/usuarios", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	if strings.Contains(body, "hash1") || strings.Contains(body, "hash2") {
		t.Fatalf("password hashes leaked: %s", body)
	}

	var users []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestUserHandler_Delete_Success(t *testing.T) {
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, id string) error {
			return nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/api/usuarios/507f1f77bcf86cd799439011", "")
	c.SetParamNames("id")
	c.SetParamValues("507f1f77bcf86cd799439011")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := decodeMessage(t, rec); got != "Usuario eliminado con éxito" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestUserHandler_Delete_NotFound(t *testing.T) {
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, id string) error {
			return domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/api/usuarios/507f1f77bcf86cd799439011", "")
	c.SetParamNames("id")
	c.SetParamValues("507f1f77bcf86cd799439011")

	_ = h.Delete(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
