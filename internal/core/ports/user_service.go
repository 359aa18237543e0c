package ports

import (
	"context"

	"github.com/mitienda/tienda-api/internal/core/domain"
)

// RegisterInput carries the data for a new account. Role defaults to
// "cliente" when empty.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Address  string
	Phone    string
	Role     string
}

// UserPatch is the caller-supplied subset of mutable account fields.
// Password is only honoured on the profile path; the admin update route has
// no password channel.
type UserPatch struct {
	Name     *string
	Email    *string
	Address  *string
	Phone    *string
	Role     *string
	Password *string
}

// UserService defines the identity use cases: registration, login, profile
// access and the admin account listing/update/delete surface.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) error
	Login(ctx context.Context, email, password string) (string, error)
	GetProfile(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id string) error
}
