package ports

import (
	"context"

	"github.com/mitienda/tienda-api/internal/core/domain"
)

// UserUpdate is a partial account update. Nil fields are left untouched.
type UserUpdate struct {
	Name         *string
	Email        *string
	Address      *string
	Phone        *string
	Role         *string
	PasswordHash *string
}

// UserRepository defines account persistence. Email uniqueness is enforced
// by the store through a unique index, and only at creation; updates do not
// re-check it.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateByID(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.User, error)
}
