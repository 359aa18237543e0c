package ports

import (
	"context"

	"github.com/mitienda/tienda-api/internal/core/domain"
)

// ProductUpdate is a partial catalog update. Nil fields are left untouched.
type ProductUpdate struct {
	Name        *string
	Category    *string
	Price       *float64
	Description *string
	Image       *string
	Stock       *int
}

// ProductRepository defines catalog persistence.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	UpdateByID(ctx context.Context, id string, update ProductUpdate) (*domain.Product, error)
	DeleteByID(ctx context.Context, id string) error
}
