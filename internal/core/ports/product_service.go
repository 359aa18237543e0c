package ports

import (
	"context"

	"github.com/mitienda/tienda-api/internal/core/domain"
)

// CreateProductInput carries the data for a new catalog entry.
type CreateProductInput struct {
	Name        string
	Category    string
	Price       float64
	Description string
	Image       string
	Stock       int
}

// CatalogCache holds the full product listing between mutations.
type CatalogCache interface {
	Get(ctx context.Context) ([]domain.Product, bool)
	Set(ctx context.Context, products []domain.Product)
	Invalidate(ctx context.Context)
}

// ProductService defines the catalog use cases.
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, id string, update ProductUpdate) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
