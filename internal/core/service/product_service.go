package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mitienda/tienda-api/internal/core/domain"
	"github.com/mitienda/tienda-api/internal/core/ports"
)

// ProductService implements the catalog use cases. The full listing is kept
// in a cache between mutations; every write path invalidates it.
type ProductService struct {
	repo   ports.ProductRepository
	cache  ports.CatalogCache
	ids    ports.IDValidator
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, cache ports.CatalogCache, ids ports.IDValidator, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, ids: ids, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		Description: in.Description,
		Image:       in.Image,
		Stock:       in.Stock,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	s.logger.Info().Str("product_id", created.ID).Str("categoria", created.Category).Msg("producto creado")
	return created, nil
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	if products, ok := s.cache.Get(ctx); ok {
		return products, nil
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, products)
	return products, nil
}

func (s *ProductService) Update(ctx context.Context, id string, update ports.ProductUpdate) (*domain.Product, error) {
	if !s.ids.IsValid(id) {
		return nil, domain.ErrInvalidID
	}

	product, err := s.repo.UpdateByID(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if !s.ids.IsValid(id) {
		return domain.ErrInvalidID
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}
