package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mitienda/tienda-api/internal/core/domain"
	"github.com/mitienda/tienda-api/internal/core/ports"
)

type stubProductRepo struct {
	products map[string]*domain.Product
	seq      int
	listed   int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	r.seq++
	copy := *p
	copy.ID = fmt.Sprintf("%024x", r.seq)
	r.products[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubProductRepo) List(_ context.Context) ([]domain.Product, error) {
	r.listed++
	var out []domain.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) UpdateByID(_ context.Context, id string, update ports.ProductUpdate) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.Price != nil {
		p.Price = *update.Price
	}
	if update.Stock != nil {
		p.Stock = *update.Stock
	}
	out := *p
	return &out, nil
}

func (r *stubProductRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

// memCatalogCache records cache traffic for assertions.
type memCatalogCache struct {
	products    []domain.Product
	present     bool
	invalidated int
}

func (c *memCatalogCache) Get(_ context.Context) ([]domain.Product, bool) {
	if !c.present {
		return nil, false
	}
	return c.products, true
}

func (c *memCatalogCache) Set(_ context.Context, products []domain.Product) {
	c.products = products
	c.present = true
}

func (c *memCatalogCache) Invalidate(_ context.Context) {
	c.products = nil
	c.present = false
	c.invalidated++
}

func newTestProductService(repo *stubProductRepo, cache *memCatalogCache) *ProductService {
	return NewProductService(repo, cache, hexIDValidator{}, zerolog.Nop())
}

func TestProductService_Create_InvalidatesCache(t *testing.T) {
	repo := newStubProductRepo()
	cache := &memCatalogCache{}
	svc := newTestProductService(repo, cache)

	cache.Set(context.Background(), []domain.Product{{Name: "stale"}})

	created, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name:     "Camiseta",
		Category: "ropa",
		Price:    199.9,
		Stock:    10,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	if cache.invalidated != 1 {
		t.Fatalf("expected cache invalidation, got %d", cache.invalidated)
	}
}

func TestProductService_List_CacheMissThenHit(t *testing.T) {
	repo := newStubProductRepo()
	cache := &memCatalogCache{}
	svc := newTestProductService(repo, cache)

	if _, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "Taza", Category: "hogar", Price: 50, Stock: 3}); err != nil {
		t.Fatalf("create: %v", err)
	}

	first, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 product, got %d", len(first))
	}
	if repo.listed != 1 {
		t.Fatalf("expected one repo read, got %d", repo.listed)
	}

	// Second listing is served from the cache.
	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if repo.listed != 1 {
		t.Fatalf("expected cached read, repo hit %d times", repo.listed)
	}
}

func TestProductService_Update_InvalidID(t *testing.T) {
	svc := newTestProductService(newStubProductRepo(), &memCatalogCache{})

	name := "x"
	if _, err := svc.Update(context.Background(), "nope", ports.ProductUpdate{Name: &name}); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestProductService_Update_NotFound(t *testing.T) {
	svc := newTestProductService(newStubProductRepo(), &memCatalogCache{})

	name := "x"
	if _, err := svc.Update(context.Background(), fmt.Sprintf("%024x", 5), ports.ProductUpdate{Name: &name}); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Delete_InvalidatesCache(t *testing.T) {
	repo := newStubProductRepo()
	cache := &memCatalogCache{}
	svc := newTestProductService(repo, cache)

	created, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "Taza", Category: "hogar", Price: 50, Stock: 3})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	invalidations := cache.invalidated

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if cache.invalidated != invalidations+1 {
		t.Fatalf("expected cache invalidation on delete")
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
