package core

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// CatalogService is the catalog source for every screen. The product list is
// fetched once and served from memory until Reload is called.
type CatalogService interface {
	// List returns the catalog, optionally restricted to one category.
	List(ctx context.Context, category *Category) ([]Product, error)

	// Get looks a product up by its (trimmed) name.
	Get(ctx context.Context, name string) (Product, error)

	// Reload refetches the catalog from the repository.
	Reload(ctx context.Context) error

	// Upsert stores a product keyed by name and refreshes the cache.
	Upsert(ctx context.Context, p Product) (Product, error)
}

type catalogService struct {
	repo ProductRepo
	log  *slog.Logger

	mu       sync.RWMutex
	loaded   bool
	products []Product
}

func NewCatalogService(repo ProductRepo, log *slog.Logger) CatalogService {
	return &catalogService{repo: repo, log: log}
}

func (s *catalogService) List(ctx context.Context, category *Category) ([]Product, error) {
	products, err := s.ensureLoaded(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if category == nil || p.Category == *category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *catalogService) Get(ctx context.Context, name string) (Product, error) {
	products, err := s.ensureLoaded(ctx)
	if err != nil {
		return Product{}, err
	}
	name = strings.TrimSpace(name)
	for _, p := range products {
		if p.Name == name {
			return p, nil
		}
	}
	return Product{}, ErrProductNotFound
}

func (s *catalogService) Reload(ctx context.Context) error {
	_, err := s.load(ctx)
	return err
}

func (s *catalogService) Upsert(ctx context.Context, p Product) (Product, error) {
	p, err := NewProduct(p.Name, p.Description, p.Price, p.Category, p.ImageRes, p.ImageURL, p.CopyBased)
	if err != nil {
		return Product{}, err
	}
	if err := s.repo.UpsertByName(ctx, p); err != nil {
		return Product{}, err
	}
	if err := s.Reload(ctx); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (s *catalogService) ensureLoaded(ctx context.Context) ([]Product, error) {
	s.mu.RLock()
	if s.loaded {
		products := s.products
		s.mu.RUnlock()
		return products, nil
	}
	s.mu.RUnlock()
	return s.load(ctx)
}

func (s *catalogService) load(ctx context.Context) ([]Product, error) {
	raw, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]Product, 0, len(raw))
	for _, p := range raw {
		// Records without a name never reach a cart.
		if err := p.Validate(); err != nil {
			if s.log != nil {
				s.log.WarnContext(ctx, "skipping catalog record", "name", p.Name, "err", err)
			}
			continue
		}
		p.Name = strings.TrimSpace(p.Name)
		products = append(products, p)
	}

	s.mu.Lock()
	s.products = products
	s.loaded = true
	s.mu.Unlock()

	return products, nil
}
