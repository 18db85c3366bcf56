package catalog

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/Vedantb04/Clothera/internal/domain"
)

// ProductSource is what the service needs from the repository.
type ProductSource interface {
	GetAllProducts(ctx context.Context) ([]domain.Product, error)
}

// Service serves catalog queries from an in-memory copy of the product
// collection. The catalog is static for the session, so it is loaded once;
// singleflight collapses concurrent first loads into a single repository
// hit.
type Service struct {
	source ProductSource
	sfg    singleflight.Group

	mu       sync.RWMutex
	products []domain.Product
	loaded   bool
}

func NewService(source ProductSource) *Service {
	return &Service{source: source}
}

// Search runs the query engine over the product collection.
func (s *Service) Search(ctx context.Context, q Query) (Page, error) {
	products, err := s.all(ctx)
	if err != nil {
		return Page{}, err
	}
	return Search(products, q), nil
}

// Get returns one product by id.
func (s *Service) Get(ctx context.Context, id string) (domain.Product, error) {
	products, err := s.all(ctx)
	if err != nil {
		return domain.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrNotFound
}

func (s *Service) all(ctx context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	if s.loaded {
		products := s.products
		s.mu.RUnlock()
		return products, nil
	}
	s.mu.RUnlock()

	v, err, _ := s.sfg.Do("catalog", func() (interface{}, error) {
		products, err := s.source.GetAllProducts(ctx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.products = products
		s.loaded = true
		s.mu.Unlock()
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Product), nil
}
