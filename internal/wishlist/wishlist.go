package wishlist

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Vedantb04/Clothera/internal/domain"
	"github.com/Vedantb04/Clothera/internal/storage"
)

// Store tracks wishlist membership for the session: an ordered set of
// product snapshots, at most one entry per product id. Like the cart, every
// membership change writes a full snapshot to its own storage key.
type Store struct {
	mu        sync.Mutex
	products  []domain.Product
	snapshots storage.Store[domain.Product]
	log       zerolog.Logger
}

func NewStore(snapshots storage.Store[domain.Product], log zerolog.Logger) *Store {
	return &Store{
		snapshots: snapshots,
		log:       log.With().Str("component", "wishlist").Logger(),
	}
}

// Hydrate restores the persisted wishlist once at session start; bad or
// missing data means starting empty.
func (s *Store) Hydrate(ctx context.Context) {
	saved, err := s.snapshots.Restore(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("snapshot restore failed, starting with an empty wishlist")
		return
	}
	if len(saved) == 0 {
		return
	}
	s.mu.Lock()
	s.products = saved
	s.mu.Unlock()
}

// Add puts the product on the wishlist. Adding a product that is already
// there is a no-op and writes nothing.
func (s *Store) Add(ctx context.Context, product domain.Product) {
	s.mu.Lock()
	if s.indexOf(product.ID) >= 0 {
		s.mu.Unlock()
		return
	}
	s.products = append(s.products, product)
	s.persistLocked(ctx)
}

// Remove drops the product; absent ids are silently satisfied.
func (s *Store) Remove(ctx context.Context, productID string) {
	s.mu.Lock()
	i := s.indexOf(productID)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.products = append(s.products[:i:i], s.products[i+1:]...)
	s.persistLocked(ctx)
}

// Toggle flips membership: present products are removed, absent ones added.
// It reports whether the product is on the list afterwards.
func (s *Store) Toggle(ctx context.Context, product domain.Product) bool {
	s.mu.Lock()
	i := s.indexOf(product.ID)
	if i >= 0 {
		s.products = append(s.products[:i:i], s.products[i+1:]...)
		s.persistLocked(ctx)
		return false
	}
	s.products = append(s.products, product)
	s.persistLocked(ctx)
	return true
}

// Clear empties the wishlist.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	if len(s.products) == 0 {
		s.mu.Unlock()
		return
	}
	s.products = nil
	s.persistLocked(ctx)
}

// Contains reports membership by product id.
func (s *Store) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(productID) >= 0
}

// Products returns a copy of the wishlist in insertion order.
func (s *Store) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.products) == 0 {
		return nil
	}
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) indexOf(productID string) int {
	for i, p := range s.products {
		if p.ID == productID {
			return i
		}
	}
	return -1
}

// persistLocked snapshots the current list and releases the mutex.
func (s *Store) persistLocked(ctx context.Context) {
	snapshot := make([]domain.Product, len(s.products))
	copy(snapshot, s.products)
	s.mu.Unlock()

	if err := s.snapshots.Save(ctx, snapshot); err != nil {
		s.log.Warn().Err(err).Msg("snapshot save failed, wishlist continues in memory")
	}
}
