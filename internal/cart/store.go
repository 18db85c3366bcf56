package cart

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Vedantb04/Clothera/internal/domain"
	"github.com/Vedantb04/Clothera/internal/pricing"
	"github.com/Vedantb04/Clothera/internal/storage"
)

// Store owns the cart aggregate for the session. Commands are serialized
// by the mutex so concurrent adds can never produce two lines for the
// same product.
//
// Every state-changing command triggers exactly one snapshot write of the
// full line sequence, after the in-memory transition. The write is
// best-effort: a failed save leaves the previous snapshot intact and the
// session keeps running on the in-memory state.
type Store struct {
	mu        sync.Mutex
	lines     []domain.CartLine
	coupon    *domain.Coupon
	snapshots storage.Store[domain.CartLine]
	log       zerolog.Logger
}

func NewStore(snapshots storage.Store[domain.CartLine], log zerolog.Logger) *Store {
	return &Store{
		snapshots: snapshots,
		log:       log.With().Str("component", "cart").Logger(),
	}
}

// Hydrate restores the persisted snapshot, once, at session start. A
// missing or unreadable snapshot means starting empty; hydration never
// fails the caller.
func (s *Store) Hydrate(ctx context.Context) {
	saved, err := s.snapshots.Restore(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("snapshot restore failed, starting with an empty cart")
		return
	}
	if len(saved) == 0 {
		return
	}
	s.dispatch(ctx, loadLines{lines: saved})
}

// Add appends a line with quantity 1, or bumps the quantity of the
// existing line for the same product id. It never fails, a free product
// included.
func (s *Store) Add(ctx context.Context, product domain.Product) {
	s.dispatch(ctx, addLine{product: product})
}

// Remove deletes the line for the product id. Removing an absent line is
// a no-op, not an error.
func (s *Store) Remove(ctx context.Context, productID string) {
	s.dispatch(ctx, removeLine{productID: productID})
}

// SetQuantity replaces the quantity of an existing line. A quantity of
// zero or less removes the line; an unknown product id is a no-op. There
// is no upper bound, stock limits belong to an inventory collaborator.
func (s *Store) SetQuantity(ctx context.Context, productID string, quantity int) {
	s.dispatch(ctx, setQuantity{productID: productID, quantity: quantity})
}

// Clear empties the cart unconditionally.
func (s *Store) Clear(ctx context.Context) {
	s.dispatch(ctx, clearLines{})
}

// Load replaces the entire line sequence. A full overwrite, not a merge.
func (s *Store) Load(ctx context.Context, lines []domain.CartLine) {
	s.dispatch(ctx, loadLines{lines: lines})
}

// ApplyCoupon records the coupon as the single active one, replacing any
// prior coupon. The store does not validate codes; resolution happens in
// the coupon package before a coupon ever reaches here. The active coupon
// is session state only, it is not part of the snapshot.
func (s *Store) ApplyCoupon(coupon domain.Coupon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupon = &coupon
}

// RemoveCoupon drops the active coupon, if any.
func (s *Store) RemoveCoupon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupon = nil
}

// Lines returns a copy of the line sequence in insertion order.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneLines(s.lines)
}

// Coupon returns the active coupon, or nil.
func (s *Store) Coupon() *domain.Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.coupon == nil {
		return nil
	}
	c := *s.coupon
	return &c
}

// Summary recomputes the full pricing view from the current lines and
// coupon. Nothing derived is ever cached.
func (s *Store) Summary() pricing.Summary {
	s.mu.Lock()
	lines := domain.CloneLines(s.lines)
	coupon := s.coupon
	s.mu.Unlock()
	return pricing.Calculate(lines, coupon)
}

func (s *Store) dispatch(ctx context.Context, cmd command) {
	s.mu.Lock()
	next, changed := apply(s.lines, cmd)
	if !changed {
		s.mu.Unlock()
		return
	}
	s.lines = next
	snapshot := domain.CloneLines(next)
	s.mu.Unlock()

	if err := s.snapshots.Save(ctx, snapshot); err != nil {
		s.log.Warn().Err(err).Msg("snapshot save failed, cart continues in memory")
	}
}
