package storage

import (
	"context"
	"time"

	"github.com/sony/gobreaker/v2"
)

func NewBreakerStore[T any](inner Store[T], name string) *BreakerStore[T] {
	cb := gobreaker.NewCircuitBreaker[[]T](gobreaker.Settings{
		Name:    name,
		Timeout: 10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})
	return &BreakerStore[T]{inner: inner, cb: cb}
}

// BreakerStore sheds snapshot traffic while the backing store is failing,
// so a dead store costs one fast error instead of a timeout per command.
type BreakerStore[T any] struct {
	inner Store[T]
	cb    *gobreaker.CircuitBreaker[[]T]
}

func (s *BreakerStore[T]) Save(ctx context.Context, items []T) error {
	_, err := s.cb.Execute(func() ([]T, error) {
		return nil, s.inner.Save(ctx, items)
	})
	return err
}

func (s *BreakerStore[T]) Restore(ctx context.Context) ([]T, error) {
	return s.cb.Execute(func() ([]T, error) {
		return s.inner.Restore(ctx)
	})
}
