package storage

import "context"

// Store persists a full snapshot of a slice under a fixed key. Every Save
// replaces the previous snapshot wholesale; there are no partial writes.
//
// Restore must never fail the caller over bad data: a missing, corrupted
// or wrong-shaped record degrades to an empty snapshot. The error return
// is reserved for infrastructure failures (store unreachable), which the
// caller may also treat as an empty snapshot.
type Store[T any] interface {
	Save(ctx context.Context, items []T) error
	Restore(ctx context.Context) ([]T, error)
}
