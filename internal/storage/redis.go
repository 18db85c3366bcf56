package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// snapshotVersion tags every persisted envelope so the layout can change
// later without breaking restores of old data.
const snapshotVersion = 1

type envelope[T any] struct {
	Version int `json:"version"`
	Items   []T `json:"items"`
}

func NewRedisStore[T any](client *redis.Client, key string, log zerolog.Logger) *RedisStore[T] {
	return &RedisStore[T]{
		client: client,
		key:    key,
		log:    log.With().Str("key", key).Logger(),
	}
}

// RedisStore keeps one JSON snapshot under a fixed key, no TTL.
type RedisStore[T any] struct {
	client *redis.Client
	key    string
	log    zerolog.Logger
}

func (s *RedisStore[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(envelope[T]{Version: snapshotVersion, Items: items})
	if err != nil {
		return fmt.Errorf("marshal snapshot failed: %w", err)
	}

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Restore reads the snapshot back. Anything that is not a well-formed
// envelope of the known version (or a bare array from before the envelope
// existed) comes back as an empty slice; corrupted persisted state must
// never take the session down.
func (s *RedisStore[T]) Restore(ctx context.Context) ([]T, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var env envelope[T]
	if err := json.Unmarshal(data, &env); err == nil && env.Version == snapshotVersion {
		return env.Items, nil
	}

	// Pre-envelope snapshots were a bare JSON array.
	var legacy []T
	if err := json.Unmarshal(data, &legacy); err == nil {
		return legacy, nil
	}

	s.log.Warn().Msg("discarding unreadable snapshot")
	return nil, nil
}
