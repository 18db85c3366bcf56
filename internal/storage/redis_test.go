package storage

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vedantb04/Clothera/internal/domain"
)

const testKey = "clothera:cart"

// setupTestRedis creates a miniredis server and a cart line store on it.
func setupTestRedis(t *testing.T) (*RedisStore[domain.CartLine], *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore[domain.CartLine](client, testKey, zerolog.Nop()), mr
}

func sampleLines() []domain.CartLine {
	return []domain.CartLine{
		{
			Product: domain.Product{
				ID:       "p1",
				Name:     "Linen Shirt",
				Brand:    "Clothera",
				Price:    decimal.RequireFromString("39.99"),
				Discount: 10,
				Rating:   4,
				Category: "featured",
				Tags:     []string{"shirt", "linen"},
				Image:    "/images/linen-shirt.jpg",
			},
			Quantity: 2,
		},
		{
			Product: domain.Product{
				ID:    "p2",
				Name:  "Denim Jacket",
				Brand: "Clothera",
				Price: decimal.RequireFromString("89.50"),
			},
			Quantity: 1,
		},
	}
}

func TestRoundTrip(t *testing.T) {
	store, _ := setupTestRedis(t)
	ctx := context.Background()
	lines := sampleLines()

	require.NoError(t, store.Save(ctx, lines))

	got, err := store.Restore(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].Product.ID, "line order survives the round trip")
	assert.Equal(t, 2, got[0].Quantity)
	assert.True(t, got[0].Product.Price.Equal(decimal.RequireFromString("39.99")))
	assert.Equal(t, "p2", got[1].Product.ID)
}

func TestSave_ReplacesPriorSnapshot(t *testing.T) {
	store, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleLines()))
	require.NoError(t, store.Save(ctx, sampleLines()[:1]))

	got, err := store.Restore(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestRestore_MissingKey(t *testing.T) {
	store, _ := setupTestRedis(t)

	got, err := store.Restore(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRestore_CorruptedPayload(t *testing.T) {
	store, mr := setupTestRedis(t)
	mr.Set(testKey, "{not json")

	got, err := store.Restore(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRestore_WrongShape(t *testing.T) {
	store, mr := setupTestRedis(t)
	// Parseable JSON, but neither an envelope nor a line array.
	mr.Set(testKey, `"just a string"`)

	got, err := store.Restore(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRestore_LegacyBareArray(t *testing.T) {
	store, mr := setupTestRedis(t)
	data, err := json.Marshal(sampleLines())
	require.NoError(t, err)
	mr.Set(testKey, string(data))

	got, err := store.Restore(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].Product.ID)
}

func TestRestore_UnknownVersion(t *testing.T) {
	store, mr := setupTestRedis(t)
	mr.Set(testKey, `{"version":99,"items":[{"product":{"id":"p1"},"quantity":1}]}`)

	got, err := store.Restore(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got, "a future snapshot layout is not guessed at")
}

func TestRestore_ServerDown(t *testing.T) {
	store, mr := setupTestRedis(t)
	mr.Close()

	_, err := store.Restore(context.Background())
	assert.Error(t, err, "infrastructure failures do surface, callers degrade to empty")
}

type failingStore struct {
	calls int
}

func (f *failingStore) Save(context.Context, []domain.CartLine) error {
	f.calls++
	return errors.New("store down")
}

func (f *failingStore) Restore(context.Context) ([]domain.CartLine, error) {
	f.calls++
	return nil, errors.New("store down")
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	inner := &failingStore{}
	store := NewBreakerStore[domain.CartLine](inner, "cart-snapshots")
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		assert.Error(t, store.Save(ctx, nil))
	}

	// After three consecutive failures the breaker opens and stops
	// calling through.
	assert.Equal(t, 3, inner.calls)
}

func TestBreaker_PassesThroughWhenHealthy(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := NewBreakerStore[domain.CartLine](
		NewRedisStore[domain.CartLine](client, testKey, zerolog.Nop()), "cart-snapshots")
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleLines()))
	got, err := store.Restore(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
