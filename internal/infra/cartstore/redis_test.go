//go:build unit

package cartstore_test

import (
	"context"
	"testing"
	"time"

	"tourbook/internal/domain/cart"
	"tourbook/internal/infra/cartstore"
	"tourbook/tests/common/builder"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*cartstore.RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cartstore.NewRedisStore(client, time.Hour), mr
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	items := []cart.Booking{
		builder.NewCartBookingBuilder().WithReference("BK-A").Build(),
		builder.NewCartBookingBuilder().WithReference("BK-B").Build(),
	}
	require.NoError(t, store.Save(ctx, "k1", items))

	loaded, err := store.Load(ctx, "k1")
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "BK-A", loaded[0].BookingReference)
	assert.Equal(t, items[0].TotalPrice, loaded[0].TotalPrice)
}

func TestRedisStore_LoadMissingKey(t *testing.T) {
	store, _ := newTestStore(t)

	loaded, err := store.Load(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestRedisStore_SaveEmptyDeletesKey(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	items := []cart.Booking{builder.NewCartBookingBuilder().Build()}
	require.NoError(t, store.Save(ctx, "k1", items))
	require.True(t, mr.Exists("cart:k1"))

	require.NoError(t, store.Save(ctx, "k1", nil))
	assert.False(t, mr.Exists("cart:k1"))
}

func TestRedisStore_Clear(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "k1", []cart.Booking{builder.NewCartBookingBuilder().Build()}))
	require.NoError(t, store.Clear(ctx, "k1"))

	assert.False(t, mr.Exists("cart:k1"))
	loaded, err := store.Load(ctx, "k1")
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestRedisStore_SaveRefreshesTTL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "k1", []cart.Booking{builder.NewCartBookingBuilder().Build()}))
	assert.Equal(t, time.Hour, mr.TTL("cart:k1"))
}
