//go:build unit

package commands_test

import (
	"context"
	"testing"

	"tourbook/internal/domain/cart"
	"tourbook/internal/infra/cartstore"
	"tourbook/internal/pkg/errs"
	"tourbook/internal/usecase/commands"
	"tourbook/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCart(t *testing.T, store *cartstore.MemoryStore, key string, items ...cart.Booking) {
	t.Helper()
	require.NoError(t, store.Save(context.Background(), key, items))
}

func TestCartCommands_Get(t *testing.T) {
	store := cartstore.NewMemoryStore()
	cmds := commands.NewCartCommands(store)

	t.Run("empty cart renders as an empty collection", func(t *testing.T) {
		view, err := cmds.Get(context.Background(), "fresh")
		require.NoError(t, err)
		assert.NotNil(t, view.Items)
		assert.Empty(t, view.Items)
		assert.Zero(t, view.Subtotal)
		assert.Zero(t, view.Total)
	})

	t.Run("subtotal and total follow the stored entries", func(t *testing.T) {
		seedCart(t, store, "k1",
			builder.NewCartBookingBuilder().WithReference("BK-A").Build(),
			builder.NewCartBookingBuilder().WithReference("BK-B").Build(),
		)

		view, err := cmds.Get(context.Background(), "k1")
		require.NoError(t, err)
		assert.Len(t, view.Items, 2)
		assert.InDelta(t, 432.0, view.Subtotal, 1e-9)
		assert.InDelta(t, 432.0, view.Total, 1e-9)
		assert.Nil(t, view.PromoCode)
	})
}

func TestCartCommands_RemoveItem(t *testing.T) {
	store := cartstore.NewMemoryStore()
	cmds := commands.NewCartCommands(store)
	seedCart(t, store, "k1",
		builder.NewCartBookingBuilder().WithReference("BK-A").Build(),
		builder.NewCartBookingBuilder().WithReference("BK-B").Build(),
	)

	view, err := cmds.RemoveItem(context.Background(), "k1", "BK-A")
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "BK-B", view.Items[0].BookingReference)

	// removal is persisted, not just rendered
	stored, err := store.Load(context.Background(), "k1")
	require.NoError(t, err)
	assert.Len(t, stored, 1)

	_, err = cmds.RemoveItem(context.Background(), "k1", "BK-A")
	assert.ErrorIs(t, err, errs.ErrCartItemNotFound)
}

func TestCartCommands_UpdateParticipants(t *testing.T) {
	store := cartstore.NewMemoryStore()
	cmds := commands.NewCartCommands(store)
	seedCart(t, store, "k1", builder.NewCartBookingBuilder().WithReference("BK-A").Build())

	// 216 total over 2 adults and 1 child gives an 86.40 unit price
	view, err := cmds.UpdateParticipants(context.Background(), "k1", "BK-A", cart.KindChildren, 1)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Children)
	assert.InDelta(t, 259.2, view.Items[0].TotalPrice, 1e-9)

	_, err = cmds.UpdateParticipants(context.Background(), "k1", "BK-A", cart.ParticipantKind("infants"), 1)
	assert.ErrorIs(t, err, errs.ErrInvalidParticipants)

	_, err = cmds.UpdateParticipants(context.Background(), "k1", "BK-X", cart.KindAdults, 1)
	assert.ErrorIs(t, err, errs.ErrCartItemNotFound)
}

func TestCartCommands_PreviewPromo(t *testing.T) {
	store := cartstore.NewMemoryStore()
	cmds := commands.NewCartCommands(store)
	seedCart(t, store, "k1",
		builder.NewCartBookingBuilder().WithReference("BK-A").Build(),
		builder.NewCartBookingBuilder().WithReference("BK-B").Build(),
	)

	t.Run("known code discounts the aggregate only", func(t *testing.T) {
		view, err := cmds.PreviewPromo(context.Background(), "k1", "tour10")
		require.NoError(t, err)
		require.NotNil(t, view.PromoCode)
		assert.Equal(t, "TOUR10", *view.PromoCode)
		assert.InDelta(t, 432.0, view.Subtotal, 1e-9)
		assert.InDelta(t, 43.2, view.Discount, 1e-9)
		assert.InDelta(t, 388.8, view.Total, 1e-9)

		// stored entries keep their undiscounted totals
		stored, err := store.Load(context.Background(), "k1")
		require.NoError(t, err)
		assert.InDelta(t, 216.0, stored[0].TotalPrice, 1e-9)
	})

	t.Run("unknown code is rejected", func(t *testing.T) {
		_, err := cmds.PreviewPromo(context.Background(), "k1", "TOUR99")
		assert.ErrorIs(t, err, errs.ErrUnknownPromoCode)
	})
}
