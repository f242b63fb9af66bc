//go:build unit

package tour_test

import (
	"testing"
	"time"

	"tourbook/internal/domain/tour"
	"tourbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now         = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	windowOpen  = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	windowClose = time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
)

func TestResolvePrice_SaleOverride(t *testing.T) {
	opt := builder.PercentageOption(100, 20, windowOpen, windowClose)
	tr, err := builder.NewTourBuilder().WithPrice(100).WithSale(50).WithOption(opt).Build()
	require.NoError(t, err)

	// The sale beats the active option discount on every date.
	quote := tour.ResolvePrice(tr, []uuid.UUID{opt.ID}, now)
	assert.Equal(t, 100.0, quote.BasePrice)
	assert.Equal(t, 50.0, quote.EffectivePrice)
	assert.True(t, quote.Discounted())

	outside := windowClose.AddDate(0, 2, 0)
	quote = tour.ResolvePrice(tr, []uuid.UUID{opt.ID}, outside)
	assert.Equal(t, 50.0, quote.EffectivePrice)
}

func TestResolvePrice_PercentageDiscount(t *testing.T) {
	opt := builder.PercentageOption(100, 20, windowOpen, windowClose)
	tr, err := builder.NewTourBuilder().WithOption(opt).Build()
	require.NoError(t, err)

	t.Run("inside window", func(t *testing.T) {
		quote := tour.ResolvePrice(tr, []uuid.UUID{opt.ID}, now)
		assert.Equal(t, 100.0, quote.BasePrice)
		assert.Equal(t, 80.0, quote.EffectivePrice)
	})

	t.Run("outside window", func(t *testing.T) {
		after := windowClose.AddDate(0, 0, 1)
		quote := tour.ResolvePrice(tr, []uuid.UUID{opt.ID}, after)
		assert.Equal(t, 100.0, quote.EffectivePrice)
		assert.False(t, quote.Discounted())
	})

	t.Run("unrounded float arithmetic", func(t *testing.T) {
		odd := builder.PercentageOption(99.99, 15, windowOpen, windowClose)
		trOdd, err := builder.NewTourBuilder().WithOption(odd).Build()
		require.NoError(t, err)

		quote := tour.ResolvePrice(trOdd, []uuid.UUID{odd.ID}, now)
		assert.InDelta(t, 84.9915, quote.EffectivePrice, 1e-9)
	})
}

func TestResolvePrice_FixedDiscount(t *testing.T) {
	t.Run("replaces option price", func(t *testing.T) {
		opt := builder.FixedOption(100, 75, windowOpen, windowClose)
		tr, err := builder.NewTourBuilder().WithOption(opt).Build()
		require.NoError(t, err)

		quote := tour.ResolvePrice(tr, []uuid.UUID{opt.ID}, now)
		assert.Equal(t, 100.0, quote.BasePrice)
		assert.Equal(t, 75.0, quote.EffectivePrice)
	})

	t.Run("fixed price above base is kept as authored", func(t *testing.T) {
		opt := builder.FixedOption(100, 150, windowOpen, windowClose)
		tr, err := builder.NewTourBuilder().WithOption(opt).Build()
		require.NoError(t, err)

		quote := tour.ResolvePrice(tr, []uuid.UUID{opt.ID}, now)
		assert.Equal(t, 150.0, quote.EffectivePrice)
	})
}

func TestResolvePrice_Fallback(t *testing.T) {
	t.Run("no selected options", func(t *testing.T) {
		tr, err := builder.NewTourBuilder().WithPrice(120).Build()
		require.NoError(t, err)

		quote := tour.ResolvePrice(tr, nil, now)
		assert.Equal(t, 120.0, quote.BasePrice)
		assert.Equal(t, 120.0, quote.EffectivePrice)
	})

	t.Run("dangling option id falls back to tour price", func(t *testing.T) {
		opt := builder.PercentageOption(100, 20, windowOpen, windowClose)
		tr, err := builder.NewTourBuilder().WithPrice(120).WithOption(opt).Build()
		require.NoError(t, err)

		quote := tour.ResolvePrice(tr, []uuid.UUID{uuid.New()}, now)
		assert.Equal(t, 120.0, quote.EffectivePrice)
	})

	t.Run("only the first selected option is consulted", func(t *testing.T) {
		first := builder.PlainOption(90)
		second := builder.PlainOption(200)
		tr, err := builder.NewTourBuilder().WithOption(first).WithOption(second).Build()
		require.NoError(t, err)

		quote := tour.ResolvePrice(tr, []uuid.UUID{first.ID, second.ID}, now)
		assert.Equal(t, 90.0, quote.EffectivePrice)
	})
}

func TestDiscountValidation(t *testing.T) {
	window := tour.DateRange{From: windowOpen, To: windowClose}

	_, err := tour.NewPercentageDiscount(window, -1)
	assert.ErrorIs(t, err, tour.ErrInvalidPercentage)

	_, err = tour.NewPercentageDiscount(window, 101)
	assert.ErrorIs(t, err, tour.ErrInvalidPercentage)

	_, err = tour.NewPercentageDiscount(window, 0)
	assert.NoError(t, err)

	_, err = tour.NewPercentageDiscount(window, 100)
	assert.NoError(t, err)

	_, err = tour.NewFixedDiscount(window, -5)
	assert.ErrorIs(t, err, tour.ErrNegativeFixedPrice)
}

func TestDiscountWindow(t *testing.T) {
	discount, err := tour.NewPercentageDiscount(tour.DateRange{From: windowOpen, To: windowClose}, 10)
	require.NoError(t, err)

	assert.True(t, discount.ActiveAt(windowOpen))
	assert.True(t, discount.ActiveAt(windowClose))
	assert.False(t, discount.ActiveAt(windowOpen.Add(-time.Second)))
	assert.False(t, discount.ActiveAt(windowClose.Add(time.Second)))

	disabled := discount
	disabled.Enabled = false
	assert.False(t, disabled.ActiveAt(now))
}
