//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"tourbook/internal/domain/schedule"
	"tourbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIndex(t *testing.T) {
	now := date(2023, 12, 1)
	windowFrom := date(2023, 11, 1)
	windowTo := date(2024, 12, 31)

	opt := builder.PercentageOption(100, 20, windowFrom, windowTo)
	tr, err := builder.NewTourBuilder().WithOption(opt).Build()
	require.NoError(t, err)

	dep, err := schedule.NewRecurring(tr.ID(), schedule.PatternWeekly,
		date(2024, 1, 1), date(2024, 1, 20), []uuid.UUID{opt.ID})
	require.NoError(t, err)

	idx := schedule.BuildIndex(tr, []*schedule.Departure{dep}, now)

	require.Len(t, idx, 3)
	entry, ok := idx.Lookup("2024-01-08")
	require.True(t, ok)
	assert.Equal(t, 100.0, entry.Price)
	require.NotNil(t, entry.DiscountedPrice)
	assert.Equal(t, 80.0, *entry.DiscountedPrice)
	assert.Equal(t, 80.0, entry.EffectivePrice())

	_, ok = idx.Lookup("2024-01-02")
	assert.False(t, ok)
}

func TestBuildIndex_NoDiscountOmitsDiscountedPrice(t *testing.T) {
	tr, err := builder.NewTourBuilder().WithPrice(150).Build()
	require.NoError(t, err)

	dep, err := schedule.NewOneOff(tr.ID(), date(2024, 5, 1), date(2024, 5, 7), nil)
	require.NoError(t, err)

	idx := schedule.BuildIndex(tr, []*schedule.Departure{dep}, date(2024, 1, 1))

	entry, ok := idx.Lookup("2024-05-01")
	require.True(t, ok)
	assert.Equal(t, 150.0, entry.Price)
	assert.Nil(t, entry.DiscountedPrice)
	assert.Equal(t, 150.0, entry.EffectivePrice())
}

func TestBuildIndex_SaleOverrideOnEveryDate(t *testing.T) {
	opt := builder.PercentageOption(100, 20, date(2023, 1, 1), date(2025, 1, 1))
	tr, err := builder.NewTourBuilder().WithPrice(100).WithSale(50).WithOption(opt).Build()
	require.NoError(t, err)

	dep, err := schedule.NewRecurring(tr.ID(), schedule.PatternWeekly,
		date(2024, 1, 1), date(2024, 2, 1), []uuid.UUID{opt.ID})
	require.NoError(t, err)

	idx := schedule.BuildIndex(tr, []*schedule.Departure{dep}, date(2023, 12, 1))

	require.Len(t, idx, 5)
	for _, entry := range idx.Sorted() {
		require.NotNil(t, entry.DiscountedPrice)
		assert.Equal(t, 50.0, *entry.DiscountedPrice)
	}
}

// Two departures landing on the same date: the one processed last wins
// outright, no merging. Inherited behavior, pinned so a change is loud.
func TestBuildIndex_DateCollisionLastProcessedWins(t *testing.T) {
	cheap := builder.PlainOption(80)
	dear := builder.PlainOption(120)
	tr, err := builder.NewTourBuilder().WithOption(cheap).WithOption(dear).Build()
	require.NoError(t, err)

	first, err := schedule.NewOneOff(tr.ID(), date(2024, 3, 1), date(2024, 3, 5), []uuid.UUID{cheap.ID})
	require.NoError(t, err)
	second, err := schedule.NewOneOff(tr.ID(), date(2024, 3, 1), date(2024, 3, 8), []uuid.UUID{dear.ID})
	require.NoError(t, err)

	idx := schedule.BuildIndex(tr, []*schedule.Departure{first, second}, date(2024, 1, 1))

	entry, ok := idx.Lookup("2024-03-01")
	require.True(t, ok)
	assert.Equal(t, 120.0, entry.Price)

	// Reversed processing order flips the winner.
	idx = schedule.BuildIndex(tr, []*schedule.Departure{second, first}, date(2024, 1, 1))
	entry, ok = idx.Lookup("2024-03-01")
	require.True(t, ok)
	assert.Equal(t, 80.0, entry.Price)
}

func TestBuildIndex_DeterministicRebuild(t *testing.T) {
	opt := builder.PercentageOption(100, 10, date(2023, 1, 1), date(2025, 1, 1))
	tr, err := builder.NewTourBuilder().WithOption(opt).Build()
	require.NoError(t, err)

	dep, err := schedule.NewRecurring(tr.ID(), schedule.PatternBiweekly,
		date(2024, 1, 1), date(2024, 6, 1), []uuid.UUID{opt.ID})
	require.NoError(t, err)

	now := date(2023, 12, 15)
	a := schedule.BuildIndex(tr, []*schedule.Departure{dep}, now)
	b := schedule.BuildIndex(tr, []*schedule.Departure{dep}, now)
	assert.Equal(t, a, b)
}

func TestIndex_Sorted(t *testing.T) {
	tr, err := builder.NewTourBuilder().Build()
	require.NoError(t, err)

	dep, err := schedule.NewRecurring(tr.ID(), schedule.PatternWeekly,
		date(2024, 1, 1), date(2024, 2, 1), nil)
	require.NoError(t, err)

	idx := schedule.BuildIndex(tr, []*schedule.Departure{dep}, date(2023, 12, 1))

	entries := idx.Sorted()
	require.Len(t, entries, 5)
	for i := 1; i < len(entries); i++ {
		assert.True(t, entries[i-1].Date.Before(entries[i].Date))
	}
}

func TestBuildIndex_Empty(t *testing.T) {
	tr, err := builder.NewTourBuilder().Build()
	require.NoError(t, err)

	idx := schedule.BuildIndex(tr, nil, time.Now())
	assert.Empty(t, idx)
	assert.Empty(t, idx.Sorted())
}
