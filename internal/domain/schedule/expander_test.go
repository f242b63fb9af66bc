//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"tourbook/internal/domain/schedule"
	"tourbook/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpand_Weekly(t *testing.T) {
	dep, err := schedule.NewRecurring(uuid.New(), schedule.PatternWeekly,
		date(2024, 1, 1), date(2024, 2, 1), nil)
	require.NoError(t, err)

	got := schedule.Expand(dep, date(2023, 12, 1))

	want := []time.Time{
		date(2024, 1, 1),
		date(2024, 1, 8),
		date(2024, 1, 15),
		date(2024, 1, 22),
		date(2024, 1, 29),
	}
	assert.Equal(t, want, got)
}

func TestExpand_Patterns(t *testing.T) {
	start, end := date(2024, 1, 1), date(2024, 3, 1)
	now := date(2023, 12, 1)

	cases := []struct {
		name    string
		pattern schedule.Pattern
		first   []time.Time
	}{
		{"daily", schedule.PatternDaily, []time.Time{date(2024, 1, 1), date(2024, 1, 2), date(2024, 1, 3)}},
		{"biweekly", schedule.PatternBiweekly, []time.Time{date(2024, 1, 1), date(2024, 1, 15), date(2024, 1, 29)}},
		{"monthly", schedule.PatternMonthly, []time.Time{date(2024, 1, 1), date(2024, 2, 1), date(2024, 3, 1)}},
		{"unrecognized pattern steps a week", schedule.Pattern("fortnightly-ish"), []time.Time{date(2024, 1, 1), date(2024, 1, 8), date(2024, 1, 15)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dep := schedule.ReconstructDeparture(uuid.New(), uuid.New(), true, tc.pattern, start, end, nil)
			got := schedule.Expand(dep, now)
			require.GreaterOrEqual(t, len(got), len(tc.first))
			assert.Equal(t, tc.first, got[:len(tc.first)])
		})
	}
}

func TestExpand_MissingPatternDefaultsToWeekly(t *testing.T) {
	dep, err := schedule.NewRecurring(uuid.New(), "", date(2024, 1, 1), date(2024, 1, 20), nil)
	require.NoError(t, err)

	got := schedule.Expand(dep, date(2023, 12, 1))
	assert.Equal(t, []time.Time{date(2024, 1, 1), date(2024, 1, 8), date(2024, 1, 15)}, got)
}

func TestExpand_FiltersPastInstances(t *testing.T) {
	dep, err := schedule.NewRecurring(uuid.New(), schedule.PatternWeekly,
		date(2024, 1, 1), date(2024, 2, 1), nil)
	require.NoError(t, err)

	// Mid-window "now"; the 1st and 8th are already gone.
	got := schedule.Expand(dep, time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC))
	assert.Equal(t, []time.Time{date(2024, 1, 15), date(2024, 1, 22), date(2024, 1, 29)}, got)
}

func TestExpand_StartAfterEndIsEmpty(t *testing.T) {
	dep, err := schedule.NewRecurring(uuid.New(), schedule.PatternDaily,
		date(2024, 2, 1), date(2024, 1, 1), nil)
	require.NoError(t, err)

	assert.Empty(t, schedule.Expand(dep, date(2023, 12, 1)))
}

func TestExpand_OneOff(t *testing.T) {
	t.Run("future start date is the only instance", func(t *testing.T) {
		dep, err := schedule.NewOneOff(uuid.New(), date(2024, 6, 1), date(2024, 6, 10), nil)
		require.NoError(t, err)

		assert.Equal(t, []time.Time{date(2024, 6, 1)}, schedule.Expand(dep, date(2024, 1, 1)))
	})

	t.Run("today still counts", func(t *testing.T) {
		dep, err := schedule.NewOneOff(uuid.New(), date(2024, 6, 1), date(2024, 6, 10), nil)
		require.NoError(t, err)

		assert.Equal(t, []time.Time{date(2024, 6, 1)}, schedule.Expand(dep, time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC)))
	})

	t.Run("past start date yields nothing", func(t *testing.T) {
		dep, err := schedule.NewOneOff(uuid.New(), date(2024, 6, 1), date(2024, 6, 10), nil)
		require.NoError(t, err)

		assert.Empty(t, schedule.Expand(dep, date(2024, 7, 1)))
	})
}

func TestExpand_InstanceCap(t *testing.T) {
	// A daily departure spanning three years would produce ~1100 instances
	// without the ceiling.
	dep, err := schedule.NewRecurring(uuid.New(), schedule.PatternDaily,
		date(2024, 1, 1), date(2027, 1, 1), nil)
	require.NoError(t, err)

	now := date(2024, 1, 1)
	got := schedule.Expand(dep, now)

	require.Len(t, got, schedule.MaxInstances)

	today := clock.Today(now)
	for i, d := range got {
		assert.False(t, d.Before(today), "instance %d is in the past", i)
		if i > 0 {
			assert.True(t, got[i-1].Before(d), "instances must ascend")
		}
	}
}
