package schedule

import (
	"time"

	"tourbook/internal/pkg/clock"
)

// MaxInstances caps a single departure's expansion. Malformed recurrence
// rows (end date years out, zero-width steps from bad data) must not be
// able to run the loop away; one year of instances is the hard ceiling.
const MaxInstances = 365

// Expand turns one departure into its concrete bookable dates: ascending,
// deduplicated, all at midnight UTC, none before today.
func Expand(d *Departure, now time.Time) []time.Time {
	today := clock.Today(now)

	if !d.Recurring() {
		start := d.StartDate()
		if start.Before(today) {
			return nil
		}
		return []time.Time{start}
	}

	start, end := d.StartDate(), d.EndDate()
	if start.After(end) {
		return nil
	}

	pattern := d.Pattern()
	if pattern == "" {
		pattern = PatternWeekly
	}

	dates := make([]time.Time, 0, MaxInstances)
	seen := make(map[time.Time]struct{}, MaxInstances)
	for cur := start; !cur.After(end) && len(dates) < MaxInstances; cur = clock.Today(pattern.Next(cur)) {
		if cur.Before(today) {
			continue
		}
		if _, dup := seen[cur]; dup {
			continue
		}
		seen[cur] = struct{}{}
		dates = append(dates, cur)
	}

	return dates
}
