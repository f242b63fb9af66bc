package schedule

import (
	"sort"
	"time"

	"tourbook/internal/domain/tour"
)

// DateKeyFormat keys calendar lookups, matching the wire format date pickers
// send back.
const DateKeyFormat = "2006-01-02"

func DateKey(t time.Time) string {
	return t.Format(DateKeyFormat)
}

// Entry is one bookable calendar date with its resolved pricing.
// DiscountedPrice is set only when the effective price differs from base.
type Entry struct {
	Date            time.Time
	Price           float64
	DiscountedPrice *float64
}

func (e Entry) EffectivePrice() float64 {
	if e.DiscountedPrice != nil {
		return *e.DiscountedPrice
	}
	return e.Price
}

// Index is the date-keyed availability table for one tour. It is derived
// state: rebuilt wholesale from the tour snapshot on every read, never
// patched in place.
type Index map[string]Entry

// BuildIndex expands every departure and prices every resulting date.
//
// When two departures of the same tour land on the same calendar date the
// entry processed last wins, with departures walked in stored order. That
// collision rule is inherited behavior, not a contract; don't build on it.
func BuildIndex(t *tour.Tour, departures []*Departure, now time.Time) Index {
	idx := make(Index)
	for _, dep := range departures {
		quote := tour.ResolvePrice(t, dep.SelectedOptions(), now)
		for _, date := range Expand(dep, now) {
			entry := Entry{Date: date, Price: quote.BasePrice}
			if quote.Discounted() {
				eff := quote.EffectivePrice
				entry.DiscountedPrice = &eff
			}
			idx[DateKey(date)] = entry
		}
	}
	return idx
}

func (idx Index) Lookup(key string) (Entry, bool) {
	e, ok := idx[key]
	return e, ok
}

// Sorted returns the entries in ascending date order for calendar rendering.
func (idx Index) Sorted() []Entry {
	entries := make([]Entry, 0, len(idx))
	for _, e := range idx {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries
}
