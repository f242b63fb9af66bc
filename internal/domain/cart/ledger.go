package cart

import (
	"tourbook/internal/pkg/errs"
)

// childUnitWeight is the child weight used when deriving an implied
// per-adult price from a stored total. Booking-time pricing bills children
// at 0.70 of the adult price; the recompute here has always used 0.5.
// The mismatch is inherited and intentionally preserved until product
// decides which constant is right.
const childUnitWeight = 0.5

type ParticipantKind string

const (
	KindAdults   ParticipantKind = "adults"
	KindChildren ParticipantKind = "children"
)

func (k ParticipantKind) IsValid() bool {
	return k == KindAdults || k == KindChildren
}

// Booking is one confirmed-but-unpurchased entry in a visitor's cart.
// The whole collection is serialized as a single JSON array per cart key.
type Booking struct {
	BookingReference string  `json:"bookingReference"`
	TourID           string  `json:"tourId"`
	TourTitle        string  `json:"tourTitle"`
	TourCode         string  `json:"tourCode"`
	DepartureDate    string  `json:"departureDate"`
	Adults           int     `json:"adults"`
	Children         int     `json:"children"`
	ContactName      string  `json:"contactName"`
	ContactEmail     string  `json:"contactEmail"`
	ContactPhone     string  `json:"contactPhone"`
	BasePrice        float64 `json:"basePrice"`
	AdultPrice       float64 `json:"adultPrice"`
	ChildPrice       float64 `json:"childPrice"`
	TotalPrice       float64 `json:"totalPrice"`
	Currency         string  `json:"currency"`
}

// Ledger holds one cart's bookings in insertion order and keeps totals
// consistent as participant counts change. It is pure in-memory state;
// persistence goes through a Store.
type Ledger struct {
	items []Booking
}

func NewLedger(items []Booking) *Ledger {
	return &Ledger{items: items}
}

func (l *Ledger) Add(b Booking) {
	l.items = append(l.items, b)
}

func (l *Ledger) Remove(reference string) bool {
	for i, item := range l.items {
		if item.BookingReference == reference {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

func (l *Ledger) Clear() {
	l.items = nil
}

func (l *Ledger) Items() []Booking {
	return l.items
}

func (l *Ledger) Len() int {
	return len(l.items)
}

func (l *Ledger) Subtotal() float64 {
	var sum float64
	for _, item := range l.items {
		sum += item.TotalPrice
	}
	return sum
}

// UpdateParticipants applies a signed delta to one entry's adult or child
// count, clamping adults at 1 and children at 0, then recomputes the
// entry's total from the implied per-adult price derived from the stored
// total. The stored breakdown (adultPrice/childPrice) keeps its
// booking-time values; only participants and total change.
func (l *Ledger) UpdateParticipants(reference string, kind ParticipantKind, delta int) (Booking, error) {
	if !kind.IsValid() {
		return Booking{}, errs.ErrInvalidParticipants
	}

	for i := range l.items {
		item := &l.items[i]
		if item.BookingReference != reference {
			continue
		}

		unitPrice := item.TotalPrice / (float64(item.Adults) + float64(item.Children)*childUnitWeight)

		switch kind {
		case KindAdults:
			item.Adults += delta
			if item.Adults < 1 {
				item.Adults = 1
			}
		case KindChildren:
			item.Children += delta
			if item.Children < 0 {
				item.Children = 0
			}
		}

		item.TotalPrice = unitPrice * (float64(item.Adults) + float64(item.Children)*childUnitWeight)
		return *item, nil
	}

	return Booking{}, errs.ErrCartItemNotFound
}
