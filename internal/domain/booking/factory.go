package booking

import (
	"time"

	"tourbook/internal/domain/tour"
	"tourbook/internal/pkg/clock"
)

// ChildRate bills children at a fixed 70% of the resolved adult price.
// Hardcoded business rule; the cart recompute deliberately uses a
// different weight (see the cart package).
const ChildRate = 0.70

// Draft is a fully validated, fully priced booking submission. It exists
// only between form validation and remote submission.
type Draft struct {
	TourID        string
	TourCode      string
	TourTitle     string
	DepartureDate time.Time
	Participants  Participants
	Contact       Contact
	Pricing       Pricing
}

// NewDraft validates user input and prices the submission from an already
// resolved quote. It never re-derives discount math; pricing authority
// stays with tour.ResolvePrice.
func NewDraft(
	t *tour.Tour,
	departureDate time.Time,
	quote tour.Quote,
	adults, children int,
	name, email, phone string,
	now time.Time,
) (*Draft, error) {
	contact, err := NewContact(name, email, phone)
	if err != nil {
		return nil, err
	}

	if clock.Today(departureDate).Before(clock.Today(now)) {
		return nil, &FieldError{Field: "departureDate", Reason: "must not be in the past"}
	}

	participants, err := NewParticipants(adults, children)
	if err != nil {
		return nil, err
	}

	adultPrice := quote.EffectivePrice * float64(participants.Adults())
	childPrice := quote.EffectivePrice * float64(participants.Children()) * ChildRate

	return &Draft{
		TourID:        t.ID().String(),
		TourCode:      t.Code(),
		TourTitle:     t.Title(),
		DepartureDate: clock.Today(departureDate),
		Participants:  participants,
		Contact:       contact,
		Pricing: Pricing{
			BasePrice:  quote.BasePrice,
			AdultPrice: adultPrice,
			ChildPrice: childPrice,
			TotalPrice: adultPrice + childPrice,
			Currency:   t.Currency(),
		},
	}, nil
}
