package booking

import (
	"time"

	"tourbook/internal/pkg/errs"

	"github.com/google/uuid"
)

// Booking is the server-held record. It always enters the system as
// pending/unpaid; both states move only through the transition rules on
// their types, via separate admin actions.
type Booking struct {
	id            uuid.UUID
	reference     string
	tourID        uuid.UUID
	tourCode      string
	tourTitle     string
	departureDate time.Time
	participants  Participants
	contact       Contact
	pricing       Pricing
	status        Status
	paymentStatus PaymentStatus
	createdAt     time.Time
	updatedAt     time.Time
}

func NewBooking(tourID uuid.UUID, reference string, draft *Draft) *Booking {
	return &Booking{
		id:            uuid.New(),
		reference:     reference,
		tourID:        tourID,
		tourCode:      draft.TourCode,
		tourTitle:     draft.TourTitle,
		departureDate: draft.DepartureDate,
		participants:  draft.Participants,
		contact:       draft.Contact,
		pricing:       draft.Pricing,
		status:        StatusPending,
		paymentStatus: PaymentUnpaid,
	}
}

func ReconstructBooking(
	id uuid.UUID,
	reference string,
	tourID uuid.UUID,
	tourCode, tourTitle string,
	departureDate time.Time,
	participants Participants,
	contact Contact,
	pricing Pricing,
	status Status,
	paymentStatus PaymentStatus,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		reference:     reference,
		tourID:        tourID,
		tourCode:      tourCode,
		tourTitle:     tourTitle,
		departureDate: departureDate,
		participants:  participants,
		contact:       contact,
		pricing:       pricing,
		status:        status,
		paymentStatus: paymentStatus,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (b *Booking) TransitionStatus(next Status) error {
	if !b.status.CanTransitionTo(next) {
		return errs.ErrInvalidTransition
	}
	b.status = next
	return nil
}

func (b *Booking) TransitionPaymentStatus(next PaymentStatus) error {
	if !b.paymentStatus.CanTransitionTo(next) {
		return errs.ErrInvalidTransition
	}
	b.paymentStatus = next
	return nil
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) Reference() string            { return b.reference }
func (b *Booking) TourID() uuid.UUID            { return b.tourID }
func (b *Booking) TourCode() string             { return b.tourCode }
func (b *Booking) TourTitle() string            { return b.tourTitle }
func (b *Booking) DepartureDate() time.Time     { return b.departureDate }
func (b *Booking) Participants() Participants   { return b.participants }
func (b *Booking) Contact() Contact             { return b.contact }
func (b *Booking) Pricing() Pricing             { return b.pricing }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
