package commands

import (
	"context"

	"tourbook/internal/domain/booking"
	"tourbook/internal/domain/schedule"
	"tourbook/internal/domain/tour"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=mocks/ports.go -package=mocks

// TourRepository is the write-side port for tour aggregates. FindByID
// returns the tour plus its departures in stored order, the order the
// availability index processes them in.
type TourRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*tour.Tour, []*schedule.Departure, error)
	Create(ctx context.Context, t *tour.Tour, departures []*schedule.Departure) error
	Update(ctx context.Context, t *tour.Tour) error
	AddDeparture(ctx context.Context, d *schedule.Departure) error
	RemoveDeparture(ctx context.Context, tourID, departureID uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByReference(ctx context.Context, reference string) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, reference string, status booking.Status) error
	UpdatePaymentStatus(ctx context.Context, reference string, status booking.PaymentStatus) error
}
