package queries

import (
	"context"

	"tourbook/internal/domain/booking"
	"tourbook/internal/domain/schedule"
	"tourbook/internal/infra"
	"tourbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingReadRepo interface {
	FindByReference(ctx context.Context, reference string) (*booking.Booking, error)
	ListByTour(ctx context.Context, tourID uuid.UUID) ([]*booking.Booking, error)
}

type BookingQueries interface {
	GetByReference(ctx context.Context, reference string) (*BookingView, error)
	ListByTour(ctx context.Context, tourID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingReadRepo
}

func NewBookingQueries(repo BookingReadRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByReference(ctx context.Context, reference string) (*BookingView, error) {
	b, err := q.repo.FindByReference(ctx, reference)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, err
	}
	return BookingToView(b), nil
}

func (q *bookingQueriesImpl) ListByTour(ctx context.Context, tourID uuid.UUID) ([]*BookingView, error) {
	bookings, err := q.repo.ListByTour(ctx, tourID)
	if err != nil {
		return nil, err
	}

	views := make([]*BookingView, len(bookings))
	for i, b := range bookings {
		views[i] = BookingToView(b)
	}
	return views, nil
}

func BookingToView(b *booking.Booking) *BookingView {
	return &BookingView{
		Reference:     b.Reference(),
		TourID:        b.TourID(),
		TourCode:      b.TourCode(),
		TourTitle:     b.TourTitle(),
		DepartureDate: schedule.DateKey(b.DepartureDate()),
		Adults:        b.Participants().Adults(),
		Children:      b.Participants().Children(),
		ContactName:   b.Contact().Name(),
		ContactEmail:  b.Contact().Email(),
		ContactPhone:  b.Contact().Phone(),
		BasePrice:     b.Pricing().BasePrice,
		AdultPrice:    b.Pricing().AdultPrice,
		ChildPrice:    b.Pricing().ChildPrice,
		TotalPrice:    b.Pricing().TotalPrice,
		Currency:      b.Pricing().Currency,
		Status:        b.Status().String(),
		PaymentStatus: b.PaymentStatus().String(),
		CreatedAt:     b.CreatedAt(),
	}
}
