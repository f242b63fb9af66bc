package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"tourbook/internal/domain/booking"
	"tourbook/internal/domain/cart"
	"tourbook/internal/domain/schedule"
	"tourbook/internal/domain/tour"
	"tourbook/internal/infra"
	"tourbook/internal/pkg/clock"
	"tourbook/internal/pkg/errs"
	"tourbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type SubmitBookingInput struct {
	TourID        uuid.UUID
	DepartureDate string // YYYY-MM-DD from the date picker
	Adults        int
	Children      int
	Name          string
	Email         string
	Phone         string
	CartKey       string
}

type BookingCommands interface {
	// Submit validates and prices a booking, persists it as pending/unpaid
	// and appends the result to the caller's cart.
	Submit(ctx context.Context, input SubmitBookingInput) (*queries.BookingView, error)
	UpdateStatus(ctx context.Context, reference string, next booking.Status) (*queries.BookingView, error)
	UpdatePaymentStatus(ctx context.Context, reference string, next booking.PaymentStatus) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	tourRepo    TourRepository
	bookingRepo BookingRepository
	cartStore   cart.Store
	clock       clock.Clock
}

func NewBookingCommands(
	tourRepo TourRepository,
	bookingRepo BookingRepository,
	cartStore cart.Store,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		tourRepo:    tourRepo,
		bookingRepo: bookingRepo,
		cartStore:   cartStore,
		clock:       clock,
	}
}

func (c *bookingCommandsImpl) Submit(ctx context.Context, input SubmitBookingInput) (*queries.BookingView, error) {
	departureDate, err := time.ParseInLocation(schedule.DateKeyFormat, input.DepartureDate, time.UTC)
	if err != nil {
		return nil, &booking.FieldError{Field: "departureDate", Reason: "must be YYYY-MM-DD"}
	}

	t, departures, err := c.tourRepo.FindByID(ctx, input.TourID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrTourNotFound)
		}
		return nil, err
	}

	now := c.clock.Now()

	// The calendar rebuilt from the current snapshot is the authority on
	// which dates are bookable and at what price.
	idx := schedule.BuildIndex(t, departures, now)
	entry, ok := idx.Lookup(input.DepartureDate)
	if !ok {
		return nil, errs.ErrDateUnavailable
	}
	quote := tour.Quote{BasePrice: entry.Price, EffectivePrice: entry.EffectivePrice()}

	draft, err := booking.NewDraft(t, departureDate, quote,
		input.Adults, input.Children, input.Name, input.Email, input.Phone, now)
	if err != nil {
		return nil, err
	}

	b := booking.NewBooking(t.ID(), newBookingReference(), draft)
	if err := c.bookingRepo.Create(ctx, b); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// The booking survives even when the cart append fails; the cart is a
	// convenience copy and the customer still holds the reference.
	if err := c.appendToCart(ctx, input.CartKey, b); err != nil {
		slog.Warn("failed to append booking to cart",
			"reference", b.Reference(), "error", err.Error())
	}

	return queries.BookingToView(b), nil
}

func (c *bookingCommandsImpl) UpdateStatus(ctx context.Context, reference string, next booking.Status) (*queries.BookingView, error) {
	b, err := c.bookingRepo.FindByReference(ctx, reference)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, err
	}

	if err := b.TransitionStatus(next); err != nil {
		return nil, err
	}

	if err := c.bookingRepo.UpdateStatus(ctx, reference, next); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return queries.BookingToView(b), nil
}

func (c *bookingCommandsImpl) UpdatePaymentStatus(ctx context.Context, reference string, next booking.PaymentStatus) (*queries.BookingView, error) {
	b, err := c.bookingRepo.FindByReference(ctx, reference)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, err
	}

	if err := b.TransitionPaymentStatus(next); err != nil {
		return nil, err
	}

	if err := c.bookingRepo.UpdatePaymentStatus(ctx, reference, next); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return queries.BookingToView(b), nil
}

func (c *bookingCommandsImpl) appendToCart(ctx context.Context, cartKey string, b *booking.Booking) error {
	if cartKey == "" {
		return nil
	}

	items, err := c.cartStore.Load(ctx, cartKey)
	if err != nil {
		return err
	}

	ledger := cart.NewLedger(items)
	ledger.Add(cart.Booking{
		BookingReference: b.Reference(),
		TourID:           b.TourID().String(),
		TourTitle:        b.TourTitle(),
		TourCode:         b.TourCode(),
		DepartureDate:    schedule.DateKey(b.DepartureDate()),
		Adults:           b.Participants().Adults(),
		Children:         b.Participants().Children(),
		ContactName:      b.Contact().Name(),
		ContactEmail:     b.Contact().Email(),
		ContactPhone:     b.Contact().Phone(),
		BasePrice:        b.Pricing().BasePrice,
		AdultPrice:       b.Pricing().AdultPrice,
		ChildPrice:       b.Pricing().ChildPrice,
		TotalPrice:       b.Pricing().TotalPrice,
		Currency:         b.Pricing().Currency,
	})

	return c.cartStore.Save(ctx, cartKey, ledger.Items())
}

// newBookingReference mints the server-assigned reference customers quote
// back at us: BK- plus the first segment of a fresh UUID, uppercased.
func newBookingReference() string {
	id := uuid.NewString()
	return "BK-" + strings.ToUpper(id[:8])
}
