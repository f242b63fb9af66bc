//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tourbook/internal/domain/booking"
	"tourbook/internal/domain/cart"
	"tourbook/internal/domain/schedule"
	"tourbook/internal/infra"
	"tourbook/internal/infra/cartstore"
	"tourbook/internal/pkg/clock"
	"tourbook/internal/pkg/errs"
	"tourbook/internal/usecase/commands"
	"tourbook/internal/usecase/commands/mocks"
	"tourbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func newBookingSetup(t *testing.T) (*mocks.MockTourRepository, *mocks.MockBookingRepository, *cartstore.MemoryStore, commands.BookingCommands) {
	t.Helper()

	ctrl := gomock.NewController(t)
	tourRepo := mocks.NewMockTourRepository(ctrl)
	bookingRepo := mocks.NewMockBookingRepository(ctrl)
	store := cartstore.NewMemoryStore()
	cmds := commands.NewBookingCommands(tourRepo, bookingRepo, store, clock.NewMockClock(testNow))

	return tourRepo, bookingRepo, store, cmds
}

func submitInput(tourID uuid.UUID) commands.SubmitBookingInput {
	return commands.SubmitBookingInput{
		TourID:        tourID,
		DepartureDate: "2024-06-15",
		Adults:        2,
		Children:      1,
		Name:          "Jamie Traveler",
		Email:         "jamie@example.com",
		Phone:         "+1-555-0100",
		CartKey:       "cart-key-1",
	}
}

func TestBookingCommands_Submit(t *testing.T) {
	tour, err := builder.NewTourBuilder().WithPrice(80).Build()
	require.NoError(t, err)
	departure, err := schedule.NewOneOff(tour.ID(), time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), time.Time{}, nil)
	require.NoError(t, err)

	t.Run("prices and persists a pending unpaid booking", func(t *testing.T) {
		tourRepo, bookingRepo, store, cmds := newBookingSetup(t)

		tourRepo.EXPECT().FindByID(gomock.Any(), tour.ID()).
			Return(tour, []*schedule.Departure{departure}, nil)

		var created *booking.Booking
		bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) error {
				created = b
				return nil
			})

		view, err := cmds.Submit(context.Background(), submitInput(tour.ID()))
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(view.Reference, "BK-"))
		assert.Equal(t, "2024-06-15", view.DepartureDate)
		assert.Equal(t, "pending", view.Status)
		assert.Equal(t, "unpaid", view.PaymentStatus)
		assert.InDelta(t, 160.0, view.AdultPrice, 1e-9)
		assert.InDelta(t, 56.0, view.ChildPrice, 1e-9)
		assert.InDelta(t, 216.0, view.TotalPrice, 1e-9)

		require.NotNil(t, created)
		assert.Equal(t, view.Reference, created.Reference())

		items, err := store.Load(context.Background(), "cart-key-1")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, view.Reference, items[0].BookingReference)
		assert.InDelta(t, 216.0, items[0].TotalPrice, 1e-9)
	})

	t.Run("rejects a malformed departure date before touching the repo", func(t *testing.T) {
		_, _, _, cmds := newBookingSetup(t)

		input := submitInput(tour.ID())
		input.DepartureDate = "15/06/2024"

		_, err := cmds.Submit(context.Background(), input)
		var fieldErr *booking.FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "departureDate", fieldErr.Field)
	})

	t.Run("maps a missing tour to the not-found sentinel", func(t *testing.T) {
		tourRepo, _, _, cmds := newBookingSetup(t)

		tourRepo.EXPECT().FindByID(gomock.Any(), tour.ID()).
			Return(nil, nil, infra.WrapRepoErr("tour not found", errs.New("no rows"), infra.KindNotFound))

		_, err := cmds.Submit(context.Background(), submitInput(tour.ID()))
		assert.ErrorIs(t, err, errs.ErrTourNotFound)
	})

	t.Run("rejects a date the calendar does not offer", func(t *testing.T) {
		tourRepo, _, _, cmds := newBookingSetup(t)

		tourRepo.EXPECT().FindByID(gomock.Any(), tour.ID()).
			Return(tour, []*schedule.Departure{departure}, nil)

		input := submitInput(tour.ID())
		input.DepartureDate = "2024-06-16"

		_, err := cmds.Submit(context.Background(), input)
		assert.ErrorIs(t, err, errs.ErrDateUnavailable)
	})

	t.Run("surfaces the first failing contact field without persisting", func(t *testing.T) {
		tourRepo, _, _, cmds := newBookingSetup(t)

		tourRepo.EXPECT().FindByID(gomock.Any(), tour.ID()).
			Return(tour, []*schedule.Departure{departure}, nil)

		input := submitInput(tour.ID())
		input.Name = ""
		input.Email = "not-an-email"

		_, err := cmds.Submit(context.Background(), input)
		var fieldErr *booking.FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "name", fieldErr.Field)
	})

	t.Run("marks persistence failures", func(t *testing.T) {
		tourRepo, bookingRepo, _, cmds := newBookingSetup(t)

		tourRepo.EXPECT().FindByID(gomock.Any(), tour.ID()).
			Return(tour, []*schedule.Departure{departure}, nil)
		bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(errors.New("connection reset"))

		_, err := cmds.Submit(context.Background(), submitInput(tour.ID()))
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})

	t.Run("booking survives a failing cart append", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tourRepo := mocks.NewMockTourRepository(ctrl)
		bookingRepo := mocks.NewMockBookingRepository(ctrl)
		cmds := commands.NewBookingCommands(tourRepo, bookingRepo, failingStore{}, clock.NewMockClock(testNow))

		tourRepo.EXPECT().FindByID(gomock.Any(), tour.ID()).
			Return(tour, []*schedule.Departure{departure}, nil)
		bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		view, err := cmds.Submit(context.Background(), submitInput(tour.ID()))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(view.Reference, "BK-"))
	})
}

func TestBookingCommands_UpdateStatus(t *testing.T) {
	reference := "BK-2F4A91C3"

	t.Run("allowed transition persists", func(t *testing.T) {
		_, bookingRepo, _, cmds := newBookingSetup(t)

		bookingRepo.EXPECT().FindByReference(gomock.Any(), reference).
			Return(storedBooking(reference, booking.StatusPending, booking.PaymentUnpaid), nil)
		bookingRepo.EXPECT().UpdateStatus(gomock.Any(), reference, booking.StatusConfirmed).
			Return(nil)

		view, err := cmds.UpdateStatus(context.Background(), reference, booking.StatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, "confirmed", view.Status)
	})

	t.Run("disallowed transition never reaches the repo", func(t *testing.T) {
		_, bookingRepo, _, cmds := newBookingSetup(t)

		bookingRepo.EXPECT().FindByReference(gomock.Any(), reference).
			Return(storedBooking(reference, booking.StatusCompleted, booking.PaymentPaid), nil)

		_, err := cmds.UpdateStatus(context.Background(), reference, booking.StatusPending)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("unknown reference maps to the not-found sentinel", func(t *testing.T) {
		_, bookingRepo, _, cmds := newBookingSetup(t)

		bookingRepo.EXPECT().FindByReference(gomock.Any(), reference).
			Return(nil, infra.WrapRepoErr("booking not found", errs.New("no rows"), infra.KindNotFound))

		_, err := cmds.UpdateStatus(context.Background(), reference, booking.StatusConfirmed)
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})
}

func TestBookingCommands_UpdatePaymentStatus(t *testing.T) {
	reference := "BK-2F4A91C3"

	t.Run("forward move persists", func(t *testing.T) {
		_, bookingRepo, _, cmds := newBookingSetup(t)

		bookingRepo.EXPECT().FindByReference(gomock.Any(), reference).
			Return(storedBooking(reference, booking.StatusPending, booking.PaymentUnpaid), nil)
		bookingRepo.EXPECT().UpdatePaymentStatus(gomock.Any(), reference, booking.PaymentPaid).
			Return(nil)

		view, err := cmds.UpdatePaymentStatus(context.Background(), reference, booking.PaymentPaid)
		require.NoError(t, err)
		assert.Equal(t, "paid", view.PaymentStatus)
	})

	t.Run("backward move is rejected", func(t *testing.T) {
		_, bookingRepo, _, cmds := newBookingSetup(t)

		bookingRepo.EXPECT().FindByReference(gomock.Any(), reference).
			Return(storedBooking(reference, booking.StatusPending, booking.PaymentPaid), nil)

		_, err := cmds.UpdatePaymentStatus(context.Background(), reference, booking.PaymentPartial)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func storedBooking(reference string, status booking.Status, paymentStatus booking.PaymentStatus) *booking.Booking {
	return booking.ReconstructBooking(
		uuid.New(), reference, uuid.New(), "CH-100", "Coastal Highlights",
		time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		booking.ReconstructParticipants(2, 1),
		booking.ReconstructContact("Jamie Traveler", "jamie@example.com", "+1-555-0100"),
		booking.Pricing{BasePrice: 80, AdultPrice: 160, ChildPrice: 56, TotalPrice: 216, Currency: "USD"},
		status, paymentStatus,
		testNow, testNow,
	)
}

type failingStore struct{}

func (failingStore) Load(context.Context, string) ([]cart.Booking, error) {
	return nil, errors.New("redis down")
}

func (failingStore) Save(context.Context, string, []cart.Booking) error {
	return errors.New("redis down")
}

func (failingStore) Clear(context.Context, string) error {
	return errors.New("redis down")
}
