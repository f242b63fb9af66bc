//go:build unit

package booking_test

import (
	"testing"
	"time"

	"tourbook/internal/domain/booking"
	"tourbook/internal/domain/tour"
	"tourbook/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testNow  = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	testDate = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
)

func quoteOf(base, effective float64) tour.Quote {
	return tour.Quote{BasePrice: base, EffectivePrice: effective}
}

func TestNewDraft_Pricing(t *testing.T) {
	tr, err := builder.NewTourBuilder().Build()
	require.NoError(t, err)

	draft, err := booking.NewDraft(tr, testDate, quoteOf(100, 80), 2, 1,
		"Jamie Traveler", "jamie@example.com", "+1-555-0100", testNow)
	require.NoError(t, err)

	// 2*80 + 1*80*0.70
	assert.Equal(t, 160.0, draft.Pricing.AdultPrice)
	assert.Equal(t, 56.0, draft.Pricing.ChildPrice)
	assert.Equal(t, 216.0, draft.Pricing.TotalPrice)
	assert.Equal(t, 100.0, draft.Pricing.BasePrice)
	assert.Equal(t, "USD", draft.Pricing.Currency)
	assert.Equal(t, tr.Title(), draft.TourTitle)
}

func TestNewDraft_ValidationOrder(t *testing.T) {
	tr, err := builder.NewTourBuilder().Build()
	require.NoError(t, err)

	cases := []struct {
		name      string
		date      time.Time
		adults    int
		children  int
		contact   [3]string
		wantField string
	}{
		{
			name:      "empty name reported first even with bad email",
			date:      testDate,
			adults:    2,
			contact:   [3]string{"", "not-an-email", ""},
			wantField: "name",
		},
		{
			name:      "empty email",
			date:      testDate,
			adults:    2,
			contact:   [3]string{"Jamie", "", "+1-555-0100"},
			wantField: "email",
		},
		{
			name:      "malformed email",
			date:      testDate,
			adults:    2,
			contact:   [3]string{"Jamie", "jamie@nowhere", "+1-555-0100"},
			wantField: "email",
		},
		{
			name:      "empty phone",
			date:      testDate,
			adults:    2,
			contact:   [3]string{"Jamie", "jamie@example.com", "   "},
			wantField: "phone",
		},
		{
			name:      "past departure date",
			date:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			adults:    2,
			contact:   [3]string{"Jamie", "jamie@example.com", "+1-555-0100"},
			wantField: "departureDate",
		},
		{
			name:      "zero adults",
			date:      testDate,
			adults:    0,
			contact:   [3]string{"Jamie", "jamie@example.com", "+1-555-0100"},
			wantField: "adults",
		},
		{
			name:      "negative children",
			date:      testDate,
			adults:    1,
			children:  -1,
			contact:   [3]string{"Jamie", "jamie@example.com", "+1-555-0100"},
			wantField: "children",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := booking.NewDraft(tr, tc.date, quoteOf(100, 100), tc.adults, tc.children,
				tc.contact[0], tc.contact[1], tc.contact[2], testNow)
			require.Error(t, err)

			var fieldErr *booking.FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tc.wantField, fieldErr.Field)
		})
	}
}

func TestNewDraft_DepartureTodayIsAccepted(t *testing.T) {
	tr, err := builder.NewTourBuilder().Build()
	require.NoError(t, err)

	sameDay := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	draft, err := booking.NewDraft(tr, sameDay, quoteOf(100, 100), 1, 0,
		"Jamie", "jamie@example.com", "+1-555-0100", testNow)
	require.NoError(t, err)
	assert.Equal(t, sameDay, draft.DepartureDate)
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from    booking.Status
		to      booking.Status
		allowed bool
	}{
		{booking.StatusPending, booking.StatusConfirmed, true},
		{booking.StatusPending, booking.StatusCancelled, true},
		{booking.StatusPending, booking.StatusCompleted, false},
		{booking.StatusConfirmed, booking.StatusCompleted, true},
		{booking.StatusConfirmed, booking.StatusCancelled, false},
		{booking.StatusCancelled, booking.StatusConfirmed, false},
		{booking.StatusCompleted, booking.StatusPending, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestPaymentStatusTransitions(t *testing.T) {
	cases := []struct {
		from    booking.PaymentStatus
		to      booking.PaymentStatus
		allowed bool
	}{
		{booking.PaymentUnpaid, booking.PaymentPartial, true},
		{booking.PaymentUnpaid, booking.PaymentPaid, true},
		{booking.PaymentPartial, booking.PaymentPaid, true},
		{booking.PaymentPaid, booking.PaymentRefunded, true},
		{booking.PaymentPaid, booking.PaymentUnpaid, false},
		{booking.PaymentRefunded, booking.PaymentPaid, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}
