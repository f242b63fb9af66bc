package repository

import (
	"context"
	"time"

	"tourbook/internal/domain/booking"
	"tourbook/internal/infra"
	"tourbook/internal/pkg/errs"
	"tourbook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

const bookingColumns = `
	id, reference, tour_id, tour_code, tour_title, departure_date,
	adults, children, contact_name, contact_email, contact_phone,
	base_price, adult_price, child_price, total_price, currency,
	status, payment_status, created_at, updated_at
`

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	const sql = `
		INSERT INTO bookings (
			id, reference, tour_id, tour_code, tour_title, departure_date,
			adults, children, contact_name, contact_email, contact_phone,
			base_price, adult_price, child_price, total_price, currency,
			status, payment_status, created_at, updated_at
		)
		VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16,
			$17, $18, now(), now()
		)
	`

	_, err := r.pool.Exec(ctx, sql,
		b.ID(), b.Reference(), b.TourID(), b.TourCode(), b.TourTitle(), b.DepartureDate(),
		b.Participants().Adults(), b.Participants().Children(),
		b.Contact().Name(), b.Contact().Email(), b.Contact().Phone(),
		b.Pricing().BasePrice, b.Pricing().AdultPrice, b.Pricing().ChildPrice,
		b.Pricing().TotalPrice, b.Pricing().Currency,
		string(b.Status()), string(b.PaymentStatus()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByReference(ctx context.Context, reference string) (*booking.Booking, error) {
	sql := `SELECT` + bookingColumns + `FROM bookings WHERE reference = $1`

	b, err := scanBooking(r.pool.QueryRow(ctx, sql, reference))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return b, nil
}

func (r *BookingRepository) ListByTour(ctx context.Context, tourID uuid.UUID) ([]*booking.Booking, error) {
	sql := `SELECT` + bookingColumns + `FROM bookings WHERE tour_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, sql, tourID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var bookings []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return bookings, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, reference string, status booking.Status) error {
	const sql = `UPDATE bookings SET status = $2, updated_at = now() WHERE reference = $1`
	return r.execStatusUpdate(ctx, sql, reference, string(status))
}

func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, reference string, status booking.PaymentStatus) error {
	const sql = `UPDATE bookings SET payment_status = $2, updated_at = now() WHERE reference = $1`
	return r.execStatusUpdate(ctx, sql, reference, string(status))
}

func (r *BookingRepository) execStatusUpdate(ctx context.Context, sql, reference, status string) error {
	tag, err := r.pool.Exec(ctx, sql, reference, status)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", errs.New("no rows updated"), infra.KindNotFound)
	}
	return nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, tourID           uuid.UUID
		reference            string
		tourCode, tourTitle  string
		departureDate        time.Time
		adults, children     int
		name, email, phone   string
		basePrice            float64
		adultPrice           float64
		childPrice           float64
		totalPrice           float64
		currency             string
		status               string
		paymentStatus        string
		createdAt, updatedAt time.Time
	)

	err := row.Scan(
		&id, &reference, &tourID, &tourCode, &tourTitle, &departureDate,
		&adults, &children, &name, &email, &phone,
		&basePrice, &adultPrice, &childPrice, &totalPrice, &currency,
		&status, &paymentStatus, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		id, reference, tourID, tourCode, tourTitle, departureDate,
		booking.ReconstructParticipants(adults, children),
		booking.ReconstructContact(name, email, phone),
		booking.Pricing{
			BasePrice:  basePrice,
			AdultPrice: adultPrice,
			ChildPrice: childPrice,
			TotalPrice: totalPrice,
			Currency:   currency,
		},
		booking.Status(status), booking.PaymentStatus(paymentStatus),
		createdAt, updatedAt,
	), nil
}
