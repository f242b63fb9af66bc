package repository

import (
	"context"
	"time"

	"tourbook/internal/domain/schedule"
	"tourbook/internal/domain/tour"
	"tourbook/internal/infra"
	"tourbook/internal/pkg/errs"
	"tourbook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TourRepository struct {
	pool *pgxpool.Pool
}

func NewTourRepository(pool *pgxpool.Pool) *TourRepository {
	return &TourRepository{pool: pool}
}

const selectTourSQL = `
	SELECT id, code, title, price, currency, price_per_person,
	       sale_enabled, sale_price, created_at, updated_at
	FROM tours
	WHERE id = $1
`

// FindByID loads the full aggregate: the tour row, its pricing options in
// authored order and its departures in stored order. The departure order
// matters because the availability index resolves date collisions by
// letting the last processed departure win.
func (r *TourRepository) FindByID(ctx context.Context, id uuid.UUID) (*tour.Tour, []*schedule.Departure, error) {
	t, err := r.findTourRow(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	options, err := r.findOptions(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	departures, err := r.findDepartures(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return tour.ReconstructTour(
		t.id, t.code, t.title, t.price, t.currency, t.pricePerPerson,
		t.saleEnabled, pgconv.Float64PtrFromPgtype(t.salePrice),
		options, t.createdAt, t.updatedAt,
	), departures, nil
}

func (r *TourRepository) List(ctx context.Context) ([]*tour.Tour, error) {
	const sql = `
		SELECT id, code, title, price, currency, price_per_person,
		       sale_enabled, sale_price, created_at, updated_at
		FROM tours
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, sql)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tours", err)
	}
	defer rows.Close()

	var tours []*tour.Tour
	for rows.Next() {
		var t tourRow
		if err := rows.Scan(
			&t.id, &t.code, &t.title, &t.price, &t.currency, &t.pricePerPerson,
			&t.saleEnabled, &t.salePrice, &t.createdAt, &t.updatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan tour row", err)
		}
		tours = append(tours, tour.ReconstructTour(
			t.id, t.code, t.title, t.price, t.currency, t.pricePerPerson,
			t.saleEnabled, pgconv.Float64PtrFromPgtype(t.salePrice),
			nil, t.createdAt, t.updatedAt,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate tour rows", err)
	}
	return tours, nil
}

func (r *TourRepository) Create(ctx context.Context, t *tour.Tour, departures []*schedule.Departure) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	const insertTour = `
		INSERT INTO tours (
			id, code, title, price, currency, price_per_person,
			sale_enabled, sale_price, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
	`
	_, err = tx.Exec(ctx, insertTour,
		t.ID(), t.Code(), t.Title(), t.Price(), t.Currency(), t.PricePerPerson(),
		t.SaleEnabled(), pgconv.Float64PtrToPgtype(t.SalePrice()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert tour", err)
	}

	for i, opt := range t.Options() {
		if err := insertOption(ctx, tx, t.ID(), i, opt); err != nil {
			return err
		}
	}

	for _, d := range departures {
		if err := insertDeparture(ctx, tx, d); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit tour creation", err)
	}
	return nil
}

// Update rewrites the tour row and replaces its pricing options wholesale.
// Options carry no state of their own beyond authoring, so a delete and
// reinsert keeps the persisted order in sync with the aggregate.
func (r *TourRepository) Update(ctx context.Context, t *tour.Tour) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	const updateTour = `
		UPDATE tours
		SET title = $2, price = $3, sale_enabled = $4, sale_price = $5,
		    updated_at = $6
		WHERE id = $1
	`
	tag, err := tx.Exec(ctx, updateTour,
		t.ID(), t.Title(), t.Price(), t.SaleEnabled(),
		pgconv.Float64PtrToPgtype(t.SalePrice()), t.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update tour", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("tour not found", errs.New("no rows updated"), infra.KindNotFound)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM pricing_options WHERE tour_id = $1`, t.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear pricing options", err)
	}
	for i, opt := range t.Options() {
		if err := insertOption(ctx, tx, t.ID(), i, opt); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit tour update", err)
	}
	return nil
}

func (r *TourRepository) AddDeparture(ctx context.Context, d *schedule.Departure) error {
	return insertDeparture(ctx, r.pool, d)
}

func (r *TourRepository) RemoveDeparture(ctx context.Context, tourID, departureID uuid.UUID) error {
	const sql = `DELETE FROM departures WHERE id = $1 AND tour_id = $2`

	tag, err := r.pool.Exec(ctx, sql, departureID, tourID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete departure", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("departure not found", errs.New("no rows deleted"), infra.KindNotFound)
	}
	return nil
}

type tourRow struct {
	id             uuid.UUID
	code           string
	title          string
	price          float64
	currency       string
	pricePerPerson bool
	saleEnabled    bool
	salePrice      pgtype.Float8
	createdAt      time.Time
	updatedAt      time.Time
}

func (r *TourRepository) findTourRow(ctx context.Context, id uuid.UUID) (*tourRow, error) {
	var t tourRow
	err := r.pool.QueryRow(ctx, selectTourSQL, id).Scan(
		&t.id, &t.code, &t.title, &t.price, &t.currency, &t.pricePerPerson,
		&t.saleEnabled, &t.salePrice, &t.createdAt, &t.updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("tour not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find tour", err)
	}
	return &t, nil
}

func (r *TourRepository) findOptions(ctx context.Context, tourID uuid.UUID) ([]tour.PricingOption, error) {
	const sql = `
		SELECT id, name, category, price,
		       discount_enabled, discount_mode, discount_percentage,
		       discount_fixed_price, discount_from, discount_to
		FROM pricing_options
		WHERE tour_id = $1
		ORDER BY position
	`

	rows, err := r.pool.Query(ctx, sql, tourID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query pricing options", err)
	}
	defer rows.Close()

	var options []tour.PricingOption
	for rows.Next() {
		var (
			opt             tour.PricingOption
			discountEnabled bool
			mode            pgtype.Text
			percentage      pgtype.Float8
			fixedPrice      pgtype.Float8
			from, to        pgtype.Timestamptz
		)
		if err := rows.Scan(
			&opt.ID, &opt.Name, &opt.Category, &opt.Price,
			&discountEnabled, &mode, &percentage, &fixedPrice, &from, &to,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pricing option", err)
		}
		if discountEnabled {
			opt.Discount = &tour.Discount{
				Enabled:    true,
				Window:     tour.DateRange{From: from.Time, To: to.Time},
				Mode:       tour.DiscountMode(mode.String),
				Percentage: percentage.Float64,
				FixedPrice: fixedPrice.Float64,
			}
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pricing options", err)
	}
	return options, nil
}

func (r *TourRepository) findDepartures(ctx context.Context, tourID uuid.UUID) ([]*schedule.Departure, error) {
	const sql = `
		SELECT id, tour_id, recurring, pattern, start_date, end_date, selected_options
		FROM departures
		WHERE tour_id = $1
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, sql, tourID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query departures", err)
	}
	defer rows.Close()

	var departures []*schedule.Departure
	for rows.Next() {
		var (
			id, tid            uuid.UUID
			recurring          bool
			pattern            string
			startDate, endDate time.Time
			selectedOptions    []uuid.UUID
		)
		if err := rows.Scan(&id, &tid, &recurring, &pattern, &startDate, &endDate, &selectedOptions); err != nil {
			return nil, infra.WrapRepoErr("failed to scan departure", err)
		}
		departures = append(departures, schedule.ReconstructDeparture(
			id, tid, recurring, schedule.Pattern(pattern), startDate, endDate, selectedOptions,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate departures", err)
	}
	return departures, nil
}

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func insertOption(ctx context.Context, db execer, tourID uuid.UUID, position int, opt tour.PricingOption) error {
	const sql = `
		INSERT INTO pricing_options (
			id, tour_id, position, name, category, price,
			discount_enabled, discount_mode, discount_percentage,
			discount_fixed_price, discount_from, discount_to
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	var (
		discountEnabled bool
		mode            pgtype.Text
		percentage      pgtype.Float8
		fixedPrice      pgtype.Float8
		from, to        pgtype.Timestamptz
	)
	if d := opt.Discount; d != nil {
		discountEnabled = d.Enabled
		mode = pgtype.Text{String: string(d.Mode), Valid: true}
		percentage = pgtype.Float8{Float64: d.Percentage, Valid: true}
		fixedPrice = pgtype.Float8{Float64: d.FixedPrice, Valid: true}
		from = pgtype.Timestamptz{Time: d.Window.From, Valid: true}
		to = pgtype.Timestamptz{Time: d.Window.To, Valid: true}
	}

	_, err := db.Exec(ctx, sql,
		opt.ID, tourID, position, opt.Name, opt.Category, opt.Price,
		discountEnabled, mode, percentage, fixedPrice, from, to,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert pricing option", err)
	}
	return nil
}

func insertDeparture(ctx context.Context, db execer, d *schedule.Departure) error {
	const sql = `
		INSERT INTO departures (
			id, tour_id, recurring, pattern, start_date, end_date,
			selected_options, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
	`

	_, err := db.Exec(ctx, sql,
		d.ID(), d.TourID(), d.Recurring(), string(d.Pattern()),
		d.StartDate(), d.EndDate(), d.SelectedOptions(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert departure", err)
	}
	return nil
}
