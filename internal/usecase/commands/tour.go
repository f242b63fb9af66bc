package commands

import (
	"context"
	"time"

	"tourbook/internal/domain/schedule"
	"tourbook/internal/domain/tour"
	"tourbook/internal/infra"
	"tourbook/internal/pkg/clock"
	"tourbook/internal/pkg/errs"
	"tourbook/internal/pkg/patch"
	"tourbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type PricingOptionInput struct {
	Name           string
	Category       string
	Price          float64
	DiscountMode   *tour.DiscountMode
	DiscountFrom   *time.Time
	DiscountTo     *time.Time
	Percentage     *float64
	FixedPrice     *float64
	DiscountActive bool
}

type DepartureInput struct {
	Recurring       bool
	Pattern         schedule.Pattern
	StartDate       time.Time
	EndDate         time.Time
	SelectedOptions []int // indexes into the tour's option list
}

type CreateTourInput struct {
	Code           string
	Title          string
	Price          float64
	Currency       string
	PricePerPerson bool
	SaleEnabled    bool
	SalePrice      *float64
	Options        []PricingOptionInput
	Departures     []DepartureInput
}

// UpdateTourInput carries only the fields being changed; nil means keep.
type UpdateTourInput struct {
	Title       *string
	Price       *float64
	SaleEnabled *bool
	SalePrice   *float64
}

type TourCommands interface {
	Create(ctx context.Context, input CreateTourInput) (*queries.TourView, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateTourInput) (*queries.TourView, error)
	AddDeparture(ctx context.Context, tourID uuid.UUID, input DepartureInput) (uuid.UUID, error)
	RemoveDeparture(ctx context.Context, tourID, departureID uuid.UUID) error
}

type tourCommandsImpl struct {
	repo  TourRepository
	clock clock.Clock
}

func NewTourCommands(repo TourRepository, clock clock.Clock) TourCommands {
	return &tourCommandsImpl{repo: repo, clock: clock}
}

func (c *tourCommandsImpl) Create(ctx context.Context, input CreateTourInput) (*queries.TourView, error) {
	options := make([]tour.PricingOption, 0, len(input.Options))
	for _, in := range input.Options {
		opt, err := buildOption(in)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		options = append(options, opt)
	}

	t, err := tour.NewTour(input.Code, input.Title, input.Price, input.Currency,
		input.PricePerPerson, input.SaleEnabled, input.SalePrice, options)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	departures := make([]*schedule.Departure, 0, len(input.Departures))
	for _, in := range input.Departures {
		d, err := buildDeparture(t, in)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		departures = append(departures, d)
	}

	if err := c.repo.Create(ctx, t, departures); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return queries.TourToView(t), nil
}

func (c *tourCommandsImpl) Update(ctx context.Context, id uuid.UUID, input UpdateTourInput) (*queries.TourView, error) {
	existing, _, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrTourNotFound)
		}
		return nil, err
	}

	saleEnabled := patch.Coalesce(input.SaleEnabled, existing.SaleEnabled())
	salePrice := existing.SalePrice()
	if input.SalePrice != nil {
		salePrice = input.SalePrice
	}

	updated := tour.ReconstructTour(
		existing.ID(),
		existing.Code(),
		patch.Coalesce(input.Title, existing.Title()),
		patch.Coalesce(input.Price, existing.Price()),
		existing.Currency(),
		existing.PricePerPerson(),
		saleEnabled,
		salePrice,
		existing.Options(),
		existing.CreatedAt(),
		c.clock.Now(),
	)

	if err := c.repo.Update(ctx, updated); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return queries.TourToView(updated), nil
}

func (c *tourCommandsImpl) AddDeparture(ctx context.Context, tourID uuid.UUID, input DepartureInput) (uuid.UUID, error) {
	t, _, err := c.repo.FindByID(ctx, tourID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, errs.ErrTourNotFound)
		}
		return uuid.Nil, err
	}

	d, err := buildDeparture(t, input)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.repo.AddDeparture(ctx, d); err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return d.ID(), nil
}

func (c *tourCommandsImpl) RemoveDeparture(ctx context.Context, tourID, departureID uuid.UUID) error {
	if err := c.repo.RemoveDeparture(ctx, tourID, departureID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrDepartureNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func buildOption(in PricingOptionInput) (tour.PricingOption, error) {
	opt := tour.PricingOption{
		ID:       uuid.New(),
		Name:     in.Name,
		Category: in.Category,
		Price:    in.Price,
	}

	if !in.DiscountActive || in.DiscountMode == nil {
		return opt, nil
	}

	window := tour.DateRange{}
	if in.DiscountFrom != nil {
		window.From = *in.DiscountFrom
	}
	if in.DiscountTo != nil {
		window.To = *in.DiscountTo
	}

	var (
		discount tour.Discount
		err      error
	)
	switch *in.DiscountMode {
	case tour.DiscountPercentage:
		discount, err = tour.NewPercentageDiscount(window, patch.Coalesce(in.Percentage, 0))
	case tour.DiscountFixed:
		discount, err = tour.NewFixedDiscount(window, patch.Coalesce(in.FixedPrice, 0))
	default:
		return tour.PricingOption{}, tour.ErrInvalidDiscountMode
	}
	if err != nil {
		return tour.PricingOption{}, err
	}

	opt.Discount = &discount
	return opt, nil
}

func buildDeparture(t *tour.Tour, in DepartureInput) (*schedule.Departure, error) {
	selected := make([]uuid.UUID, 0, len(in.SelectedOptions))
	for _, idx := range in.SelectedOptions {
		if idx < 0 || idx >= len(t.Options()) {
			continue
		}
		selected = append(selected, t.Options()[idx].ID)
	}

	if in.Recurring {
		return schedule.NewRecurring(t.ID(), in.Pattern, in.StartDate, in.EndDate, selected)
	}
	return schedule.NewOneOff(t.ID(), in.StartDate, in.EndDate, selected)
}
