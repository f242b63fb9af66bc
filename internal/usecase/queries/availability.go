package queries

import (
	"context"

	"tourbook/internal/domain/schedule"
	"tourbook/internal/infra"
	"tourbook/internal/pkg/clock"
	"tourbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	// GetCalendar returns every bookable date of a tour with resolved
	// pricing, ascending. An empty slice is a normal result, not an error.
	GetCalendar(ctx context.Context, tourID uuid.UUID) ([]AvailabilityEntryView, error)
}

type availabilityQueriesImpl struct {
	repo  TourReadRepo
	clock clock.Clock
}

func NewAvailabilityQueries(repo TourReadRepo, clock clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{repo: repo, clock: clock}
}

func (q *availabilityQueriesImpl) GetCalendar(ctx context.Context, tourID uuid.UUID) ([]AvailabilityEntryView, error) {
	t, departures, err := q.repo.FindByID(ctx, tourID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrTourNotFound)
		}
		return nil, err
	}

	idx := schedule.BuildIndex(t, departures, q.clock.Now())

	entries := idx.Sorted()
	views := make([]AvailabilityEntryView, len(entries))
	for i, e := range entries {
		views[i] = AvailabilityEntryView{
			Date:            schedule.DateKey(e.Date),
			Price:           e.Price,
			DiscountedPrice: e.DiscountedPrice,
		}
	}
	return views, nil
}
