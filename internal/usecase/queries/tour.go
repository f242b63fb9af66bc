package queries

import (
	"context"

	"tourbook/internal/domain/schedule"
	"tourbook/internal/domain/tour"
	"tourbook/internal/infra"
	"tourbook/internal/pkg/errs"

	"github.com/google/uuid"
)

// TourReadRepo returns a tour aggregate snapshot: the tour itself plus its
// departures in stored order. Availability is always derived from a fresh
// snapshot, never cached between mutations.
type TourReadRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*tour.Tour, []*schedule.Departure, error)
	List(ctx context.Context) ([]*tour.Tour, error)
}

type TourQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*TourView, error)
	List(ctx context.Context) ([]*TourListItem, error)
}

type tourQueriesImpl struct {
	repo TourReadRepo
}

func NewTourQueries(repo TourReadRepo) TourQueries {
	return &tourQueriesImpl{repo: repo}
}

func (q *tourQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*TourView, error) {
	t, _, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrTourNotFound)
		}
		return nil, err
	}
	return TourToView(t), nil
}

func (q *tourQueriesImpl) List(ctx context.Context) ([]*TourListItem, error) {
	tours, err := q.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*TourListItem, len(tours))
	for i, t := range tours {
		items[i] = &TourListItem{
			ID:          t.ID(),
			Code:        t.Code(),
			Title:       t.Title(),
			Price:       t.Price(),
			Currency:    t.Currency(),
			SaleEnabled: t.SaleEnabled(),
			SalePrice:   t.SalePrice(),
		}
	}
	return items, nil
}

func TourToView(t *tour.Tour) *TourView {
	options := make([]PricingOptionView, len(t.Options()))
	for i, opt := range t.Options() {
		options[i] = PricingOptionView{
			ID:       opt.ID,
			Name:     opt.Name,
			Category: opt.Category,
			Price:    opt.Price,
		}
	}

	return &TourView{
		ID:             t.ID(),
		Code:           t.Code(),
		Title:          t.Title(),
		Price:          t.Price(),
		Currency:       t.Currency(),
		PricePerPerson: t.PricePerPerson(),
		SaleEnabled:    t.SaleEnabled(),
		SalePrice:      t.SalePrice(),
		Options:        options,
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
	}
}
