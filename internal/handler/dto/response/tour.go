package response

import (
	"time"

	"tourbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type TourResponse struct {
	ID             uuid.UUID               `json:"id"`
	Code           string                  `json:"code"`
	Title          string                  `json:"title"`
	Price          float64                 `json:"price"`
	Currency       string                  `json:"currency"`
	PricePerPerson bool                    `json:"pricePerPerson"`
	SaleEnabled    bool                    `json:"saleEnabled"`
	SalePrice      *float64                `json:"salePrice,omitempty"`
	Options        []PricingOptionResponse `json:"options"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
}

type PricingOptionResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Price    float64   `json:"price"`
}

type TourListResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	SaleEnabled bool      `json:"saleEnabled"`
	SalePrice   *float64  `json:"salePrice,omitempty"`
}

func FromTourView(v *queries.TourView) *TourResponse {
	options := make([]PricingOptionResponse, len(v.Options))
	for i, o := range v.Options {
		options[i] = PricingOptionResponse{
			ID:       o.ID,
			Name:     o.Name,
			Category: o.Category,
			Price:    o.Price,
		}
	}

	return &TourResponse{
		ID:             v.ID,
		Code:           v.Code,
		Title:          v.Title,
		Price:          v.Price,
		Currency:       v.Currency,
		PricePerPerson: v.PricePerPerson,
		SaleEnabled:    v.SaleEnabled,
		SalePrice:      v.SalePrice,
		Options:        options,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func FromTourListItems(items []*queries.TourListItem) []TourListResponse {
	out := make([]TourListResponse, len(items))
	for i, item := range items {
		out[i] = TourListResponse{
			ID:          item.ID,
			Code:        item.Code,
			Title:       item.Title,
			Price:       item.Price,
			Currency:    item.Currency,
			SaleEnabled: item.SaleEnabled,
			SalePrice:   item.SalePrice,
		}
	}
	return out
}
