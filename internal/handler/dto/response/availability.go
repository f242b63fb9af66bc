package response

import "tourbook/internal/usecase/queries"

type AvailabilityEntryResponse struct {
	Date            string   `json:"date"`
	Price           float64  `json:"price"`
	DiscountedPrice *float64 `json:"discountedPrice,omitempty"`
}

type AvailabilityResponse struct {
	Dates []AvailabilityEntryResponse `json:"dates"`
}

func FromAvailabilityViews(views []queries.AvailabilityEntryView) *AvailabilityResponse {
	dates := make([]AvailabilityEntryResponse, len(views))
	for i, v := range views {
		dates[i] = AvailabilityEntryResponse{
			Date:            v.Date,
			Price:           v.Price,
			DiscountedPrice: v.DiscountedPrice,
		}
	}
	return &AvailabilityResponse{Dates: dates}
}
