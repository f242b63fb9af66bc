package response

import (
	"time"

	"tourbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	Reference     string    `json:"reference"`
	TourID        uuid.UUID `json:"tourId"`
	TourCode      string    `json:"tourCode"`
	TourTitle     string    `json:"tourTitle"`
	DepartureDate string    `json:"departureDate"`
	Adults        int       `json:"adults"`
	Children      int       `json:"children"`
	ContactName   string    `json:"contactName"`
	ContactEmail  string    `json:"contactEmail"`
	ContactPhone  string    `json:"contactPhone"`
	BasePrice     float64   `json:"basePrice"`
	AdultPrice    float64   `json:"adultPrice"`
	ChildPrice    float64   `json:"childPrice"`
	TotalPrice    float64   `json:"totalPrice"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		Reference:     v.Reference,
		TourID:        v.TourID,
		TourCode:      v.TourCode,
		TourTitle:     v.TourTitle,
		DepartureDate: v.DepartureDate,
		Adults:        v.Adults,
		Children:      v.Children,
		ContactName:   v.ContactName,
		ContactEmail:  v.ContactEmail,
		ContactPhone:  v.ContactPhone,
		BasePrice:     v.BasePrice,
		AdultPrice:    v.AdultPrice,
		ChildPrice:    v.ChildPrice,
		TotalPrice:    v.TotalPrice,
		Currency:      v.Currency,
		Status:        v.Status,
		PaymentStatus: v.PaymentStatus,
		CreatedAt:     v.CreatedAt,
	}
}

func FromBookingViews(views []*queries.BookingView) []BookingResponse {
	out := make([]BookingResponse, len(views))
	for i, v := range views {
		out[i] = *FromBookingView(v)
	}
	return out
}
