package response

import (
	"tourbook/internal/domain/cart"
	"tourbook/internal/usecase/queries"
)

// CartResponse exposes the stored entries as-is; entry fields keep their
// serialized names so the storefront reads back exactly what it wrote.
type CartResponse struct {
	Items     []cart.Booking `json:"items"`
	Subtotal  float64        `json:"subtotal"`
	PromoCode *string        `json:"promoCode,omitempty"`
	Discount  float64        `json:"discount"`
	Total     float64        `json:"total"`
}

func FromCartView(v *queries.CartView) *CartResponse {
	return &CartResponse{
		Items:     v.Items,
		Subtotal:  v.Subtotal,
		PromoCode: v.PromoCode,
		Discount:  v.Discount,
		Total:     v.Total,
	}
}
