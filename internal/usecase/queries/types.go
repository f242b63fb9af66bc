package queries

import (
	"time"

	"tourbook/internal/domain/cart"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type TourView struct {
	ID             uuid.UUID           `json:"id"`
	Code           string              `json:"code"`
	Title          string              `json:"title"`
	Price          float64             `json:"price"`
	Currency       string              `json:"currency"`
	PricePerPerson bool                `json:"price_per_person"`
	SaleEnabled    bool                `json:"sale_enabled"`
	SalePrice      *float64            `json:"sale_price,omitempty"`
	Options        []PricingOptionView `json:"options"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

type PricingOptionView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Price    float64   `json:"price"`
}

type TourListItem struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	SaleEnabled bool      `json:"sale_enabled"`
	SalePrice   *float64  `json:"sale_price,omitempty"`
}

// AvailabilityEntryView is one bookable date for the storefront calendar.
// Dates travel as YYYY-MM-DD strings, matching the date-picker wire format.
type AvailabilityEntryView struct {
	Date            string   `json:"date"`
	Price           float64  `json:"price"`
	DiscountedPrice *float64 `json:"discounted_price,omitempty"`
}

type BookingView struct {
	Reference     string    `json:"reference"`
	TourID        uuid.UUID `json:"tour_id"`
	TourCode      string    `json:"tour_code"`
	TourTitle     string    `json:"tour_title"`
	DepartureDate string    `json:"departure_date"`
	Adults        int       `json:"adults"`
	Children      int       `json:"children"`
	ContactName   string    `json:"contact_name"`
	ContactEmail  string    `json:"contact_email"`
	ContactPhone  string    `json:"contact_phone"`
	BasePrice     float64   `json:"base_price"`
	AdultPrice    float64   `json:"adult_price"`
	ChildPrice    float64   `json:"child_price"`
	TotalPrice    float64   `json:"total_price"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
}

// CartView is the ledger plus checkout totals. Promo discounts live only
// here, never in the stored entries.
type CartView struct {
	Items     []cart.Booking `json:"items"`
	Subtotal  float64        `json:"subtotal"`
	PromoCode *string        `json:"promo_code,omitempty"`
	Discount  float64        `json:"discount"`
	Total     float64        `json:"total"`
}
