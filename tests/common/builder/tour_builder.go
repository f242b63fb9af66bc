//go:build unit

package builder

import (
	"time"

	"tourbook/internal/domain/cart"
	"tourbook/internal/domain/tour"

	"github.com/google/uuid"
)

type TourBuilder struct {
	Code           string
	Title          string
	Price          float64
	Currency       string
	PricePerPerson bool
	SaleEnabled    bool
	SalePrice      *float64
	Options        []tour.PricingOption
}

func NewTourBuilder() *TourBuilder {
	return &TourBuilder{
		Code:     "CH-100",
		Title:    "Coastal Highlights",
		Price:    100,
		Currency: "USD",
	}
}

func (b *TourBuilder) WithPrice(price float64) *TourBuilder {
	b.Price = price
	return b
}

func (b *TourBuilder) WithSale(salePrice float64) *TourBuilder {
	b.SaleEnabled = true
	b.SalePrice = &salePrice
	return b
}

func (b *TourBuilder) WithOption(opt tour.PricingOption) *TourBuilder {
	b.Options = append(b.Options, opt)
	return b
}

func (b *TourBuilder) Build() (*tour.Tour, error) {
	return tour.NewTour(
		b.Code, b.Title, b.Price, b.Currency,
		b.PricePerPerson, b.SaleEnabled, b.SalePrice, b.Options,
	)
}

// PercentageOption builds a pricing option with an active-or-not percentage
// discount window, for date-sensitive pricing tests.
func PercentageOption(price, percentage float64, from, to time.Time) tour.PricingOption {
	discount, err := tour.NewPercentageDiscount(tour.DateRange{From: from, To: to}, percentage)
	if err != nil {
		panic(err)
	}
	return tour.PricingOption{
		ID:       uuid.New(),
		Name:     "Standard",
		Category: "adult",
		Price:    price,
		Discount: &discount,
	}
}

func FixedOption(price, fixedPrice float64, from, to time.Time) tour.PricingOption {
	discount, err := tour.NewFixedDiscount(tour.DateRange{From: from, To: to}, fixedPrice)
	if err != nil {
		panic(err)
	}
	return tour.PricingOption{
		ID:       uuid.New(),
		Name:     "Premium",
		Category: "adult",
		Price:    price,
		Discount: &discount,
	}
}

func PlainOption(price float64) tour.PricingOption {
	return tour.PricingOption{
		ID:       uuid.New(),
		Name:     "Standard",
		Category: "adult",
		Price:    price,
	}
}

type CartBookingBuilder struct {
	Reference  string
	TourTitle  string
	Adults     int
	Children   int
	AdultPrice float64
	ChildPrice float64
	TotalPrice float64
}

func NewCartBookingBuilder() *CartBookingBuilder {
	// 2 adults and 1 child at an 80.00 effective price, children billed
	// at the 0.70 booking-time rate.
	return &CartBookingBuilder{
		Reference:  "BK-TEST0001",
		TourTitle:  "Coastal Highlights",
		Adults:     2,
		Children:   1,
		AdultPrice: 160,
		ChildPrice: 56,
		TotalPrice: 216,
	}
}

func (b *CartBookingBuilder) WithReference(ref string) *CartBookingBuilder {
	b.Reference = ref
	return b
}

func (b *CartBookingBuilder) WithTotal(adults, children int, total float64) *CartBookingBuilder {
	b.Adults = adults
	b.Children = children
	b.TotalPrice = total
	return b
}

func (b *CartBookingBuilder) Build() cart.Booking {
	return cart.Booking{
		BookingReference: b.Reference,
		TourID:           uuid.NewString(),
		TourTitle:        b.TourTitle,
		TourCode:         "CH-100",
		DepartureDate:    "2024-06-01",
		Adults:           b.Adults,
		Children:         b.Children,
		ContactName:      "Jamie Traveler",
		ContactEmail:     "jamie@example.com",
		ContactPhone:     "+1-555-0100",
		BasePrice:        100,
		AdultPrice:       b.AdultPrice,
		ChildPrice:       b.ChildPrice,
		TotalPrice:       b.TotalPrice,
		Currency:         "USD",
	}
}
