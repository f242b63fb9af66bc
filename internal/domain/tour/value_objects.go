package tour

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPercentage   = errors.New("percentage discount must be between 0 and 100")
	ErrNegativeFixedPrice  = errors.New("fixed discount price cannot be negative")
	ErrInvalidDiscountMode = errors.New("invalid discount mode")
)

type DiscountMode string

const (
	DiscountPercentage DiscountMode = "percentage"
	DiscountFixed      DiscountMode = "fixed"
)

func (m DiscountMode) IsValid() bool {
	switch m {
	case DiscountPercentage, DiscountFixed:
		return true
	default:
		return false
	}
}

type DateRange struct {
	From time.Time
	To   time.Time
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// Discount is a time-bounded price reduction attached to a pricing option.
// Percentage mode takes a cut of the option price; fixed mode replaces it.
// A fixed price above the option price is accepted as authored.
type Discount struct {
	Enabled    bool
	Window     DateRange
	Mode       DiscountMode
	Percentage float64
	FixedPrice float64
}

func NewPercentageDiscount(window DateRange, percentage float64) (Discount, error) {
	if percentage < 0 || percentage > 100 {
		return Discount{}, ErrInvalidPercentage
	}
	return Discount{
		Enabled:    true,
		Window:     window,
		Mode:       DiscountPercentage,
		Percentage: percentage,
	}, nil
}

func NewFixedDiscount(window DateRange, fixedPrice float64) (Discount, error) {
	if fixedPrice < 0 {
		return Discount{}, ErrNegativeFixedPrice
	}
	return Discount{
		Enabled:    true,
		Window:     window,
		Mode:       DiscountFixed,
		FixedPrice: fixedPrice,
	}, nil
}

func (d Discount) ActiveAt(now time.Time) bool {
	return d.Enabled && d.Window.Contains(now)
}

// Apply computes the discounted price in floating arithmetic.
// Rounding happens only at display time, never here.
func (d Discount) Apply(base float64) float64 {
	switch d.Mode {
	case DiscountPercentage:
		return base - base*d.Percentage/100
	case DiscountFixed:
		return d.FixedPrice
	default:
		return base
	}
}

type PricingOption struct {
	ID       uuid.UUID
	Name     string
	Category string
	Price    float64
	Discount *Discount
}
