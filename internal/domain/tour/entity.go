package tour

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle       = errors.New("tour title must not be empty")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrSaleWithoutPrice = errors.New("sale enabled without a sale price")
)

type Tour struct {
	id             uuid.UUID
	code           string
	title          string
	price          float64
	currency       string
	pricePerPerson bool
	saleEnabled    bool
	salePrice      *float64
	options        []PricingOption
	createdAt      time.Time
	updatedAt      time.Time
}

func NewTour(
	code, title string,
	price float64,
	currency string,
	pricePerPerson bool,
	saleEnabled bool,
	salePrice *float64,
	options []PricingOption,
) (*Tour, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}
	if saleEnabled && salePrice == nil {
		return nil, ErrSaleWithoutPrice
	}
	if salePrice != nil && *salePrice < 0 {
		return nil, ErrNegativePrice
	}
	if currency == "" {
		currency = "USD"
	}

	return &Tour{
		id:             uuid.New(),
		code:           code,
		title:          title,
		price:          price,
		currency:       currency,
		pricePerPerson: pricePerPerson,
		saleEnabled:    saleEnabled,
		salePrice:      salePrice,
		options:        options,
	}, nil
}

func ReconstructTour(
	id uuid.UUID,
	code, title string,
	price float64,
	currency string,
	pricePerPerson bool,
	saleEnabled bool,
	salePrice *float64,
	options []PricingOption,
	createdAt, updatedAt time.Time,
) *Tour {
	return &Tour{
		id:             id,
		code:           code,
		title:          title,
		price:          price,
		currency:       currency,
		pricePerPerson: pricePerPerson,
		saleEnabled:    saleEnabled,
		salePrice:      salePrice,
		options:        options,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// OptionByID looks up a pricing option preserving authoring order semantics:
// the caller passes ids in selection order and the first hit is authoritative.
func (t *Tour) OptionByID(id uuid.UUID) (PricingOption, bool) {
	for _, opt := range t.options {
		if opt.ID == id {
			return opt, true
		}
	}
	return PricingOption{}, false
}

func (t *Tour) ID() uuid.UUID            { return t.id }
func (t *Tour) Code() string             { return t.code }
func (t *Tour) Title() string            { return t.title }
func (t *Tour) Price() float64           { return t.price }
func (t *Tour) Currency() string         { return t.currency }
func (t *Tour) PricePerPerson() bool     { return t.pricePerPerson }
func (t *Tour) SaleEnabled() bool        { return t.saleEnabled }
func (t *Tour) SalePrice() *float64      { return t.salePrice }
func (t *Tour) Options() []PricingOption { return t.options }
func (t *Tour) CreatedAt() time.Time     { return t.createdAt }
func (t *Tour) UpdatedAt() time.Time     { return t.updatedAt }
