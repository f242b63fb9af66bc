package request

import (
	"time"

	"tourbook/internal/domain/schedule"
	"tourbook/internal/domain/tour"
	"tourbook/internal/usecase/commands"
)

type PricingOptionRequest struct {
	Name           string     `json:"name" binding:"required"`
	Category       string     `json:"category"`
	Price          float64    `json:"price" binding:"required"`
	DiscountActive bool       `json:"discountActive"`
	DiscountMode   *string    `json:"discountMode,omitempty"`
	DiscountFrom   *time.Time `json:"discountFrom,omitempty"`
	DiscountTo     *time.Time `json:"discountTo,omitempty"`
	Percentage     *float64   `json:"percentage,omitempty"`
	FixedPrice     *float64   `json:"fixedPrice,omitempty"`
}

type DepartureRequest struct {
	Recurring       bool      `json:"recurring"`
	Pattern         string    `json:"pattern"`
	StartDate       time.Time `json:"startDate" binding:"required"`
	EndDate         time.Time `json:"endDate"`
	SelectedOptions []int     `json:"selectedOptions"`
}

type CreateTourRequest struct {
	Code           string                 `json:"code" binding:"required"`
	Title          string                 `json:"title" binding:"required"`
	Price          float64                `json:"price" binding:"required"`
	Currency       string                 `json:"currency" binding:"required"`
	PricePerPerson bool                   `json:"pricePerPerson"`
	SaleEnabled    bool                   `json:"saleEnabled"`
	SalePrice      *float64               `json:"salePrice,omitempty"`
	Options        []PricingOptionRequest `json:"options"`
	Departures     []DepartureRequest     `json:"departures"`
}

type UpdateTourRequest struct {
	Title       *string  `json:"title,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	SaleEnabled *bool    `json:"saleEnabled,omitempty"`
	SalePrice   *float64 `json:"salePrice,omitempty"`
}

func (r CreateTourRequest) ToInput() commands.CreateTourInput {
	options := make([]commands.PricingOptionInput, len(r.Options))
	for i, o := range r.Options {
		options[i] = o.toInput()
	}
	departures := make([]commands.DepartureInput, len(r.Departures))
	for i, d := range r.Departures {
		departures[i] = d.ToInput()
	}

	return commands.CreateTourInput{
		Code:           r.Code,
		Title:          r.Title,
		Price:          r.Price,
		Currency:       r.Currency,
		PricePerPerson: r.PricePerPerson,
		SaleEnabled:    r.SaleEnabled,
		SalePrice:      r.SalePrice,
		Options:        options,
		Departures:     departures,
	}
}

func (r UpdateTourRequest) ToInput() commands.UpdateTourInput {
	return commands.UpdateTourInput{
		Title:       r.Title,
		Price:       r.Price,
		SaleEnabled: r.SaleEnabled,
		SalePrice:   r.SalePrice,
	}
}

func (r DepartureRequest) ToInput() commands.DepartureInput {
	return commands.DepartureInput{
		Recurring:       r.Recurring,
		Pattern:         schedule.Pattern(r.Pattern),
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		SelectedOptions: r.SelectedOptions,
	}
}

func (r PricingOptionRequest) toInput() commands.PricingOptionInput {
	in := commands.PricingOptionInput{
		Name:           r.Name,
		Category:       r.Category,
		Price:          r.Price,
		DiscountActive: r.DiscountActive,
		DiscountFrom:   r.DiscountFrom,
		DiscountTo:     r.DiscountTo,
		Percentage:     r.Percentage,
		FixedPrice:     r.FixedPrice,
	}
	if r.DiscountMode != nil {
		mode := tour.DiscountMode(*r.DiscountMode)
		in.DiscountMode = &mode
	}
	return in
}
