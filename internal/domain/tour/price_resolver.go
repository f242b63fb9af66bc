package tour

import (
	"time"

	"github.com/google/uuid"
)

// Quote is the per-adult price pair for one bookable date.
type Quote struct {
	BasePrice      float64
	EffectivePrice float64
}

func (q Quote) Discounted() bool {
	return q.EffectivePrice != q.BasePrice
}

// ResolvePrice is the single pricing authority. Schedule display, booking
// submission and cart previews all price through here; none of them may
// re-derive discount math on their own.
//
// Precedence, first match wins:
//  1. tour-wide sale override, regardless of date or pricing option
//  2. the first selected pricing option, with its discount when the
//     window contains now
//  3. the tour base price
func ResolvePrice(t *Tour, selectedOptions []uuid.UUID, now time.Time) Quote {
	if t.SaleEnabled() && t.SalePrice() != nil {
		return Quote{BasePrice: t.Price(), EffectivePrice: *t.SalePrice()}
	}

	// Only the first selected option is authoritative; a dangling id falls
	// straight through to the tour base price.
	if len(selectedOptions) > 0 {
		if opt, ok := t.OptionByID(selectedOptions[0]); ok {
			quote := Quote{BasePrice: opt.Price, EffectivePrice: opt.Price}
			if opt.Discount != nil && opt.Discount.ActiveAt(now) {
				quote.EffectivePrice = opt.Discount.Apply(opt.Price)
			}
			return quote
		}
	}

	return Quote{BasePrice: t.Price(), EffectivePrice: t.Price()}
}
