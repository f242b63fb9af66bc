package cart

import "strings"

// Checkout promo codes are a fixed table of flat percentages applied to
// the cart's aggregate subtotal only. They are never written back into
// individual entries.
var promoCodes = map[string]float64{
	"TOUR10": 10,
	"TOUR20": 20,
}

type Promo struct {
	Code       string
	PercentOff float64
}

func ResolvePromo(code string) (Promo, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	percent, ok := promoCodes[normalized]
	if !ok {
		return Promo{}, false
	}
	return Promo{Code: normalized, PercentOff: percent}, true
}

// Apply returns the discounted aggregate, unrounded.
func (p Promo) Apply(subtotal float64) float64 {
	return subtotal - subtotal*p.PercentOff/100
}
