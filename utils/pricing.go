package utils

import (
	"fmt"

	"github.com/TuanAnh19122003/motoparts-storefront/models"
)

// Price presentation modes. Exactly one applies to any product.
const (
	PriceModeContact  = "contact"
	PriceModeDiscount = "discount"
	PriceModePlain    = "plain"
)

// PriceView is the display representation of a product's price: either a
// "contact us" placeholder, a struck-through original next to the emphasized
// final price with a percentage badge, or a plain emphasized price.
type PriceView struct {
	Mode         string  `json:"mode"`
	Original     string  `json:"original,omitempty"`
	Final        string  `json:"final,omitempty"`
	Badge        string  `json:"badge,omitempty"`
	FinalAmount  float64 `json:"finalAmount,omitempty"`
	DiscountName string  `json:"discountName,omitempty"`
}

// PresentPrice maps a product to its price presentation. It is total: any
// missing or non-positive numeric field falls back to the contact branch,
// and a product without a base price never renders a discount.
func PresentPrice(p models.Product) PriceView {
	base, priced := p.BasePrice()
	if !priced {
		return PriceView{Mode: PriceModeContact}
	}

	final, _ := p.EffectivePrice()
	if p.Discount != nil {
		// Pricing data is produced upstream; keep the display consistent
		// even if finalPrice arrived larger than the base.
		if final > base {
			final = base
		}
		return PriceView{
			Mode:         PriceModeDiscount,
			Original:     FormatCurrency(base),
			Final:        FormatCurrency(final),
			Badge:        fmt.Sprintf("-%v%%", p.Discount.Percentage),
			FinalAmount:  final,
			DiscountName: p.Discount.Name,
		}
	}

	return PriceView{
		Mode:        PriceModePlain,
		Final:       FormatCurrency(final),
		FinalAmount: final,
	}
}
