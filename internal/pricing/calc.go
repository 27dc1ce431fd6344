package pricing

import (
	"github.com/KriraAI/Print24-frontend/internal/catalog"
)

// ComputeTotal derives the total price for a product under the given
// selection. It is pure and deterministic: no I/O, no side effects, and the
// same inputs always produce the same total. No rounding happens here;
// two-decimal rounding belongs to the display layer.
//
// The order of operations is fixed: per-unit option surcharges are summed,
// base and option totals scale with quantity, then the finish multiplier,
// shape multiplier, and quantity discount apply in that order.
func ComputeTotal(p *catalog.Product, sel *Selection) float64 {
	finishMult := sel.Finish.Multiplier()
	shapeMult := sel.Shape.Multiplier()

	// Option ids not present on the product contribute nothing.
	var optionsPrice float64
	for _, opt := range p.Options {
		if sel.HasOption(opt.ID) {
			optionsPrice += opt.PriceAdd
		}
	}

	quantity := sel.Quantity.Value()
	discount := quantityDiscount(quantity)

	baseTotal := p.BasePrice * float64(quantity)
	optionsTotal := optionsPrice * float64(quantity)

	return (baseTotal + optionsTotal) * finishMult * shapeMult * discount
}

// quantityDiscount returns the discount multiplier for a quantity. Higher
// thresholds overwrite lower ones, so only the highest applicable tier
// applies.
func quantityDiscount(quantity int) float64 {
	discount := 1.0
	if quantity >= 500 {
		discount = 0.9
	}
	if quantity >= 1000 {
		discount = 0.8
	}
	if quantity >= 5000 {
		discount = 0.7
	}
	return discount
}
