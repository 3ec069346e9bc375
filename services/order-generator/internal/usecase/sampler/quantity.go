package sampler

import (
	"math"

	"github.com/muhammadchandra19/orderflow/pkg/random"
	generatorv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/generator/v1"
)

// DefaultQtyMultiple is the lot size of listings without one.
const DefaultQtyMultiple = 1.0

// lotEpsilon absorbs float error when counting whole lots in a range.
const lotEpsilon = 1e-9

// ResolveQuantityParams resolves the quantity bounds of a listing for an order at price.
//
// Each bound starts at the instrument bound, is replaced by the random quantity bound when it
// does not widen the range, then by the amount bound divided by price under the same rule.
// Aggressive events use the aggressive bounds when any of them is configured.
func ResolveQuantityParams(listing generatorv1.Listing, aggressive bool, price float64) generatorv1.QuantityParams {
	qtyMin, qtyMax := listing.RandomQtyMinimum, listing.RandomQtyMaximum
	amtMin, amtMax := listing.RandomAmtMinimum, listing.RandomAmtMaximum
	if aggressive && listing.HasAggressiveBounds() {
		qtyMin, qtyMax = listing.RandomAggressiveQtyMinimum, listing.RandomAggressiveQtyMaximum
		amtMin, amtMax = listing.RandomAggressiveAmtMinimum, listing.RandomAggressiveAmtMaximum
	}

	params := generatorv1.QuantityParams{Multiplier: DefaultQtyMultiple}
	if listing.QtyMultiple != nil {
		params.Multiplier = *listing.QtyMultiple
	}

	minimum, hasMin := optional(listing.QtyMinimum)
	if qtyMin != nil && (!hasMin || *qtyMin >= minimum) {
		minimum, hasMin = *qtyMin, true
	}
	if amtMin != nil && price != 0 {
		if q := *amtMin / price; !hasMin || q >= minimum {
			minimum, hasMin = q, true
		}
	}

	maximum, hasMax := optional(listing.QtyMaximum)
	if qtyMax != nil && (!hasMax || *qtyMax <= maximum) {
		maximum, hasMax = *qtyMax, true
	}
	if amtMax != nil && price != 0 {
		if q := *amtMax / price; !hasMax || q <= maximum {
			maximum, hasMax = q, true
		}
	}

	params.Minimum = minimum
	params.Maximum = maximum
	if !hasMax {
		params.Maximum = minimum
	}
	return params
}

func optional(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}

// QuantitySampler draws quantities in whole lots between the resolved bounds.
type QuantitySampler struct {
	src random.IntSource
}

var _ generatorv1.QuantitySampler = (*QuantitySampler)(nil)

// NewQuantitySampler creates a QuantitySampler.
func NewQuantitySampler(src random.IntSource) *QuantitySampler {
	return &QuantitySampler{src: src}
}

// SampleQuantity implements generatorv1.QuantitySampler.
//
// A zero multiplier cannot normalize the range, so it samples whole units instead with the
// minimum raised to one unit. All-zero params therefore yield exactly 1.
func (s *QuantitySampler) SampleQuantity(params generatorv1.QuantityParams) float64 {
	multiplier := params.Multiplier
	minimum := params.Minimum
	if multiplier <= 0 {
		multiplier = 1
		minimum = math.Max(minimum, 1)
	}

	maximum := math.Max(params.Maximum, minimum)

	lots := uint64(math.Floor((maximum-minimum)/multiplier + lotEpsilon))
	draw := s.src.Uint64(0, lots)

	return (float64(draw) + minimum/multiplier) * multiplier
}
