package sampler

import (
	"math"

	"github.com/muhammadchandra19/orderflow/pkg/random"
	generatorv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/generator/v1"
)

const (
	// DefaultTickRange is the number of ticks a price may deviate from the base price.
	DefaultTickRange uint32 = 5
	// DefaultTickSize is the tick size of listings without one.
	DefaultTickSize = 0.01

	tickRatio  = 1.05
	tickGrowth = 0.05
)

// ResolvePriceParams resolves the price bounds of a listing. An explicit order spread is
// used as is, otherwise the spread is one tick.
func ResolvePriceParams(listing generatorv1.Listing) generatorv1.PriceParams {
	params := generatorv1.PriceParams{
		TickRange: DefaultTickRange,
		TickSize:  DefaultTickSize,
	}
	if listing.PriceTickRange != nil {
		params.TickRange = *listing.PriceTickRange
	}
	if listing.PriceTickSize != nil {
		params.TickSize = *listing.PriceTickSize
	}

	params.Spread = params.TickSize
	if listing.OrderSpread != nil {
		params.Spread = *listing.OrderSpread
	}
	return params
}

// PriceSampler draws prices around the best of book.
type PriceSampler struct {
	src random.IntSource
}

var _ generatorv1.PriceSampler = (*PriceSampler)(nil)

// NewPriceSampler creates a PriceSampler.
func NewPriceSampler(src random.IntSource) *PriceSampler {
	return &PriceSampler{src: src}
}

// SamplePrice implements generatorv1.PriceSampler.
//
// The base price is the opposite side's best price, then the same side's. With an empty book
// the seed price is returned unchanged. Resting orders priced off the opposite side are first
// moved away from it by the spread. A tick deviation weighted toward the book edge is then
// applied in the direction of the event.
func (s *PriceSampler) SamplePrice(
	params generatorv1.PriceParams,
	market generatorv1.MarketState,
	seed generatorv1.PriceSeed,
	event generatorv1.Event,
) float64 {
	side, ok := event.TargetSide()
	if !ok {
		return 0
	}

	base, fromOpposite := market.BestPrice(side.Opposite())
	if !fromOpposite {
		var found bool
		base, found = market.BestPrice(side)
		if !found {
			return seed.PriceFor(side)
		}
	}

	if event.IsResting() && fromOpposite {
		if side == generatorv1.SideBuy {
			base -= params.Spread
		} else {
			base += params.Spread
		}
	}

	tick := s.sampleTick(params)
	if tick >= base {
		return tick
	}

	switch event {
	case generatorv1.EventAggressiveBuy, generatorv1.EventRestingSell:
		return base + tick
	default:
		return base - tick
	}
}

// sampleTick draws (tickRange - deviation) * tickSize where deviation follows the inverse of a
// geometric series with ratio 1.05, so small ticks are more likely than large ones.
func (s *PriceSampler) sampleTick(params generatorv1.PriceParams) float64 {
	n := params.TickRange
	if n == 0 {
		return 0
	}

	sum := GeometricSum(n)
	draw := s.src.Uint64(0, sum-1)
	deviation := TickDeviation(draw, n)

	return float64(n-deviation) * params.TickSize
}

// GeometricSum returns floor(sum of 1.05^i for i in [1, n]).
func GeometricSum(n uint32) uint64 {
	var sum float64
	for i := uint32(1); i <= n; i++ {
		sum += math.Pow(tickRatio, float64(i))
	}
	return uint64(math.Floor(sum))
}

// TickDeviation maps a draw from [0, GeometricSum(n)-1] to a deviation in [0, n-1].
func TickDeviation(draw uint64, n uint32) uint32 {
	x := float64(draw)*tickGrowth/tickRatio + 1
	deviation := math.Ceil(math.Log(x) / math.Log(tickRatio))

	switch {
	case deviation < 0:
		return 0
	case deviation > float64(n-1):
		return n - 1
	default:
		return uint32(deviation)
	}
}
