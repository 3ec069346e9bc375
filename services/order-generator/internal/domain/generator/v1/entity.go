package generatorv1

// MarketState is the best-of-book snapshot for one instrument. Absent values are nil.
type MarketState struct {
	BestBidPrice   *float64
	BestOfferPrice *float64
	BidDepth       *uint64
	OfferDepth     *uint64
}

// BestPrice returns the best price on side. Absent and zero prices both report false.
func (m MarketState) BestPrice(side Side) (float64, bool) {
	price := m.BestBidPrice
	if side == SideSell {
		price = m.BestOfferPrice
	}
	if price == nil || *price == 0 {
		return 0, false
	}
	return *price, true
}

// Depth returns the number of price levels on side, zero when unknown.
func (m MarketState) Depth(side Side) uint64 {
	depth := m.BidDepth
	if side == SideSell {
		depth = m.OfferDepth
	}
	if depth == nil {
		return 0
	}
	return *depth
}

// PriceSeed holds the configured fallback prices of an instrument.
type PriceSeed struct {
	BidPrice   *float64
	OfferPrice *float64
	MidPrice   *float64
}

// PriceFor returns the seed price for side, defaulting to the mid price. It returns 0 when
// neither is configured.
func (p PriceSeed) PriceFor(side Side) float64 {
	price := p.BidPrice
	if side == SideSell {
		price = p.OfferPrice
	}
	if price == nil {
		price = p.MidPrice
	}
	if price == nil {
		return 0
	}
	return *price
}

// Listing is the randomization config of one instrument on a venue.
type Listing struct {
	VenueID string
	Symbol  string

	QtyMinimum  *float64
	QtyMaximum  *float64
	QtyMultiple *float64

	PriceTickSize  *float64
	PriceTickRange *uint32
	OrderSpread    *float64

	RandomQtyMinimum *float64
	RandomQtyMaximum *float64
	RandomAmtMinimum *float64
	RandomAmtMaximum *float64

	RandomAggressiveQtyMinimum *float64
	RandomAggressiveQtyMaximum *float64
	RandomAggressiveAmtMinimum *float64
	RandomAggressiveAmtMaximum *float64

	RandomDepthLevels   *uint32
	RandomOrdersEnabled bool
}

// HasAggressiveBounds reports whether any aggressive-specific quantity or amount bound is set.
func (l Listing) HasAggressiveBounds() bool {
	return l.RandomAggressiveQtyMinimum != nil ||
		l.RandomAggressiveQtyMaximum != nil ||
		l.RandomAggressiveAmtMinimum != nil ||
		l.RandomAggressiveAmtMaximum != nil
}

// Venue is the venue level config.
type Venue struct {
	ID               string
	RandomPartyCount *uint32
}

// PriceParams are the resolved price bounds for one sampling call.
type PriceParams struct {
	TickSize  float64
	TickRange uint32
	Spread    float64
}

// QuantityParams are the resolved quantity bounds for one sampling call.
type QuantityParams struct {
	Multiplier float64
	Minimum    float64
	Maximum    float64
}
