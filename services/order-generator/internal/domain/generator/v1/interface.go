package generatorv1

// EventSampler draws the next action category.
type EventSampler interface {
	SampleEvent() Event
}

// CounterpartySampler draws the party placing the order.
type CounterpartySampler interface {
	SampleCounterparty(venue Venue) string
}

// ActionSampler draws the mutation for an existing resting order.
type ActionSampler interface {
	SampleAction() RestingOrderAction
}

// PriceSampler draws an order price.
type PriceSampler interface {
	SamplePrice(params PriceParams, market MarketState, seed PriceSeed, event Event) float64
}

// QuantitySampler draws an order quantity.
type QuantitySampler interface {
	SampleQuantity(params QuantityParams) float64
}
