package generatorv1

// Event is the category of simulated action drawn for one generation cycle.
type Event int

const (
	// EventNoOperation produces no message.
	EventNoOperation Event = iota
	// EventRestingBuy places or mutates a resting buy order.
	EventRestingBuy
	// EventRestingSell places or mutates a resting sell order.
	EventRestingSell
	// EventAggressiveBuy sends an immediate-or-cancel buy against the offer side.
	EventAggressiveBuy
	// EventAggressiveSell sends an immediate-or-cancel sell against the bid side.
	EventAggressiveSell
)

func (e Event) String() string {
	switch e {
	case EventRestingBuy:
		return "resting_buy"
	case EventRestingSell:
		return "resting_sell"
	case EventAggressiveBuy:
		return "aggressive_buy"
	case EventAggressiveSell:
		return "aggressive_sell"
	default:
		return "no_operation"
	}
}

// IsAggressive reports whether the event targets immediate execution.
func (e Event) IsAggressive() bool {
	return e == EventAggressiveBuy || e == EventAggressiveSell
}

// IsResting reports whether the event targets the resting book.
func (e Event) IsResting() bool {
	return e == EventRestingBuy || e == EventRestingSell
}

// TargetSide returns the side an order for this event is placed on.
// NoOperation has no side.
func (e Event) TargetSide() (Side, bool) {
	switch e {
	case EventRestingBuy, EventAggressiveBuy:
		return SideBuy, true
	case EventRestingSell, EventAggressiveSell:
		return SideSell, true
	default:
		return "", false
	}
}

// RestingEventFor returns the resting event that targets side.
func RestingEventFor(side Side) Event {
	if side == SideSell {
		return EventRestingSell
	}
	return EventRestingBuy
}

// RestingOrderAction is the mutation applied to an existing resting order.
type RestingOrderAction int

const (
	// ActionQuantityModification resamples the order quantity.
	ActionQuantityModification RestingOrderAction = iota
	// ActionPriceModification resamples the order price.
	ActionPriceModification
	// ActionCancellation cancels the order.
	ActionCancellation
)

func (a RestingOrderAction) String() string {
	switch a {
	case ActionQuantityModification:
		return "quantity_modification"
	case ActionPriceModification:
		return "price_modification"
	default:
		return "cancellation"
	}
}

// Side is the side of the book an order rests on.
type Side string

const (
	// SideBuy is the bid side.
	SideBuy Side = "BUY"
	// SideSell is the offer side.
	SideSell Side = "SELL"
)

// Opposite returns the other side of the book.
func (s Side) Opposite() Side {
	if s == SideBuy {
		return SideSell
	}
	return SideBuy
}
