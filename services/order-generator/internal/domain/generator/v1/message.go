package generatorv1

// MessageKind is the order entry message type.
type MessageKind string

const (
	// MessageNewOrderSingle places a new order.
	MessageNewOrderSingle MessageKind = "NEW_ORDER_SINGLE"
	// MessageOrderCancelRequest cancels a resting order.
	MessageOrderCancelRequest MessageKind = "ORDER_CANCEL_REQUEST"
	// MessageOrderCancelReplaceRequest modifies a resting order.
	MessageOrderCancelReplaceRequest MessageKind = "ORDER_CANCEL_REPLACE_REQUEST"
)

// OrdType is the order type.
type OrdType string

// OrdTypeLimit is the only order type generated.
const OrdTypeLimit OrdType = "LIMIT"

// TimeInForce is the order time in force.
type TimeInForce string

const (
	// TimeInForceDay rests until the end of the trading day.
	TimeInForceDay TimeInForce = "DAY"
	// TimeInForceIOC executes immediately or is cancelled.
	TimeInForceIOC TimeInForce = "IOC"
)

// Message is a generated order entry message. Price and Quantity are nil on cancel requests.
type Message struct {
	Kind        MessageKind
	OrdType     OrdType
	TimeInForce TimeInForce
	Side        Side
	Price       *float64
	Quantity    *float64
	ClOrdID     string
	OrigClOrdID string
	PartyID     string
	Symbol      string
}

// SetAggressiveProfile sets the limit immediate-or-cancel profile.
func (m *Message) SetAggressiveProfile() {
	m.OrdType = OrdTypeLimit
	m.TimeInForce = TimeInForceIOC
}

// SetRestingProfile sets the limit day profile.
func (m *Message) SetRestingProfile() {
	m.OrdType = OrdTypeLimit
	m.TimeInForce = TimeInForceDay
}
