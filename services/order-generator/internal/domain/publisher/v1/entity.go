package publisherv1

import (
	"encoding/json"
	"time"

	generatorv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/generator/v1"
	"github.com/shopspring/decimal"
)

// priceScale is the number of decimal places kept on price and quantity.
const priceScale = 8

// Payload is the wire form of a generated message.
type Payload struct {
	Kind        string    `json:"kind"`
	Symbol      string    `json:"symbol"`
	OrdType     string    `json:"ordType"`
	TimeInForce string    `json:"timeInForce"`
	Side        string    `json:"side"`
	Price       string    `json:"price,omitempty"`
	Quantity    string    `json:"quantity,omitempty"`
	ClOrdID     string    `json:"clOrdID"`
	OrigClOrdID string    `json:"origClOrdID,omitempty"`
	PartyID     string    `json:"partyID"`
	Timestamp   time.Time `json:"timestamp"`
}

// CreateFromMessage builds the payload of msg. Float prices and quantities are rendered as
// exact decimals.
func CreateFromMessage(msg *generatorv1.Message, now time.Time) *Payload {
	payload := &Payload{
		Kind:        string(msg.Kind),
		Symbol:      msg.Symbol,
		OrdType:     string(msg.OrdType),
		TimeInForce: string(msg.TimeInForce),
		Side:        string(msg.Side),
		ClOrdID:     msg.ClOrdID,
		OrigClOrdID: msg.OrigClOrdID,
		PartyID:     msg.PartyID,
		Timestamp:   now.UTC(),
	}

	if msg.Price != nil {
		payload.Price = decimal.NewFromFloat(*msg.Price).Round(priceScale).String()
	}
	if msg.Quantity != nil {
		payload.Quantity = decimal.NewFromFloat(*msg.Quantity).Round(priceScale).String()
	}

	return payload
}

// ToBytes converts the payload to JSON.
func ToBytes(payload *Payload) ([]byte, error) {
	return json.Marshal(payload)
}

// FromBytes decodes a payload.
func FromBytes(data []byte) (*Payload, error) {
	var payload Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
