package registryv1

import (
	generatorv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/generator/v1"
)

// GeneratedOrderData is one tracked resting order.
type GeneratedOrderData struct {
	OwnerID  string           `json:"ownerID"`
	OrderID  string           `json:"orderID"`
	Side     generatorv1.Side `json:"side"`
	Price    float64          `json:"price"`
	Quantity float64          `json:"quantity"`
}

// Update carries the fields a modification may change. Nil fields are left as is.
type Update struct {
	Price    *float64
	Quantity *float64
}

// Apply applies u to order.
func (u Update) Apply(order *GeneratedOrderData) {
	if u.Price != nil {
		order.Price = *u.Price
	}
	if u.Quantity != nil {
		order.Quantity = *u.Quantity
	}
}
