package marketdatav1

import (
	"context"

	generatorv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/generator/v1"
)

// Provider supplies the live best-of-book state of an instrument.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=marketdatav1_mock
type Provider interface {
	MarketState(ctx context.Context, symbol string) (*generatorv1.MarketState, error)
}
