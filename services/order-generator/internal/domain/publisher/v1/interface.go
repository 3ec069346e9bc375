package publisherv1

import (
	"context"

	generatorv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/generator/v1"
)

// Publisher hands generated messages to the order entry side.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=publisherv1_mock
type Publisher interface {
	Publish(ctx context.Context, msg *generatorv1.Message) error
	Close() error
}
