package registryv1

import "context"

// Registry tracks at most one resting order per owner.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=registryv1_mock
type Registry interface {
	// FindByOwner returns the owner's order, or nil when there is none.
	FindByOwner(ctx context.Context, ownerID string) (*GeneratedOrderData, error)
	// Add registers a new order. It fails when the owner already has one.
	Add(ctx context.Context, order GeneratedOrderData) error
	// UpdateByOwner applies update to the owner's order. Owner and order id never change.
	UpdateByOwner(ctx context.Context, ownerID string, update Update) error
	// RemoveByOwner drops the owner's order.
	RemoveByOwner(ctx context.Context, ownerID string) error
}
