package registry

import (
	"context"
	"sync"

	"github.com/muhammadchandra19/orderflow/pkg/errors"
	registryv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/registry/v1"
)

// Memory is an in-process Registry for one instrument.
type Memory struct {
	mu     sync.RWMutex
	orders map[string]registryv1.GeneratedOrderData
}

var _ registryv1.Registry = (*Memory)(nil)

// NewMemory creates an empty Memory registry.
func NewMemory() *Memory {
	return &Memory{
		orders: make(map[string]registryv1.GeneratedOrderData),
	}
}

// FindByOwner implements registryv1.Registry.
func (m *Memory) FindByOwner(_ context.Context, ownerID string) (*registryv1.GeneratedOrderData, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	order, ok := m.orders[ownerID]
	if !ok {
		return nil, nil
	}
	return &order, nil
}

// Add implements registryv1.Registry.
func (m *Memory) Add(_ context.Context, order registryv1.GeneratedOrderData) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.orders[order.OwnerID]; ok {
		return ownerTaken(order.OwnerID)
	}
	m.orders[order.OwnerID] = order
	return nil
}

// UpdateByOwner implements registryv1.Registry.
func (m *Memory) UpdateByOwner(_ context.Context, ownerID string, update registryv1.Update) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, ok := m.orders[ownerID]
	if !ok {
		return orderNotFound(ownerID)
	}
	update.Apply(&order)
	m.orders[ownerID] = order
	return nil
}

// RemoveByOwner implements registryv1.Registry.
func (m *Memory) RemoveByOwner(_ context.Context, ownerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.orders[ownerID]; !ok {
		return orderNotFound(ownerID)
	}
	delete(m.orders, ownerID)
	return nil
}

// Len returns the number of tracked orders.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.orders)
}

func ownerTaken(ownerID string) error {
	return errors.NewErrorDetails("owner "+ownerID+" already has a resting order", string(errors.RegistryOwnerTakenError), "owner_id")
}

func orderNotFound(ownerID string) error {
	return errors.NewErrorDetails("owner "+ownerID+" has no resting order", string(errors.RegistryOrderNotFoundError), "owner_id")
}
