package registry

import (
	"context"
	"encoding/json"

	"github.com/muhammadchandra19/orderflow/pkg/errors"
	"github.com/muhammadchandra19/orderflow/pkg/logger"
	"github.com/muhammadchandra19/orderflow/pkg/redis"
	registryv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/registry/v1"
)

// Registry keeps the resting orders of one instrument in a Redis hash keyed by owner.
// It relies on a single generation loop writing each hash.
type Registry struct {
	key         string
	redisclient redis.Client
	logger      logger.Interface
}

var _ registryv1.Registry = (*Registry)(nil)

// Key returns the hash key for the registry of symbol on venueID.
func Key(config *redis.Config, venueID, symbol string) string {
	return config.Key("registry:" + venueID + ":" + symbol)
}

// NewRegistry creates a Registry on the hash at key.
func NewRegistry(redisclient redis.Client, key string, logger logger.Interface) *Registry {
	return &Registry{
		key:         key,
		redisclient: redisclient,
		logger:      logger,
	}
}

// FindByOwner implements registryv1.Registry.
func (r *Registry) FindByOwner(ctx context.Context, ownerID string) (*registryv1.GeneratedOrderData, error) {
	data, err := r.redisclient.HGet(ctx, r.key, ownerID)
	if err != nil {
		r.logger.ErrorContext(ctx, err,
			logger.Field{Key: "key", Value: r.key},
			logger.Field{Key: "action", Value: "find_by_owner"},
		)
		return nil, errors.NewTracer(errors.RegistryLookupError).Wrap(err)
	}
	if data == "" {
		return nil, nil
	}

	var order registryv1.GeneratedOrderData
	if err := json.Unmarshal([]byte(data), &order); err != nil {
		r.logger.ErrorContext(ctx, err,
			logger.Field{Key: "key", Value: r.key},
			logger.Field{Key: "action", Value: "unmarshal_order"},
		)
		return nil, errors.NewTracer(errors.RegistryLookupError).Wrap(err)
	}

	return &order, nil
}

// Add implements registryv1.Registry.
func (r *Registry) Add(ctx context.Context, order registryv1.GeneratedOrderData) error {
	buf, err := json.Marshal(order)
	if err != nil {
		return errors.NewTracer(errors.EncodeError).Wrap(err)
	}

	ok, err := r.redisclient.HSetNX(ctx, r.key, order.OwnerID, string(buf))
	if err != nil {
		r.logger.ErrorContext(ctx, err,
			logger.Field{Key: "key", Value: r.key},
			logger.Field{Key: "action", Value: "add"},
		)
		return errors.TracerFromError(err)
	}
	if !ok {
		return errors.NewErrorDetails("owner "+order.OwnerID+" already has a resting order", string(errors.RegistryOwnerTakenError), "owner_id")
	}

	return nil
}

// UpdateByOwner implements registryv1.Registry.
func (r *Registry) UpdateByOwner(ctx context.Context, ownerID string, update registryv1.Update) error {
	order, err := r.FindByOwner(ctx, ownerID)
	if err != nil {
		return err
	}
	if order == nil {
		return notFound(ownerID)
	}

	update.Apply(order)

	buf, err := json.Marshal(order)
	if err != nil {
		return errors.NewTracer(errors.EncodeError).Wrap(err)
	}

	if _, err := r.redisclient.HSet(ctx, r.key, map[string]any{ownerID: string(buf)}); err != nil {
		r.logger.ErrorContext(ctx, err,
			logger.Field{Key: "key", Value: r.key},
			logger.Field{Key: "action", Value: "update_by_owner"},
		)
		return errors.TracerFromError(err)
	}

	return nil
}

// RemoveByOwner implements registryv1.Registry.
func (r *Registry) RemoveByOwner(ctx context.Context, ownerID string) error {
	deleted, err := r.redisclient.HDel(ctx, r.key, ownerID)
	if err != nil {
		r.logger.ErrorContext(ctx, err,
			logger.Field{Key: "key", Value: r.key},
			logger.Field{Key: "action", Value: "remove_by_owner"},
		)
		return errors.TracerFromError(err)
	}
	if deleted == 0 {
		return notFound(ownerID)
	}

	return nil
}

func notFound(ownerID string) error {
	return errors.NewErrorDetails("owner "+ownerID+" has no resting order", string(errors.RegistryOrderNotFoundError), "owner_id")
}
