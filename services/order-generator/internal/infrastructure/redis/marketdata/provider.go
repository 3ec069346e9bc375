package marketdata

import (
	"context"
	"encoding/json"

	"github.com/muhammadchandra19/orderflow/pkg/errors"
	"github.com/muhammadchandra19/orderflow/pkg/logger"
	"github.com/muhammadchandra19/orderflow/pkg/redis"
	generatorv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/generator/v1"
	marketdatav1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/marketdata/v1"
)

// Provider derives the market state of an instrument from the order book snapshot the
// matching engine keeps in Redis.
type Provider struct {
	keyPrefix   string
	redisclient redis.Client
	logger      logger.Interface
}

var _ marketdatav1.Provider = (*Provider)(nil)

// NewProvider creates a Provider reading snapshots at keyPrefix + symbol.
func NewProvider(redisclient redis.Client, keyPrefix string, logger logger.Interface) *Provider {
	return &Provider{
		keyPrefix:   keyPrefix,
		redisclient: redisclient,
		logger:      logger,
	}
}

// MarketState implements marketdatav1.Provider. A missing snapshot is an empty book.
func (p *Provider) MarketState(ctx context.Context, symbol string) (*generatorv1.MarketState, error) {
	key := p.keyPrefix + symbol

	data, err := p.redisclient.Get(ctx, key)
	if err != nil {
		p.logger.ErrorContext(ctx, err,
			logger.Field{Key: "key", Value: key},
			logger.Field{Key: "action", Value: "load_snapshot"},
		)
		return nil, errors.NewTracer(errors.MarketDataError).Wrap(err)
	}

	if data == "" {
		p.logger.DebugContext(ctx, "No snapshot found", logger.Field{Key: "key", Value: key})
		return &generatorv1.MarketState{}, nil
	}

	var snapshot marketdatav1.Snapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		p.logger.ErrorContext(ctx, err,
			logger.Field{Key: "key", Value: key},
			logger.Field{Key: "action", Value: "unmarshal_snapshot"},
		)
		return nil, errors.NewTracer(errors.MarketDataDecodeError).Wrap(err)
	}

	return FromSnapshot(&snapshot), nil
}

// FromSnapshot computes best prices and the number of distinct price levels per side.
func FromSnapshot(snapshot *marketdatav1.Snapshot) *generatorv1.MarketState {
	bidLevels := make(map[float64]struct{})
	askLevels := make(map[float64]struct{})

	var bestBid, bestAsk float64
	for _, order := range snapshot.OrderBookSnapshot.Orders {
		if order.Size <= 0 || order.Price <= 0 {
			continue
		}
		if order.Bid {
			bidLevels[order.Price] = struct{}{}
			if order.Price > bestBid {
				bestBid = order.Price
			}
			continue
		}
		askLevels[order.Price] = struct{}{}
		if bestAsk == 0 || order.Price < bestAsk {
			bestAsk = order.Price
		}
	}

	bidDepth := uint64(len(bidLevels))
	askDepth := uint64(len(askLevels))
	state := &generatorv1.MarketState{
		BidDepth:   &bidDepth,
		OfferDepth: &askDepth,
	}
	if bidDepth > 0 {
		state.BestBidPrice = &bestBid
	}
	if askDepth > 0 {
		state.BestOfferPrice = &bestAsk
	}
	return state
}
