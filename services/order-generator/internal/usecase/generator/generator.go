package generator

import (
	"context"

	"github.com/muhammadchandra19/orderflow/pkg/errors"
	"github.com/muhammadchandra19/orderflow/pkg/random"
	generatorv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/generator/v1"
	marketdatav1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/marketdata/v1"
	registryv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/registry/v1"
	tracerv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/tracer/v1"
	"github.com/muhammadchandra19/orderflow/services/order-generator/internal/usecase/sampler"
)

// Cycle holds what one generation call borrows from its caller.
type Cycle struct {
	Listing  generatorv1.Listing
	Venue    generatorv1.Venue
	Seed     generatorv1.PriceSeed
	Market   marketdatav1.Provider
	Registry registryv1.Registry
}

// Generator decides per call whether to emit an order message for one instrument.
type Generator struct {
	events     generatorv1.EventSampler
	parties    generatorv1.CounterpartySampler
	actions    generatorv1.ActionSampler
	prices     generatorv1.PriceSampler
	quantities generatorv1.QuantitySampler

	newID  func() string
	tracer tracerv1.Tracer
}

// NewGenerator creates a Generator whose samplers all draw from src.
func NewGenerator(src random.IntSource, opts ...Option) *Generator {
	g := &Generator{
		events:     sampler.NewEventSampler(src),
		parties:    sampler.NewCounterpartySampler(src),
		actions:    sampler.NewActionSampler(src),
		prices:     sampler.NewPriceSampler(src),
		quantities: sampler.NewQuantitySampler(src),
		newID:      newULID,
		tracer:     tracerv1.Nop{},
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate runs one generation cycle. A nil message with a nil error means the cycle declined.
//
// Errors from the market data provider and the registry lookup are returned as is. A registry
// mutation failing after a successful lookup, or an event without a side reaching side
// resolution, is a broken invariant and returned as an *errors.ErrorTracer.
func (g *Generator) Generate(ctx context.Context, cycle Cycle) (*generatorv1.Message, error) {
	event := g.events.SampleEvent()
	g.tracer.Step(ctx, "sample_event", tracerv1.V("event", event.String()))

	if event == generatorv1.EventNoOperation {
		g.tracer.Note(ctx, "sample_event", "no operation, declined")
		return nil, nil
	}

	msg := &generatorv1.Message{
		Symbol:  cycle.Listing.Symbol,
		PartyID: g.parties.SampleCounterparty(cycle.Venue),
	}
	g.tracer.Step(ctx, "sample_counterparty", tracerv1.V("party", msg.PartyID))

	market, err := cycle.Market.MarketState(ctx, cycle.Listing.Symbol)
	if err != nil {
		return nil, err
	}
	if market == nil {
		market = &generatorv1.MarketState{}
	}
	g.tracer.Step(ctx, "market_state",
		tracerv1.V("best_bid", market.BestBidPrice),
		tracerv1.V("best_offer", market.BestOfferPrice),
		tracerv1.V("bid_depth", market.BidDepth),
		tracerv1.V("offer_depth", market.OfferDepth),
	)

	if event.IsAggressive() {
		return g.aggressive(ctx, cycle, *market, event, msg)
	}
	return g.resting(ctx, cycle, *market, event, msg)
}

func (g *Generator) aggressive(
	ctx context.Context,
	cycle Cycle,
	market generatorv1.MarketState,
	event generatorv1.Event,
	msg *generatorv1.Message,
) (*generatorv1.Message, error) {
	side, err := targetSide(event)
	if err != nil {
		return nil, err
	}

	if _, ok := market.BestPrice(side.Opposite()); !ok {
		g.tracer.Note(ctx, "aggressive", "opposite side empty, declined")
		return nil, nil
	}

	msg.Kind = generatorv1.MessageNewOrderSingle
	msg.ClOrdID = g.newID()
	msg.Side = side
	msg.SetAggressiveProfile()

	price := g.samplePrice(ctx, cycle, market, event)
	quantity := g.sampleQuantity(ctx, cycle.Listing, true, price)
	msg.Price = &price
	msg.Quantity = &quantity

	return msg, nil
}

func (g *Generator) resting(
	ctx context.Context,
	cycle Cycle,
	market generatorv1.MarketState,
	event generatorv1.Event,
	msg *generatorv1.Message,
) (*generatorv1.Message, error) {
	existing, err := cycle.Registry.FindByOwner(ctx, msg.PartyID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		return g.newResting(ctx, cycle, market, event, msg)
	}
	return g.mutateResting(ctx, cycle, market, existing, msg)
}

func (g *Generator) newResting(
	ctx context.Context,
	cycle Cycle,
	market generatorv1.MarketState,
	event generatorv1.Event,
	msg *generatorv1.Message,
) (*generatorv1.Message, error) {
	side, err := targetSide(event)
	if err != nil {
		return nil, err
	}

	maxDepth, capped := sampler.MaxDepth(cycle.Listing, cycle.Venue)
	depth := market.Depth(side)
	admitted := sampler.AdmitNewOrder(maxDepth, capped, depth)
	g.tracer.Step(ctx, "depth_check",
		tracerv1.V("side", side),
		tracerv1.V("depth", depth),
		tracerv1.V("max_depth", maxDepth),
		tracerv1.V("capped", capped),
		tracerv1.V("admitted", admitted),
	)
	if !admitted {
		return nil, nil
	}

	msg.Kind = generatorv1.MessageNewOrderSingle
	msg.ClOrdID = g.newID()
	msg.Side = side

	price := g.samplePrice(ctx, cycle, market, event)
	quantity := g.sampleQuantity(ctx, cycle.Listing, false, price)
	msg.Price = &price
	msg.Quantity = &quantity
	msg.SetRestingProfile()

	order := registryv1.GeneratedOrderData{
		OwnerID:  msg.PartyID,
		OrderID:  msg.ClOrdID,
		Side:     side,
		Price:    price,
		Quantity: quantity,
	}
	if err := cycle.Registry.Add(ctx, order); err != nil {
		return nil, errors.NewTracer(errors.RegistryMutationError).Wrap(err)
	}

	return msg, nil
}

func (g *Generator) mutateResting(
	ctx context.Context,
	cycle Cycle,
	market generatorv1.MarketState,
	existing *registryv1.GeneratedOrderData,
	msg *generatorv1.Message,
) (*generatorv1.Message, error) {
	msg.ClOrdID = existing.OrderID
	msg.OrigClOrdID = existing.OrderID
	msg.Side = existing.Side
	msg.SetRestingProfile()

	action := g.actions.SampleAction()
	g.tracer.Step(ctx, "sample_action",
		tracerv1.V("order_id", existing.OrderID),
		tracerv1.V("action", action.String()),
	)

	var mutationErr error
	switch action {
	case generatorv1.ActionCancellation:
		msg.Kind = generatorv1.MessageOrderCancelRequest
		mutationErr = cycle.Registry.RemoveByOwner(ctx, existing.OwnerID)

	case generatorv1.ActionPriceModification:
		price := g.samplePrice(ctx, cycle, market, generatorv1.RestingEventFor(existing.Side))
		quantity := existing.Quantity
		msg.Kind = generatorv1.MessageOrderCancelReplaceRequest
		msg.Price = &price
		msg.Quantity = &quantity
		mutationErr = cycle.Registry.UpdateByOwner(ctx, existing.OwnerID, registryv1.Update{Price: &price})

	default:
		price := existing.Price
		quantity := g.sampleQuantity(ctx, cycle.Listing, false, price)
		msg.Kind = generatorv1.MessageOrderCancelReplaceRequest
		msg.Price = &price
		msg.Quantity = &quantity
		mutationErr = cycle.Registry.UpdateByOwner(ctx, existing.OwnerID, registryv1.Update{Quantity: &quantity})
	}

	if mutationErr != nil {
		return nil, errors.NewTracer(errors.RegistryMutationError).Wrap(mutationErr)
	}

	return msg, nil
}

func (g *Generator) samplePrice(
	ctx context.Context,
	cycle Cycle,
	market generatorv1.MarketState,
	event generatorv1.Event,
) float64 {
	params := sampler.ResolvePriceParams(cycle.Listing)
	price := g.prices.SamplePrice(params, market, cycle.Seed, event)
	g.tracer.Step(ctx, "sample_price",
		tracerv1.V("event", event.String()),
		tracerv1.V("tick_size", params.TickSize),
		tracerv1.V("tick_range", params.TickRange),
		tracerv1.V("spread", params.Spread),
		tracerv1.V("price", price),
	)
	return price
}

func (g *Generator) sampleQuantity(
	ctx context.Context,
	listing generatorv1.Listing,
	aggressive bool,
	price float64,
) float64 {
	params := sampler.ResolveQuantityParams(listing, aggressive, price)
	quantity := g.quantities.SampleQuantity(params)
	g.tracer.Step(ctx, "sample_quantity",
		tracerv1.V("aggressive", aggressive),
		tracerv1.V("multiplier", params.Multiplier),
		tracerv1.V("minimum", params.Minimum),
		tracerv1.V("maximum", params.Maximum),
		tracerv1.V("quantity", quantity),
	)
	return quantity
}

func targetSide(event generatorv1.Event) (generatorv1.Side, error) {
	side, ok := event.TargetSide()
	if !ok {
		return "", errors.NewTracer(errors.InvalidEventError).Wrap(
			errors.NewErrorDetails("event has no side: "+event.String(), string(errors.InvalidEventError), "event"),
		)
	}
	return side, nil
}
