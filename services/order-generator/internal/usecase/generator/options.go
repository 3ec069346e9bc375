package generator

import (
	generatorv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/generator/v1"
	tracerv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/tracer/v1"
	"github.com/oklog/ulid/v2"
)

// Option configures a Generator.
type Option func(*Generator)

// WithTracer sets the step tracer.
func WithTracer(tracer tracerv1.Tracer) Option {
	return func(g *Generator) {
		if tracer != nil {
			g.tracer = tracer
		}
	}
}

// WithIDGenerator sets the client order id generator.
func WithIDGenerator(fn func() string) Option {
	return func(g *Generator) {
		if fn != nil {
			g.newID = fn
		}
	}
}

// WithEventSampler replaces the event sampler.
func WithEventSampler(s generatorv1.EventSampler) Option {
	return func(g *Generator) { g.events = s }
}

// WithCounterpartySampler replaces the counterparty sampler.
func WithCounterpartySampler(s generatorv1.CounterpartySampler) Option {
	return func(g *Generator) { g.parties = s }
}

// WithActionSampler replaces the resting order action sampler.
func WithActionSampler(s generatorv1.ActionSampler) Option {
	return func(g *Generator) { g.actions = s }
}

// WithPriceSampler replaces the price sampler.
func WithPriceSampler(s generatorv1.PriceSampler) Option {
	return func(g *Generator) { g.prices = s }
}

// WithQuantitySampler replaces the quantity sampler.
func WithQuantitySampler(s generatorv1.QuantitySampler) Option {
	return func(g *Generator) { g.quantities = s }
}

// newULID returns a monotonic ULID string.
func newULID() string {
	return ulid.Make().String()
}
