package engine

import (
	"context"
	"sync"
	"time"

	"github.com/muhammadchandra19/orderflow/pkg/errors"
	"github.com/muhammadchandra19/orderflow/pkg/logger"
	"github.com/muhammadchandra19/orderflow/pkg/util"
	configv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/config/v1"
	generatorv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/generator/v1"
	marketdatav1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/marketdata/v1"
	publisherv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/publisher/v1"
	registryv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/registry/v1"
	"github.com/muhammadchandra19/orderflow/services/order-generator/internal/usecase/generator"
)

// Generator runs one generation cycle.
type Generator interface {
	Generate(ctx context.Context, cycle generator.Cycle) (*generatorv1.Message, error)
}

// RegistryFactory returns the registry that tracks resting orders of one instrument.
type RegistryFactory func(venueID, symbol string) registryv1.Registry

// Stats counts finished generation cycles.
type Stats struct {
	Generated int64
	Declined  int64
	Failed    int64
}

// Engine drives generation for every enabled instrument of a venue, one goroutine per
// instrument, and publishes what the generator produces.
type Engine struct {
	venueID     string
	store       configv1.Store
	market      marketdatav1.Provider
	publisher   publisherv1.Publisher
	generator   Generator
	newRegistry RegistryFactory
	logger      logger.Interface

	tickInterval time.Duration
	instruments  []string

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	statsMu sync.RWMutex
	stats   Stats
}

// NewEngine creates a new instance of Engine with the provided dependencies.
func NewEngine(
	venueID string,
	store configv1.Store,
	market marketdatav1.Provider,
	publisher publisherv1.Publisher,
	gen Generator,
	newRegistry RegistryFactory,
	logger logger.Interface,
) *Engine {
	return NewEngineWithOptions(venueID, store, market, publisher, gen, newRegistry, logger, DefaultEngineOptions())
}

// NewEngineWithOptions creates a new engine with custom options
func NewEngineWithOptions(
	venueID string,
	store configv1.Store,
	market marketdatav1.Provider,
	publisher publisherv1.Publisher,
	gen Generator,
	newRegistry RegistryFactory,
	logger logger.Interface,
	options *Options,
) *Engine {
	tickInterval := options.TickInterval
	if tickInterval <= 0 {
		tickInterval = DefaultEngineOptions().TickInterval
	}

	return &Engine{
		venueID:      venueID,
		store:        store,
		market:       market,
		publisher:    publisher,
		generator:    gen,
		newRegistry:  newRegistry,
		logger:       logger,
		tickInterval: tickInterval,
		instruments:  options.Instruments,
	}
}

// Start loads the venue configuration and starts one generation loop per enabled instrument.
func (e *Engine) Start(ctx context.Context) error {
	cycles, err := e.loadCycles(ctx)
	if err != nil {
		return err
	}
	if len(cycles) == 0 {
		return errors.NewErrorDetails("no instrument of venue "+e.venueID+" has random orders enabled",
			string(errors.ConfigNotFoundError), "instruments")
	}

	e.ctx, e.cancel = context.WithCancel(ctx)

	e.wg.Add(len(cycles))
	for _, cycle := range cycles {
		go e.runInstrument(cycle)
	}

	e.logger.Info("Order generator engine started",
		logger.Field{Key: "venueID", Value: e.venueID},
		logger.Field{Key: "instruments", Value: len(cycles)},
		logger.Field{Key: "tickInterval", Value: e.tickInterval.String()},
	)

	return nil
}

// Stop gracefully shuts down the engine
func (e *Engine) Stop(ctx context.Context) error {
	if e.cancel != nil {
		e.cancel()
	}

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		stats := e.Stats()
		e.logger.Info("Order generator engine stopped gracefully",
			logger.Field{Key: "generated", Value: stats.Generated},
			logger.Field{Key: "declined", Value: stats.Declined},
			logger.Field{Key: "failed", Value: stats.Failed},
		)
		return nil
	case <-ctx.Done():
		e.logger.Warn("Engine stop timeout exceeded")
		return ctx.Err()
	}
}

// Stats returns the cycle counters.
func (e *Engine) Stats() Stats {
	e.statsMu.RLock()
	defer e.statsMu.RUnlock()
	return e.stats
}

func (e *Engine) loadCycles(ctx context.Context) ([]generator.Cycle, error) {
	venue, err := e.store.Venue(ctx, e.venueID)
	if err != nil {
		return nil, err
	}

	listings, err := e.loadListings(ctx)
	if err != nil {
		return nil, err
	}

	cycles := make([]generator.Cycle, 0, len(listings))
	for _, listing := range listings {
		if !listing.RandomOrdersEnabled {
			e.logger.Info("Random orders disabled, skipping instrument",
				logger.Field{Key: "symbol", Value: listing.Symbol},
			)
			continue
		}

		seed, err := e.store.PriceSeed(ctx, e.venueID, listing.Symbol)
		if err != nil {
			return nil, err
		}

		cycles = append(cycles, generator.Cycle{
			Listing:  listing,
			Venue:    *venue,
			Seed:     *seed,
			Market:   e.market,
			Registry: e.newRegistry(e.venueID, listing.Symbol),
		})
	}

	return cycles, nil
}

func (e *Engine) loadListings(ctx context.Context) ([]generatorv1.Listing, error) {
	if len(e.instruments) == 0 {
		return e.store.Listings(ctx, e.venueID)
	}

	listings := make([]generatorv1.Listing, 0, len(e.instruments))
	for _, symbol := range e.instruments {
		listing, err := e.store.Listing(ctx, e.venueID, symbol)
		if err != nil {
			return nil, err
		}
		listings = append(listings, *listing)
	}

	return listings, nil
}

// runInstrument runs one generation cycle per tick until the engine stops
func (e *Engine) runInstrument(cycle generator.Cycle) {
	defer e.wg.Done()

	ticker := time.NewTicker(e.tickInterval)
	defer ticker.Stop()

	e.logger.Info("Starting instrument loop", logger.Field{
		Key:   "symbol",
		Value: cycle.Listing.Symbol,
	})

	for {
		select {
		case <-e.ctx.Done():
			e.logger.Info("Instrument loop shutting down", logger.Field{
				Key:   "symbol",
				Value: cycle.Listing.Symbol,
			})
			return
		case <-ticker.C:
			e.runCycle(e.ctx, cycle)
		}
	}
}

// runCycle generates at most one message for the instrument and publishes it.
func (e *Engine) runCycle(ctx context.Context, cycle generator.Cycle) {
	ctx = util.WithVenueID(ctx, e.venueID)
	ctx = util.WithInstrument(ctx, cycle.Listing.Symbol)
	ctx = util.WithCycleID(ctx, "")

	msg, err := e.generator.Generate(ctx, cycle)
	if err != nil {
		e.count(func(s *Stats) { s.Failed++ })
		e.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "generate",
		})
		return
	}
	if msg == nil {
		e.count(func(s *Stats) { s.Declined++ })
		return
	}

	// The registry already reflects msg; a failed publish leaves it ahead of the venue.
	if err := e.publisher.Publish(ctx, msg); err != nil {
		e.count(func(s *Stats) { s.Failed++ })
		e.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "publish",
		})
		return
	}

	e.count(func(s *Stats) { s.Generated++ })
	e.logger.DebugContext(ctx, "Message published",
		logger.Field{Key: "kind", Value: string(msg.Kind)},
		logger.Field{Key: "side", Value: string(msg.Side)},
		logger.Field{Key: "clOrdID", Value: msg.ClOrdID},
		logger.Field{Key: "partyID", Value: msg.PartyID},
	)
}

func (e *Engine) count(fn func(s *Stats)) {
	e.statsMu.Lock()
	defer e.statsMu.Unlock()
	fn(&e.stats)
}
