package generator

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/muhammadchandra19/orderflow/pkg/errors"
	"github.com/muhammadchandra19/orderflow/pkg/random"
	generatorv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/generator/v1"
	marketdatav1_mock "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/marketdata/v1/mock"
	registryv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/registry/v1"
	registryv1_mock "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/registry/v1/mock"
	tracerv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/tracer/v1"
	"github.com/muhammadchandra19/orderflow/services/order-generator/internal/usecase/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func u32(v uint32) *uint32 { return &v }

func u64(v uint64) *uint64 { return &v }

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("ID%d", n)
	}
}

func testListing() generatorv1.Listing {
	return generatorv1.Listing{
		VenueID:             "XSIM",
		Symbol:              "AAPL",
		QtyMinimum:          f64(1),
		QtyMaximum:          f64(10),
		QtyMultiple:         f64(1),
		RandomOrdersEnabled: true,
	}
}

func fullBook() *generatorv1.MarketState {
	return &generatorv1.MarketState{
		BestBidPrice:   f64(100),
		BestOfferPrice: f64(101),
		BidDepth:       u64(2),
		OfferDepth:     u64(2),
	}
}

func TestGenerator_Generate(t *testing.T) {
	ctx := context.Background()
	resting := registryv1.GeneratedOrderData{
		OwnerID:  "CP1",
		OrderID:  "OLD",
		Side:     generatorv1.SideSell,
		Price:    102,
		Quantity: 5,
	}

	// draw order: event, counterparty, [action], price, quantity
	testCases := []struct {
		name     string
		draws    []uint64
		listing  generatorv1.Listing
		existing []registryv1.GeneratedOrderData
		mockFn   func(provider *marketdatav1_mock.MockProvider)
		assertFn func(t *testing.T, msg *generatorv1.Message, err error, reg *registry.Memory)
	}{
		{
			name:  "aggressive buy",
			draws: []uint64{18, 2, 0, 3},
			mockFn: func(provider *marketdatav1_mock.MockProvider) {
				provider.EXPECT().MarketState(ctx, "AAPL").Return(fullBook(), nil)
			},
			assertFn: func(t *testing.T, msg *generatorv1.Message, err error, reg *registry.Memory) {
				require.NoError(t, err)
				require.NotNil(t, msg)
				assert.Equal(t, generatorv1.MessageNewOrderSingle, msg.Kind)
				assert.Equal(t, generatorv1.OrdTypeLimit, msg.OrdType)
				assert.Equal(t, generatorv1.TimeInForceIOC, msg.TimeInForce)
				assert.Equal(t, generatorv1.SideBuy, msg.Side)
				assert.Equal(t, "CP2", msg.PartyID)
				assert.Equal(t, "ID1", msg.ClOrdID)
				assert.Empty(t, msg.OrigClOrdID)
				assert.InDelta(t, 101.05, *msg.Price, 1e-9)
				assert.Equal(t, 4.0, *msg.Quantity)
				assert.Equal(t, 0, reg.Len())
			},
		},
		{
			name:  "aggressive sell declined on empty bid side",
			draws: []uint64{16, 0},
			mockFn: func(provider *marketdatav1_mock.MockProvider) {
				provider.EXPECT().MarketState(ctx, "AAPL").Return(&generatorv1.MarketState{BestOfferPrice: f64(101)}, nil)
			},
			assertFn: func(t *testing.T, msg *generatorv1.Message, err error, reg *registry.Memory) {
				assert.NoError(t, err)
				assert.Nil(t, msg)
				assert.Equal(t, 0, reg.Len())
			},
		},
		{
			name:  "new resting buy is registered",
			draws: []uint64{0, 1, 4, 0},
			mockFn: func(provider *marketdatav1_mock.MockProvider) {
				provider.EXPECT().MarketState(ctx, "AAPL").Return(fullBook(), nil)
			},
			assertFn: func(t *testing.T, msg *generatorv1.Message, err error, reg *registry.Memory) {
				require.NoError(t, err)
				require.NotNil(t, msg)
				assert.Equal(t, generatorv1.MessageNewOrderSingle, msg.Kind)
				assert.Equal(t, generatorv1.TimeInForceDay, msg.TimeInForce)
				assert.Equal(t, generatorv1.SideBuy, msg.Side)
				assert.InDelta(t, 100.98, *msg.Price, 1e-9)
				assert.Equal(t, 1.0, *msg.Quantity)

				order, _ := reg.FindByOwner(ctx, "CP1")
				require.NotNil(t, order)
				assert.Equal(t, "ID1", order.OrderID)
				assert.Equal(t, generatorv1.SideBuy, order.Side)
				assert.Equal(t, *msg.Price, order.Price)
				assert.Equal(t, *msg.Quantity, order.Quantity)
			},
		},
		{
			name:  "new resting sell on empty book uses seed",
			draws: []uint64{8, 3, 2},
			mockFn: func(provider *marketdatav1_mock.MockProvider) {
				provider.EXPECT().MarketState(ctx, "AAPL").Return(nil, nil)
			},
			assertFn: func(t *testing.T, msg *generatorv1.Message, err error, reg *registry.Memory) {
				require.NoError(t, err)
				require.NotNil(t, msg)
				assert.Equal(t, generatorv1.SideSell, msg.Side)
				assert.Equal(t, 321.5, *msg.Price)
				assert.Equal(t, 3.0, *msg.Quantity)
				assert.Equal(t, 1, reg.Len())
			},
		},
		{
			name:  "new resting order declined at depth cap",
			draws: []uint64{0, 1},
			listing: func() generatorv1.Listing {
				l := testListing()
				l.RandomDepthLevels = u32(2)
				return l
			}(),
			mockFn: func(provider *marketdatav1_mock.MockProvider) {
				provider.EXPECT().MarketState(ctx, "AAPL").Return(fullBook(), nil)
			},
			assertFn: func(t *testing.T, msg *generatorv1.Message, err error, reg *registry.Memory) {
				assert.NoError(t, err)
				assert.Nil(t, msg)
				assert.Equal(t, 0, reg.Len())
			},
		},
		{
			name:     "existing order cancelled",
			draws:    []uint64{0, 1, 18},
			existing: []registryv1.GeneratedOrderData{resting},
			mockFn: func(provider *marketdatav1_mock.MockProvider) {
				provider.EXPECT().MarketState(ctx, "AAPL").Return(fullBook(), nil)
			},
			assertFn: func(t *testing.T, msg *generatorv1.Message, err error, reg *registry.Memory) {
				require.NoError(t, err)
				require.NotNil(t, msg)
				assert.Equal(t, generatorv1.MessageOrderCancelRequest, msg.Kind)
				assert.Equal(t, generatorv1.SideSell, msg.Side, "stored side is kept")
				assert.Equal(t, "OLD", msg.ClOrdID)
				assert.Equal(t, "OLD", msg.OrigClOrdID)
				assert.Equal(t, generatorv1.TimeInForceDay, msg.TimeInForce)
				assert.Nil(t, msg.Price)
				assert.Nil(t, msg.Quantity)
				assert.Equal(t, 0, reg.Len())
			},
		},
		{
			name:     "existing order price modified",
			draws:    []uint64{0, 1, 9, 4},
			existing: []registryv1.GeneratedOrderData{resting},
			mockFn: func(provider *marketdatav1_mock.MockProvider) {
				provider.EXPECT().MarketState(ctx, "AAPL").Return(fullBook(), nil)
			},
			assertFn: func(t *testing.T, msg *generatorv1.Message, err error, reg *registry.Memory) {
				require.NoError(t, err)
				require.NotNil(t, msg)
				assert.Equal(t, generatorv1.MessageOrderCancelReplaceRequest, msg.Kind)
				assert.Equal(t, generatorv1.SideSell, msg.Side)
				assert.InDelta(t, 100.02, *msg.Price, 1e-9)
				assert.Equal(t, 5.0, *msg.Quantity)

				order, _ := reg.FindByOwner(ctx, "CP1")
				require.NotNil(t, order)
				assert.Equal(t, "OLD", order.OrderID)
				assert.Equal(t, *msg.Price, order.Price)
				assert.Equal(t, 5.0, order.Quantity)
			},
		},
		{
			name:     "existing order quantity modified",
			draws:    []uint64{8, 1, 0, 7},
			existing: []registryv1.GeneratedOrderData{resting},
			mockFn: func(provider *marketdatav1_mock.MockProvider) {
				provider.EXPECT().MarketState(ctx, "AAPL").Return(fullBook(), nil)
			},
			assertFn: func(t *testing.T, msg *generatorv1.Message, err error, reg *registry.Memory) {
				require.NoError(t, err)
				require.NotNil(t, msg)
				assert.Equal(t, generatorv1.MessageOrderCancelReplaceRequest, msg.Kind)
				assert.Equal(t, 102.0, *msg.Price)
				assert.Equal(t, 8.0, *msg.Quantity)

				order, _ := reg.FindByOwner(ctx, "CP1")
				require.NotNil(t, order)
				assert.Equal(t, "OLD", order.OrderID)
				assert.Equal(t, "CP1", order.OwnerID)
				assert.Equal(t, 102.0, order.Price)
				assert.Equal(t, 8.0, order.Quantity)
			},
		},
		{
			name:     "existing order ignores depth cap",
			draws:    []uint64{0, 1, 18},
			existing: []registryv1.GeneratedOrderData{resting},
			listing: func() generatorv1.Listing {
				l := testListing()
				l.RandomDepthLevels = u32(1)
				return l
			}(),
			mockFn: func(provider *marketdatav1_mock.MockProvider) {
				provider.EXPECT().MarketState(ctx, "AAPL").Return(fullBook(), nil)
			},
			assertFn: func(t *testing.T, msg *generatorv1.Message, err error, reg *registry.Memory) {
				require.NoError(t, err)
				require.NotNil(t, msg)
				assert.Equal(t, generatorv1.MessageOrderCancelRequest, msg.Kind)
			},
		},
		{
			name:  "market data error passes through",
			draws: []uint64{0, 1},
			mockFn: func(provider *marketdatav1_mock.MockProvider) {
				provider.EXPECT().MarketState(ctx, "AAPL").Return(nil, errors.NewTracer(errors.MarketDataError))
			},
			assertFn: func(t *testing.T, msg *generatorv1.Message, err error, reg *registry.Memory) {
				assert.Nil(t, msg)
				assert.True(t, errors.HasCode(err, errors.MarketDataError))
				assert.Equal(t, 0, reg.Len())
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			provider := marketdatav1_mock.NewMockProvider(ctrl)
			reg := registry.NewMemory()
			for _, order := range tc.existing {
				require.NoError(t, reg.Add(ctx, order))
			}

			tc.mockFn(provider)

			listing := tc.listing
			if listing.Symbol == "" {
				listing = testListing()
			}

			g := NewGenerator(random.NewSequence(tc.draws...), WithIDGenerator(sequentialIDs()))
			msg, err := g.Generate(ctx, Cycle{
				Listing:  listing,
				Venue:    generatorv1.Venue{ID: "XSIM"},
				Seed:     generatorv1.PriceSeed{BidPrice: f64(123.5), OfferPrice: f64(321.5)},
				Market:   provider,
				Registry: reg,
			})

			tc.assertFn(t, msg, err, reg)
		})
	}
}

func TestGenerator_NoOperationDeclines(t *testing.T) {
	ctx := context.Background()

	// draws 20..29 are NoOperation, larger values simulate a misbehaving source
	for _, draw := range []uint64{20, 25, 29, 30, 31, 1000} {
		t.Run(fmt.Sprintf("draw %d", draw), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// no expectations: any provider or registry call fails the test
			provider := marketdatav1_mock.NewMockProvider(ctrl)
			reg := registryv1_mock.NewMockRegistry(ctrl)

			g := NewGenerator(random.NewSequence(draw))
			msg, err := g.Generate(ctx, Cycle{
				Listing:  testListing(),
				Market:   provider,
				Registry: reg,
			})

			assert.NoError(t, err)
			assert.Nil(t, msg)
		})
	}
}

func TestGenerator_RegistryFailures(t *testing.T) {
	ctx := context.Background()
	boom := stderrors.New("boom")
	existing := &registryv1.GeneratedOrderData{OwnerID: "CP1", OrderID: "OLD", Side: generatorv1.SideBuy, Price: 99, Quantity: 2}

	testCases := []struct {
		name     string
		draws    []uint64
		mockFn   func(reg *registryv1_mock.MockRegistry)
		assertFn func(t *testing.T, msg *generatorv1.Message, err error)
	}{
		{
			name:  "lookup error passes through",
			draws: []uint64{0, 1},
			mockFn: func(reg *registryv1_mock.MockRegistry) {
				reg.EXPECT().FindByOwner(ctx, "CP1").Return(nil, boom)
			},
			assertFn: func(t *testing.T, msg *generatorv1.Message, err error) {
				assert.Nil(t, msg)
				assert.Equal(t, boom, err)
			},
		},
		{
			name:  "add failure is a mutation error",
			draws: []uint64{0, 1, 0, 0},
			mockFn: func(reg *registryv1_mock.MockRegistry) {
				reg.EXPECT().FindByOwner(ctx, "CP1").Return(nil, nil)
				reg.EXPECT().Add(ctx, gomock.Any()).Return(boom)
			},
			assertFn: func(t *testing.T, msg *generatorv1.Message, err error) {
				assert.Nil(t, msg)
				assert.Equal(t, errors.RegistryMutationError, errors.CodeOf(err))
				assert.ErrorIs(t, err, boom)
			},
		},
		{
			name:  "update failure is a mutation error",
			draws: []uint64{0, 1, 0, 0},
			mockFn: func(reg *registryv1_mock.MockRegistry) {
				reg.EXPECT().FindByOwner(ctx, "CP1").Return(existing, nil)
				reg.EXPECT().UpdateByOwner(ctx, "CP1", gomock.Any()).Return(boom)
			},
			assertFn: func(t *testing.T, msg *generatorv1.Message, err error) {
				assert.Nil(t, msg)
				assert.Equal(t, errors.RegistryMutationError, errors.CodeOf(err))
			},
		},
		{
			name:  "remove failure is a mutation error",
			draws: []uint64{0, 1, 19},
			mockFn: func(reg *registryv1_mock.MockRegistry) {
				reg.EXPECT().FindByOwner(ctx, "CP1").Return(existing, nil)
				reg.EXPECT().RemoveByOwner(ctx, "CP1").Return(boom)
			},
			assertFn: func(t *testing.T, msg *generatorv1.Message, err error) {
				assert.Nil(t, msg)
				assert.Equal(t, errors.RegistryMutationError, errors.CodeOf(err))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			provider := marketdatav1_mock.NewMockProvider(ctrl)
			provider.EXPECT().MarketState(ctx, "AAPL").Return(fullBook(), nil)
			reg := registryv1_mock.NewMockRegistry(ctrl)
			tc.mockFn(reg)

			g := NewGenerator(random.NewSequence(tc.draws...))
			msg, err := g.Generate(ctx, Cycle{
				Listing:  testListing(),
				Market:   provider,
				Registry: reg,
			})

			tc.assertFn(t, msg, err)
		})
	}
}

type fixedEvent generatorv1.Event

func (e fixedEvent) SampleEvent() generatorv1.Event { return generatorv1.Event(e) }

func TestGenerator_EventWithoutSide(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := marketdatav1_mock.NewMockProvider(ctrl)
	provider.EXPECT().MarketState(ctx, "AAPL").Return(fullBook(), nil)
	reg := registryv1_mock.NewMockRegistry(ctrl)
	reg.EXPECT().FindByOwner(ctx, "CP0").Return(nil, nil)

	g := NewGenerator(random.NewSequence(0), WithEventSampler(fixedEvent(42)))
	msg, err := g.Generate(ctx, Cycle{
		Listing:  testListing(),
		Market:   provider,
		Registry: reg,
	})

	assert.Nil(t, msg)
	assert.Equal(t, errors.InvalidEventError, errors.CodeOf(err))
}

// checkedRegistry fails the test when an order changes owner or id while resting.
type checkedRegistry struct {
	*registry.Memory
	t *testing.T
}

func (r checkedRegistry) UpdateByOwner(ctx context.Context, ownerID string, update registryv1.Update) error {
	before, _ := r.Memory.FindByOwner(ctx, ownerID)
	if err := r.Memory.UpdateByOwner(ctx, ownerID, update); err != nil {
		return err
	}
	after, _ := r.Memory.FindByOwner(ctx, ownerID)
	assert.Equal(r.t, before.OrderID, after.OrderID)
	assert.Equal(r.t, before.OwnerID, after.OwnerID)
	return nil
}

func TestGenerator_RegistryInvariant(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := marketdatav1_mock.NewMockProvider(ctrl)
	provider.EXPECT().MarketState(ctx, "AAPL").Return(fullBook(), nil).AnyTimes()

	mem := registry.NewMemory()
	reg := checkedRegistry{Memory: mem, t: t}

	// a single counterparty forces every resting event through the same registry slot
	venue := generatorv1.Venue{ID: "XSIM", RandomPartyCount: u32(1)}
	g := NewGenerator(random.NewSource(2024))

	kinds := make(map[generatorv1.MessageKind]int)
	for i := 0; i < 2000; i++ {
		before, _ := mem.FindByOwner(ctx, "CP0")

		msg, err := g.Generate(ctx, Cycle{
			Listing:  testListing(),
			Venue:    venue,
			Market:   provider,
			Registry: reg,
		})
		require.NoError(t, err)
		require.LessOrEqual(t, mem.Len(), 1)

		if msg == nil || msg.TimeInForce == generatorv1.TimeInForceIOC {
			continue
		}
		kinds[msg.Kind]++

		after, _ := mem.FindByOwner(ctx, "CP0")
		switch msg.Kind {
		case generatorv1.MessageOrderCancelRequest:
			require.NotNil(t, before)
			assert.Nil(t, after)
			assert.Equal(t, before.OrderID, msg.OrigClOrdID)
		case generatorv1.MessageOrderCancelReplaceRequest:
			require.NotNil(t, before)
			require.NotNil(t, after)
			assert.Equal(t, before.OrderID, after.OrderID)
			assert.Equal(t, before.Side, msg.Side)
		case generatorv1.MessageNewOrderSingle:
			assert.Nil(t, before)
			require.NotNil(t, after)
			assert.Equal(t, msg.ClOrdID, after.OrderID)
		}
	}

	assert.NotZero(t, kinds[generatorv1.MessageNewOrderSingle])
	assert.NotZero(t, kinds[generatorv1.MessageOrderCancelRequest])
	assert.NotZero(t, kinds[generatorv1.MessageOrderCancelReplaceRequest])
}

type recordingTracer struct {
	steps []string
	notes []string
}

func (r *recordingTracer) Step(_ context.Context, step string, _ ...tracerv1.Value) {
	r.steps = append(r.steps, step)
}

func (r *recordingTracer) Note(_ context.Context, step, message string) {
	r.notes = append(r.notes, step+": "+message)
}

func TestGenerator_Tracer(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := marketdatav1_mock.NewMockProvider(ctrl)
	provider.EXPECT().MarketState(ctx, "AAPL").Return(fullBook(), nil)

	tracer := &recordingTracer{}
	g := NewGenerator(random.NewSequence(18, 2, 0, 3), WithTracer(tracer))
	_, err := g.Generate(ctx, Cycle{
		Listing:  testListing(),
		Market:   provider,
		Registry: registry.NewMemory(),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"sample_event", "sample_counterparty", "market_state", "sample_price", "sample_quantity"}, tracer.steps)

	g = NewGenerator(random.NewSequence(25), WithTracer(tracer))
	_, err = g.Generate(ctx, Cycle{Listing: testListing()})
	require.NoError(t, err)
	assert.Equal(t, []string{"sample_event: no operation, declined"}, tracer.notes)
}
