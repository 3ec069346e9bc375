package marketdata

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/muhammadchandra19/orderflow/pkg/errors"
	"github.com/muhammadchandra19/orderflow/pkg/logger"
	mockLogger "github.com/muhammadchandra19/orderflow/pkg/logger/mock"
	redis_mock "github.com/muhammadchandra19/orderflow/pkg/redis/mock"
	generatorv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/generator/v1"
	marketdatav1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/marketdata/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapshotJSON = `{
	"orderOffset": 42,
	"orderBookSnapshot": {
		"orders": [
			{"orderID": "1", "size": 2, "bid": true, "price": 100, "userID": "u1", "timestamp": 1},
			{"orderID": "2", "size": 1, "bid": true, "price": 99.5, "userID": "u2", "timestamp": 2},
			{"orderID": "3", "size": 4, "bid": true, "price": 100, "userID": "u3", "timestamp": 3},
			{"orderID": "4", "size": 3, "bid": false, "price": 101, "userID": "u4", "timestamp": 4},
			{"orderID": "5", "size": 0, "bid": false, "price": 100.5, "userID": "u5", "timestamp": 5}
		]
	}
}`

func TestProvider_MarketState(t *testing.T) {
	ctx := context.Background()
	boom := stderrors.New("boom")

	testCases := []struct {
		name     string
		mockFn   func(rc *redis_mock.MockClient, log *mockLogger.MockInterface)
		assertFn func(t *testing.T, state *generatorv1.MarketState, err error)
	}{
		{
			name: "snapshot",
			mockFn: func(rc *redis_mock.MockClient, log *mockLogger.MockInterface) {
				rc.EXPECT().Get(ctx, "AAPL").Return(snapshotJSON, nil)
			},
			assertFn: func(t *testing.T, state *generatorv1.MarketState, err error) {
				require.NoError(t, err)
				assert.Equal(t, 100.0, *state.BestBidPrice)
				assert.Equal(t, 101.0, *state.BestOfferPrice)
				assert.Equal(t, uint64(2), *state.BidDepth)
				assert.Equal(t, uint64(1), *state.OfferDepth)
			},
		},
		{
			name: "no snapshot",
			mockFn: func(rc *redis_mock.MockClient, log *mockLogger.MockInterface) {
				rc.EXPECT().Get(ctx, "AAPL").Return("", nil)
				log.EXPECT().DebugContext(ctx, "No snapshot found", logger.Field{Key: "key", Value: "AAPL"})
			},
			assertFn: func(t *testing.T, state *generatorv1.MarketState, err error) {
				require.NoError(t, err)
				assert.Equal(t, &generatorv1.MarketState{}, state)
			},
		},
		{
			name: "redis error",
			mockFn: func(rc *redis_mock.MockClient, log *mockLogger.MockInterface) {
				rc.EXPECT().Get(ctx, "AAPL").Return("", boom)
				log.EXPECT().ErrorContext(ctx, boom,
					logger.Field{Key: "key", Value: "AAPL"},
					logger.Field{Key: "action", Value: "load_snapshot"},
				)
			},
			assertFn: func(t *testing.T, state *generatorv1.MarketState, err error) {
				assert.Nil(t, state)
				assert.Equal(t, errors.MarketDataError, errors.CodeOf(err))
			},
		},
		{
			name: "undecodable snapshot",
			mockFn: func(rc *redis_mock.MockClient, log *mockLogger.MockInterface) {
				rc.EXPECT().Get(ctx, "AAPL").Return("not json", nil)
				log.EXPECT().ErrorContext(ctx, gomock.Any(), gomock.Any(), gomock.Any())
			},
			assertFn: func(t *testing.T, state *generatorv1.MarketState, err error) {
				assert.Nil(t, state)
				assert.Equal(t, errors.MarketDataDecodeError, errors.CodeOf(err))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			rc := redis_mock.NewMockClient(ctrl)
			log := mockLogger.NewMockInterface(ctrl)
			tc.mockFn(rc, log)

			state, err := NewProvider(rc, "", log).MarketState(ctx, "AAPL")
			tc.assertFn(t, state, err)
		})
	}
}

func TestFromSnapshot_OneSided(t *testing.T) {
	snapshot := &marketdatav1.Snapshot{
		OrderBookSnapshot: marketdatav1.OrderBookSnapshot{
			Orders: []marketdatav1.SnapshotOrder{
				{OrderID: "1", Size: 1, Bid: true, Price: 98},
				{OrderID: "2", Size: 1, Bid: true, Price: 99},
			},
		},
	}

	state := FromSnapshot(snapshot)
	assert.Nil(t, state.BestOfferPrice)
	assert.Equal(t, 99.0, *state.BestBidPrice)
	assert.Equal(t, uint64(2), *state.BidDepth)
	assert.Equal(t, uint64(0), *state.OfferDepth)
}
