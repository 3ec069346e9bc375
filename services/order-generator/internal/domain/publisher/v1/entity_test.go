package publisherv1

import (
	"testing"
	"time"

	generatorv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/generator/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFromMessage(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	price := 100.0 - 0.05
	qty := 1000.998

	testCases := []struct {
		name     string
		msg      *generatorv1.Message
		assertFn func(t *testing.T, p *Payload)
	}{
		{
			name: "new order renders decimals",
			msg: &generatorv1.Message{
				Kind:        generatorv1.MessageNewOrderSingle,
				OrdType:     generatorv1.OrdTypeLimit,
				TimeInForce: generatorv1.TimeInForceDay,
				Side:        generatorv1.SideBuy,
				Price:       &price,
				Quantity:    &qty,
				ClOrdID:     "01J0000000000000000000000",
				PartyID:     "CP3",
				Symbol:      "AAPL",
			},
			assertFn: func(t *testing.T, p *Payload) {
				assert.Equal(t, "99.95", p.Price)
				assert.Equal(t, "1000.998", p.Quantity)
				assert.Equal(t, "NEW_ORDER_SINGLE", p.Kind)
				assert.Equal(t, "DAY", p.TimeInForce)
				assert.Equal(t, "CP3", p.PartyID)
				assert.Equal(t, now, p.Timestamp)
			},
		},
		{
			name: "cancel request omits price and quantity",
			msg: &generatorv1.Message{
				Kind:        generatorv1.MessageOrderCancelRequest,
				Side:        generatorv1.SideSell,
				ClOrdID:     "A",
				OrigClOrdID: "A",
				PartyID:     "CP0",
			},
			assertFn: func(t *testing.T, p *Payload) {
				assert.Empty(t, p.Price)
				assert.Empty(t, p.Quantity)
				assert.Equal(t, "A", p.OrigClOrdID)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			payload := CreateFromMessage(tc.msg, now)
			tc.assertFn(t, payload)

			buf, err := ToBytes(payload)
			require.NoError(t, err)

			decoded, err := FromBytes(buf)
			require.NoError(t, err)
			assert.Equal(t, payload, decoded)
		})
	}
}

func TestFromBytes_Invalid(t *testing.T) {
	_, err := FromBytes([]byte("{"))
	assert.Error(t, err)
}
