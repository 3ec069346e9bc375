package sampler

import (
	"testing"

	"github.com/muhammadchandra19/orderflow/pkg/random"
	generatorv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/generator/v1"
	"github.com/stretchr/testify/assert"
)

func TestResolveQuantityParams_Minimum(t *testing.T) {
	testCases := []struct {
		name       string
		listing    generatorv1.Listing
		aggressive bool
		price      float64
		want       float64
	}{
		{
			name:    "instrument minimum",
			listing: generatorv1.Listing{QtyMinimum: f64(1000.998), QtyMaximum: f64(1000.999)},
			want:    1000.998,
		},
		{
			name:    "random minimum not smaller overrides",
			listing: generatorv1.Listing{QtyMinimum: f64(1000.444), RandomQtyMinimum: f64(1000.445), QtyMaximum: f64(1000.999)},
			want:    1000.445,
		},
		{
			name:    "random minimum smaller is ignored",
			listing: generatorv1.Listing{QtyMinimum: f64(1000.444), RandomQtyMinimum: f64(10), QtyMaximum: f64(1000.999)},
			want:    1000.444,
		},
		{
			name: "amount minimum over price wins",
			listing: generatorv1.Listing{
				QtyMinimum:       f64(1000.444),
				RandomQtyMinimum: f64(1000.445),
				QtyMaximum:       f64(1000.999),
				RandomAmtMinimum: f64(12000),
			},
			price: 3,
			want:  4000,
		},
		{
			name:    "zero price disables amount minimum",
			listing: generatorv1.Listing{QtyMinimum: f64(1000.444), RandomAmtMinimum: f64(12000)},
			price:   0,
			want:    1000.444,
		},
		{
			name:    "smaller amount minimum is ignored",
			listing: generatorv1.Listing{QtyMinimum: f64(100), RandomAmtMinimum: f64(120)},
			price:   3,
			want:    100,
		},
		{
			name: "aggressive bounds for aggressive events",
			listing: generatorv1.Listing{
				QtyMinimum:                 f64(1),
				RandomQtyMinimum:           f64(5),
				RandomAggressiveQtyMinimum: f64(10),
			},
			aggressive: true,
			want:       10,
		},
		{
			name: "aggressive bounds ignored for resting events",
			listing: generatorv1.Listing{
				QtyMinimum:                 f64(1),
				RandomQtyMinimum:           f64(5),
				RandomAggressiveQtyMinimum: f64(10),
			},
			want: 5,
		},
		{
			name: "aggressive max alone switches the whole set",
			listing: generatorv1.Listing{
				QtyMinimum:                 f64(1),
				RandomQtyMinimum:           f64(5),
				RandomAggressiveQtyMaximum: f64(50),
			},
			aggressive: true,
			want:       1,
		},
		{
			name:       "aggressive event without aggressive bounds",
			listing:    generatorv1.Listing{QtyMinimum: f64(1), RandomQtyMinimum: f64(5)},
			aggressive: true,
			want:       5,
		},
		{
			name:    "no instrument minimum",
			listing: generatorv1.Listing{RandomQtyMinimum: f64(7)},
			want:    7,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			params := ResolveQuantityParams(tc.listing, tc.aggressive, tc.price)
			assert.Equal(t, tc.want, params.Minimum)
		})
	}
}

func TestResolveQuantityParams_Maximum(t *testing.T) {
	testCases := []struct {
		name    string
		listing generatorv1.Listing
		price   float64
		want    float64
	}{
		{
			name:    "instrument maximum",
			listing: generatorv1.Listing{QtyMaximum: f64(1000.999)},
			want:    1000.999,
		},
		{
			name:    "larger random maximum is ignored",
			listing: generatorv1.Listing{QtyMaximum: f64(1000), RandomQtyMaximum: f64(2000)},
			want:    1000,
		},
		{
			name:    "smaller random maximum overrides",
			listing: generatorv1.Listing{QtyMaximum: f64(1000), RandomQtyMaximum: f64(500)},
			want:    500,
		},
		{
			name:    "amount maximum over price",
			listing: generatorv1.Listing{QtyMaximum: f64(1000), RandomQtyMaximum: f64(500), RandomAmtMaximum: f64(600)},
			price:   2,
			want:    300,
		},
		{
			name:    "larger amount maximum is ignored",
			listing: generatorv1.Listing{QtyMaximum: f64(1000), RandomAmtMaximum: f64(600000)},
			price:   2,
			want:    1000,
		},
		{
			name:    "no maximum falls back to minimum",
			listing: generatorv1.Listing{QtyMinimum: f64(3)},
			want:    3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			params := ResolveQuantityParams(tc.listing, false, tc.price)
			assert.Equal(t, tc.want, params.Maximum)
		})
	}
}

func TestResolveQuantityParams_Multiplier(t *testing.T) {
	assert.Equal(t, DefaultQtyMultiple, ResolveQuantityParams(generatorv1.Listing{}, false, 0).Multiplier)
	assert.Equal(t, 0.25, ResolveQuantityParams(generatorv1.Listing{QtyMultiple: f64(0.25)}, false, 0).Multiplier)
}

func TestQuantitySampler_SampleQuantity(t *testing.T) {
	testCases := []struct {
		name   string
		params generatorv1.QuantityParams
		draw   uint64
		want   float64
	}{
		{
			name:   "lots above minimum",
			params: generatorv1.QuantityParams{Multiplier: 0.5, Minimum: 1, Maximum: 3},
			draw:   3,
			want:   2.5,
		},
		{
			name:   "draw clamped to maximum",
			params: generatorv1.QuantityParams{Multiplier: 0.5, Minimum: 1, Maximum: 3},
			draw:   100,
			want:   3,
		},
		{
			name:   "single value range",
			params: generatorv1.QuantityParams{Multiplier: 1, Minimum: 1000.998, Maximum: 1000.999},
			draw:   0,
			want:   1000.998,
		},
		{
			name:   "maximum below minimum",
			params: generatorv1.QuantityParams{Multiplier: 10, Minimum: 100, Maximum: 50},
			draw:   5,
			want:   100,
		},
		{
			// verified edge case: a zero multiplier never divides and all-zero params give 1
			name:   "all zero params",
			params: generatorv1.QuantityParams{},
			draw:   0,
			want:   1.0,
		},
		{
			name:   "zero multiplier samples whole units",
			params: generatorv1.QuantityParams{Multiplier: 0, Minimum: 2, Maximum: 5},
			draw:   2,
			want:   4,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewQuantitySampler(random.NewSequence(tc.draw))
			assert.InDelta(t, tc.want, s.SampleQuantity(tc.params), 1e-9)
		})
	}
}

func TestQuantitySampler_WithinBounds(t *testing.T) {
	s := NewQuantitySampler(random.NewSource(11))
	params := generatorv1.QuantityParams{Multiplier: 0.1, Minimum: 10, Maximum: 20}

	for i := 0; i < 1000; i++ {
		q := s.SampleQuantity(params)
		assert.GreaterOrEqual(t, q, params.Minimum-1e-9)
		assert.LessOrEqual(t, q, params.Maximum+1e-9)
	}
}
