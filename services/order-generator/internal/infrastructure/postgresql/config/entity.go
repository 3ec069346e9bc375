package config

import (
	generatorv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/generator/v1"
)

var listingColumns = []string{
	"venue_id",
	"symbol",
	"qty_minimum",
	"qty_maximum",
	"qty_multiple",
	"price_tick_size",
	"price_tick_range",
	"order_spread",
	"random_qty_minimum",
	"random_qty_maximum",
	"random_amt_minimum",
	"random_amt_maximum",
	"random_aggressive_qty_minimum",
	"random_aggressive_qty_maximum",
	"random_aggressive_amt_minimum",
	"random_aggressive_amt_maximum",
	"random_depth_levels",
	"random_orders_enabled",
}

// listingRow holds the scan targets of one listings row. INTEGER columns scan as int32.
type listingRow struct {
	listing        generatorv1.Listing
	priceTickRange *int32
	depthLevels    *int32
}

func (r *listingRow) dest() []any {
	l := &r.listing
	return []any{
		&l.VenueID,
		&l.Symbol,
		&l.QtyMinimum,
		&l.QtyMaximum,
		&l.QtyMultiple,
		&l.PriceTickSize,
		&r.priceTickRange,
		&l.OrderSpread,
		&l.RandomQtyMinimum,
		&l.RandomQtyMaximum,
		&l.RandomAmtMinimum,
		&l.RandomAmtMaximum,
		&l.RandomAggressiveQtyMinimum,
		&l.RandomAggressiveQtyMaximum,
		&l.RandomAggressiveAmtMinimum,
		&l.RandomAggressiveAmtMaximum,
		&r.depthLevels,
		&l.RandomOrdersEnabled,
	}
}

func (r *listingRow) toListing() generatorv1.Listing {
	listing := r.listing
	listing.PriceTickRange = toUint32(r.priceTickRange)
	listing.RandomDepthLevels = toUint32(r.depthLevels)
	return listing
}

// toUint32 converts a nullable column, treating negative values as unset.
func toUint32(v *int32) *uint32 {
	if v == nil || *v < 0 {
		return nil
	}
	u := uint32(*v)
	return &u
}
