package sampler

import (
	generatorv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/generator/v1"
)

// MaxDepth returns the depth cap for new resting orders: random depth levels clamped to the
// venue's configured party count. It returns false when random depth levels are not set.
func MaxDepth(listing generatorv1.Listing, venue generatorv1.Venue) (uint64, bool) {
	if listing.RandomDepthLevels == nil {
		return 0, false
	}

	limit := uint64(*listing.RandomDepthLevels)
	if venue.RandomPartyCount != nil && uint64(*venue.RandomPartyCount) < limit {
		limit = uint64(*venue.RandomPartyCount)
	}
	return limit, true
}

// AdmitNewOrder reports whether a new resting order may join a side holding currentDepth
// levels.
func AdmitNewOrder(maxDepth uint64, capped bool, currentDepth uint64) bool {
	return !capped || currentDepth < maxDepth
}
