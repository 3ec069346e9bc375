package configv1

import (
	"context"

	generatorv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/generator/v1"
)

// Store reads listing, venue and price seed configuration.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=configv1_mock
type Store interface {
	// Venue returns the venue config.
	Venue(ctx context.Context, venueID string) (*generatorv1.Venue, error)
	// Listings returns every listing of the venue.
	Listings(ctx context.Context, venueID string) ([]generatorv1.Listing, error)
	// Listing returns one listing.
	Listing(ctx context.Context, venueID, symbol string) (*generatorv1.Listing, error)
	// PriceSeed returns the configured fallback prices. A missing seed is an empty PriceSeed.
	PriceSeed(ctx context.Context, venueID, symbol string) (*generatorv1.PriceSeed, error)
}
