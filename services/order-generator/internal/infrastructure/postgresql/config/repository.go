package config

import (
	"context"
	stderrors "errors"

	"github.com/jackc/pgx/v5"
	"github.com/muhammadchandra19/orderflow/pkg/errors"
	"github.com/muhammadchandra19/orderflow/pkg/logger"
	"github.com/muhammadchandra19/orderflow/pkg/postgresql"
	configv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/config/v1"
	generatorv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/generator/v1"
)

// repository reads venue, listing and price seed configuration from PostgreSQL.
type repository struct {
	db     postgresql.PostgreSQLClient
	logger logger.Interface
}

var _ configv1.Store = (*repository)(nil)

// NewRepository creates a new repository.
func NewRepository(db postgresql.PostgreSQLClient, logger logger.Interface) *repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// Venue implements configv1.Store.
func (r *repository) Venue(ctx context.Context, venueID string) (*generatorv1.Venue, error) {
	query, args := postgresql.NewQueryBuilder().
		Select("venue_id", "random_party_count").
		From("venues").
		Where("venue_id = ?", venueID).
		Build()

	var (
		venue      generatorv1.Venue
		partyCount *int32
	)
	if err := r.db.QueryRow(ctx, query, args...).Scan(&venue.ID, &partyCount); err != nil {
		return nil, r.wrap(ctx, err, "venue", venueID)
	}
	venue.RandomPartyCount = toUint32(partyCount)

	return &venue, nil
}

// Listings implements configv1.Store.
func (r *repository) Listings(ctx context.Context, venueID string) ([]generatorv1.Listing, error) {
	query, args := postgresql.NewQueryBuilder().
		Select(listingColumns...).
		From("listings").
		Where("venue_id = ?", venueID).
		OrderBy("symbol").
		Build()

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, r.wrap(ctx, err, "listings", venueID)
	}
	defer rows.Close()

	listings := []generatorv1.Listing{}
	for rows.Next() {
		var row listingRow
		if err := rows.Scan(row.dest()...); err != nil {
			return nil, r.wrap(ctx, err, "listings", venueID)
		}
		listings = append(listings, row.toListing())
	}
	if err := rows.Err(); err != nil {
		return nil, r.wrap(ctx, err, "listings", venueID)
	}

	return listings, nil
}

// Listing implements configv1.Store.
func (r *repository) Listing(ctx context.Context, venueID, symbol string) (*generatorv1.Listing, error) {
	query, args := postgresql.NewQueryBuilder().
		Select(listingColumns...).
		From("listings").
		Where("venue_id = ?", venueID).
		Where("symbol = ?", symbol).
		Limit(1).
		Build()

	var row listingRow
	if err := r.db.QueryRow(ctx, query, args...).Scan(row.dest()...); err != nil {
		return nil, r.wrap(ctx, err, "listing", venueID+"/"+symbol)
	}
	listing := row.toListing()

	return &listing, nil
}

// PriceSeed implements configv1.Store.
func (r *repository) PriceSeed(ctx context.Context, venueID, symbol string) (*generatorv1.PriceSeed, error) {
	query, args := postgresql.NewQueryBuilder().
		Select("bid_price", "offer_price", "mid_price").
		From("price_seeds").
		Where("venue_id = ?", venueID).
		Where("symbol = ?", symbol).
		Limit(1).
		Build()

	var seed generatorv1.PriceSeed
	err := r.db.QueryRow(ctx, query, args...).Scan(&seed.BidPrice, &seed.OfferPrice, &seed.MidPrice)
	if stderrors.Is(err, pgx.ErrNoRows) {
		return &generatorv1.PriceSeed{}, nil
	}
	if err != nil {
		return nil, r.wrap(ctx, err, "price_seed", venueID+"/"+symbol)
	}

	return &seed, nil
}

func (r *repository) wrap(ctx context.Context, err error, entity, id string) error {
	if stderrors.Is(err, pgx.ErrNoRows) {
		return errors.NewErrorDetails(entity+" "+id+" not found", string(errors.ConfigNotFoundError), entity)
	}

	r.logger.ErrorContext(ctx, err,
		logger.NewField("entity", entity),
		logger.NewField("id", id),
	)
	return errors.NewTracer(errors.ConfigLoadError).Wrap(err)
}
