package util

import (
	"context"

	"github.com/google/uuid"
)

type key string

const (
	cycleIDKey    = key("cycle-id")
	instrumentKey = key("instrument")
	venueIDKey    = key("venue-id")
)

// FieldsFromContext exposes the values this package stores in a context.
type FieldsFromContext struct{}

// Fields returns a map of the key-value pairs that this library has set into `context`.
func (f *FieldsFromContext) Fields(ctx context.Context) map[string]interface{} {
	mapFields := make(map[string]interface{})
	mapFields["cycle_id"] = GetCycleID(ctx)
	mapFields["instrument"] = GetInstrument(ctx)
	mapFields["venue_id"] = GetVenueID(ctx)

	return mapFields
}

// WithCycleID returns a context carrying the id of one generation cycle.
// A new uuid is generated when id is empty.
func WithCycleID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = uuid.NewString()
	}
	return context.WithValue(ctx, cycleIDKey, id)
}

// WithInstrument returns a context with the instrument symbol
func WithInstrument(ctx context.Context, symbol string) context.Context {
	return context.WithValue(ctx, instrumentKey, symbol)
}

// WithVenueID returns a context with the venue id
func WithVenueID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, venueIDKey, id)
}

// GetCycleID returns the generation cycle id from context
// will return empty string if not present
func GetCycleID(ctx context.Context) string {
	id, _ := ctx.Value(cycleIDKey).(string)
	return id
}

// GetInstrument returns the instrument symbol from context
func GetInstrument(ctx context.Context) string {
	symbol, _ := ctx.Value(instrumentKey).(string)
	return symbol
}

// GetVenueID returns the venue id from context
func GetVenueID(ctx context.Context) string {
	id, _ := ctx.Value(venueIDKey).(string)
	return id
}
