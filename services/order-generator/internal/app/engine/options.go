package engine

import "time"

// Options represents configuration options for the Engine.
type Options struct {
	TickInterval time.Duration
	// Instruments limits generation to these symbols. Empty runs every listing of the venue.
	Instruments []string
}

// DefaultEngineOptions returns the default engine options.
func DefaultEngineOptions() *Options {
	return &Options{
		TickInterval: 500 * time.Millisecond,
	}
}
