package sampler

import (
	"strconv"

	"github.com/muhammadchandra19/orderflow/pkg/random"
	generatorv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/generator/v1"
)

const (
	// DefaultPartyCount is used when the venue has no party count.
	DefaultPartyCount uint32 = 5
	// PartyPrefix prefixes every generated party id.
	PartyPrefix = "CP"
)

// CounterpartySampler draws a party id from the venue's party pool.
type CounterpartySampler struct {
	src random.IntSource
}

var _ generatorv1.CounterpartySampler = (*CounterpartySampler)(nil)

// NewCounterpartySampler creates a CounterpartySampler.
func NewCounterpartySampler(src random.IntSource) *CounterpartySampler {
	return &CounterpartySampler{src: src}
}

// SampleCounterparty implements generatorv1.CounterpartySampler.
func (s *CounterpartySampler) SampleCounterparty(venue generatorv1.Venue) string {
	n := s.src.Uint64(0, uint64(PartyCount(venue))-1)
	return PartyPrefix + strconv.FormatUint(n, 10)
}

// PartyCount returns the venue's party count, or DefaultPartyCount when unset or zero.
func PartyCount(venue generatorv1.Venue) uint32 {
	if venue.RandomPartyCount == nil || *venue.RandomPartyCount == 0 {
		return DefaultPartyCount
	}
	return *venue.RandomPartyCount
}
