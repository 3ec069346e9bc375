package sampler

import (
	"github.com/muhammadchandra19/orderflow/pkg/random"
	generatorv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/generator/v1"
)

const (
	eventDrawMax  = 29
	actionDrawMax = 19
)

// EventSampler maps a draw from [0, 29] to an event.
type EventSampler struct {
	src random.IntSource
}

var _ generatorv1.EventSampler = (*EventSampler)(nil)

// NewEventSampler creates an EventSampler.
func NewEventSampler(src random.IntSource) *EventSampler {
	return &EventSampler{src: src}
}

// SampleEvent implements generatorv1.EventSampler.
func (s *EventSampler) SampleEvent() generatorv1.Event {
	return EventFromDraw(s.src.Int32(0, eventDrawMax))
}

// EventFromDraw maps a draw to an event. Values outside [0, 29] map to NoOperation.
func EventFromDraw(draw int32) generatorv1.Event {
	switch {
	case draw < 0:
		return generatorv1.EventNoOperation
	case draw <= 7:
		return generatorv1.EventRestingBuy
	case draw <= 15:
		return generatorv1.EventRestingSell
	case draw <= 17:
		return generatorv1.EventAggressiveSell
	case draw <= 19:
		return generatorv1.EventAggressiveBuy
	default:
		return generatorv1.EventNoOperation
	}
}

// ActionSampler maps a draw from [0, 19] to a resting order action.
type ActionSampler struct {
	src random.IntSource
}

var _ generatorv1.ActionSampler = (*ActionSampler)(nil)

// NewActionSampler creates an ActionSampler.
func NewActionSampler(src random.IntSource) *ActionSampler {
	return &ActionSampler{src: src}
}

// SampleAction implements generatorv1.ActionSampler.
func (s *ActionSampler) SampleAction() generatorv1.RestingOrderAction {
	return ActionFromDraw(s.src.Int32(0, actionDrawMax))
}

// ActionFromDraw maps a draw to an action. The cancellation bucket is open ended.
func ActionFromDraw(draw int32) generatorv1.RestingOrderAction {
	switch {
	case draw <= 8:
		return generatorv1.ActionQuantityModification
	case draw <= 17:
		return generatorv1.ActionPriceModification
	default:
		return generatorv1.ActionCancellation
	}
}
