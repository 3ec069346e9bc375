package tracerv1

import "context"

// Value is one named input or output of a step.
type Value struct {
	Name  string
	Value any
}

// V is shorthand for building a Value.
func V(name string, value any) Value {
	return Value{Name: name, Value: value}
}

// Tracer receives the steps of a generation cycle.
type Tracer interface {
	// Step records a named step with its inputs and outputs.
	Step(ctx context.Context, step string, values ...Value)
	// Note records free text attached to a step.
	Note(ctx context.Context, step, message string)
}

// Nop discards everything.
type Nop struct{}

var _ Tracer = Nop{}

// Step implements Tracer.
func (Nop) Step(context.Context, string, ...Value) {}

// Note implements Tracer.
func (Nop) Note(context.Context, string, string) {}
