package tracer

import (
	"context"

	"github.com/muhammadchandra19/orderflow/pkg/logger"
	tracerv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/tracer/v1"
)

// LogTracer writes every step at debug level.
type LogTracer struct {
	logger logger.Interface
}

var _ tracerv1.Tracer = (*LogTracer)(nil)

// NewLogTracer creates a LogTracer.
func NewLogTracer(logger logger.Interface) *LogTracer {
	return &LogTracer{logger: logger}
}

// Step implements tracerv1.Tracer.
func (t *LogTracer) Step(ctx context.Context, step string, values ...tracerv1.Value) {
	fields := make([]logger.Field, 0, len(values)+1)
	fields = append(fields, logger.Field{Key: "step", Value: step})
	for _, v := range values {
		fields = append(fields, logger.Field{Key: v.Name, Value: v.Value})
	}
	t.logger.DebugContext(ctx, "generation step", fields...)
}

// Note implements tracerv1.Tracer.
func (t *LogTracer) Note(ctx context.Context, step, message string) {
	t.logger.DebugContext(ctx, message, logger.Field{Key: "step", Value: step})
}
