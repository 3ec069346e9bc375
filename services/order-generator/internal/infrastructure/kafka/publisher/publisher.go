package publisher

import (
	"context"
	"time"

	"github.com/muhammadchandra19/orderflow/pkg/errors"
	"github.com/muhammadchandra19/orderflow/pkg/logger"
	generatorv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/generator/v1"
	publisherv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/publisher/v1"
	"github.com/muhammadchandra19/orderflow/services/order-generator/pkg/config"
	"github.com/segmentio/kafka-go"
)

// writer is the part of kafka.Writer the publisher uses.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes generated messages to the orders topic, keyed by symbol so that each
// instrument keeps its order on one partition.
type Publisher struct {
	kafkaWriter writer
	logger      logger.Interface
	now         func() time.Time
}

var _ publisherv1.Publisher = (*Publisher)(nil)

// NewPublisher creates a new Kafka publisher for generated messages.
func NewPublisher(config config.KafkaConfig, logger logger.Interface) *Publisher {
	kafkaWriter := &kafka.Writer{
		Addr:         kafka.TCP(config.Brokers...),
		Topic:        config.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: config.BatchTimeout,
		RequiredAcks: kafka.RequireOne,
	}

	return newPublisher(kafkaWriter, logger, time.Now)
}

func newPublisher(kafkaWriter writer, logger logger.Interface, now func() time.Time) *Publisher {
	return &Publisher{
		kafkaWriter: kafkaWriter,
		logger:      logger,
		now:         now,
	}
}

// Publish implements publisherv1.Publisher.
func (p *Publisher) Publish(ctx context.Context, msg *generatorv1.Message) error {
	value, err := publisherv1.ToBytes(publisherv1.CreateFromMessage(msg, p.now()))
	if err != nil {
		return errors.NewTracer(errors.EncodeError).Wrap(err)
	}

	if err := p.kafkaWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.Symbol),
		Value: value,
	}); err != nil {
		p.logger.ErrorContext(ctx, err,
			logger.Field{Key: "action", Value: "publish_message"},
			logger.Field{Key: "clOrdID", Value: msg.ClOrdID},
		)
		return errors.NewTracer(errors.PublishError).Wrap(err)
	}

	return nil
}

// Close flushes pending writes and closes the writer.
func (p *Publisher) Close() error {
	return p.kafkaWriter.Close()
}
