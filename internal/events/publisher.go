package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/config"
	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/pkg/utils"
	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes order lifecycle events keyed by order id, so all events
// of one order land in one partition.
type Publisher struct {
	logger *slog.Logger
	writer MessageWriter
	retry  utils.RetryConfig
}

func NewPublisher(logger *slog.Logger, cfg config.Kafka) *Publisher {
	return newPublisher(logger, &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.EventsTopic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           cfg.BatchTimeout,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	})
}

func newPublisher(logger *slog.Logger, writer MessageWriter) *Publisher {
	return &Publisher{
		logger: logger.With(slog.String("publisher", "order-events")),
		writer: writer,
		retry: utils.RetryConfig{
			InitialDelay: 100 * time.Millisecond,
			MaxAttempts:  5,
			Multiplier:   2,
		},
	}
}

func (p *Publisher) Publish(ctx context.Context, event entities.OrderEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	}

	err = utils.Retry(ctx, p.retry, func() error {
		return p.writer.WriteMessages(ctx, msg)
	})
	if err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	p.logger.Debug("event published", slog.String("type", event.Type), slog.String("order_id", event.OrderID))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
