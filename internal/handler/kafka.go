package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/config"
	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type PaymentProcessor interface {
	HandleNotification(ctx context.Context, n entities.PaymentNotification) error
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaHandler struct {
	dlq       MessageWriter
	reader    MessageReader
	logger    *slog.Logger
	validate  *validator.Validate
	processor PaymentProcessor
}

// NewKafkaHandler consumes MoMo payment notifications from the payments
// topic. Messages that cannot be applied go to <topic>-dlq.
func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, processor PaymentProcessor) *kafkaHandler {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.PaymentsTopic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           cfg.BatchTimeout,
		AllowAutoTopicCreation: true,
	}
	return newKafkaHandler(logger, reader, dlq, processor)
}

func newKafkaHandler(logger *slog.Logger, reader MessageReader, dlq MessageWriter, processor PaymentProcessor) *kafkaHandler {
	return &kafkaHandler{
		logger:    logger.With(slog.String("handler", "kafka")),
		reader:    reader,
		dlq:       dlq,
		validate:  validator.New(),
		processor: processor,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		h.process(ctx, m)
	}
}

func (h *kafkaHandler) process(ctx context.Context, m kafka.Message) {
	paymentsInProgress.Inc()
	defer paymentsInProgress.Dec()
	start := time.Now()

	if err := h.handlePayment(ctx, m); err != nil {
		paymentsFailed.WithLabelValues(string(entities.CodeOf(err))).Inc()
		h.logger.Error("failed to handle payment notification",
			slog.Any("error", err),
			slog.Int64("offset", m.Offset),
		)

		if err := h.WriteToDLQ(ctx, m); err != nil {
			h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
			return
		}
		paymentsDLQ.Inc()
	} else {
		paymentsProcessed.Inc()
	}
	paymentProcessingDuration.Observe(time.Since(start).Seconds())

	if err := h.reader.CommitMessages(ctx, m); err != nil {
		commitErrors.Inc()
		h.logger.Error("failed to commit message", slog.Any("error", err))
	}
}

func (h *kafkaHandler) handlePayment(ctx context.Context, m kafka.Message) error {
	var n entities.PaymentNotification
	if err := json.Unmarshal(m.Value, &n); err != nil {
		return fmt.Errorf("failed to unmarshal notification: %w", err)
	}

	if err := h.validate.Struct(n); err != nil {
		return fmt.Errorf("invalid notification: %w", err)
	}

	return h.processor.HandleNotification(ctx, n)
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	dead := kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	}
	return h.dlq.WriteMessages(ctx, dead)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
