package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/weather-widget/internal/domain"
	"github.com/couchcryptid/weather-widget/internal/observability"
	kafkago "github.com/segmentio/kafka-go"
)

// messageWriter is the subset of *kafkago.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Writer publishes lookup events to a Kafka topic.
// It implements lookup.EventPublisher.
type Writer struct {
	writer  messageWriter
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewWriter creates an asynchronous Kafka producer for the lookup events topic.
// Publish returns once the event is queued; delivery results are counted and
// logged from the producer's completion callback and never block a lookup.
func NewWriter(brokers []string, topic string, metrics *observability.Metrics, logger *slog.Logger) *Writer {
	w := &Writer{metrics: metrics, logger: logger}
	w.writer = &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
		Async:        true,
		Completion:   w.complete,
	}
	return w
}

// complete records the delivery result of one producer batch.
func (w *Writer) complete(msgs []kafkago.Message, err error) {
	if err != nil {
		w.metrics.EventsDelivered.WithLabelValues("error").Add(float64(len(msgs)))
		w.logger.Warn("lookup event delivery failed", "messages", len(msgs), "error", err)
		return
	}
	w.metrics.EventsDelivered.WithLabelValues("ok").Add(float64(len(msgs)))
}

// Publish serializes one lookup event and hands it to the producer.
func (w *Writer) Publish(ctx context.Context, event domain.LookupEvent) error {
	msg, err := serializeToMessage(event)
	if err != nil {
		return err
	}
	return w.writer.WriteMessages(ctx, msg)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a LookupEvent into a Kafka message keyed by lookup ID.
func serializeToMessage(event domain.LookupEvent) (kafkago.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize lookup event: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(event.ID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "outcome", Value: []byte(event.Outcome)},
			{Key: "completed_at", Value: []byte(event.CompletedAt.Format(time.RFC3339))},
		},
	}, nil
}
