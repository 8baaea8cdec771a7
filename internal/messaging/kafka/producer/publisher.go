package producer

import (
	"context"

	"go-ems/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

// publishEvent keys the message by aggregate id so events for one employee
// stay ordered within a partition.
func publishEvent(ctx context.Context, writer *kafkago.Writer, event kafka.OutboxEvent) error {
	return writer.WriteMessages(ctx, kafkago.Message{
		Topic: event.Topic,
		Key:   []byte(event.AggregateID),
		Value: event.Payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "aggregate_type", Value: []byte(event.AggregateType)},
		},
	})
}
