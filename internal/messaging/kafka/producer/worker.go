package producer

import (
	"context"
	"time"

	"go-ems/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const drainBatchSize = 50

// ProcessOutboxEvents polls the outbox table and relays pending rows to
// Kafka until ctx is cancelled. Failed publishes are rescheduled through
// MarkFailed and picked up again on a later tick.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer *kafkago.Writer,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("kafka.producer.worker")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Info("outbox worker started", zap.Duration("poll_interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case <-ticker.C:
			if err := drainOutbox(ctx, repo, writer, log); err != nil {
				log.Error("outbox drain failed", zap.Error(err))
			}
		}
	}
}

func drainOutbox(ctx context.Context, repo kafka.OutboxRepository, writer *kafkago.Writer, log *zap.Logger) error {
	events, err := repo.ListPending(ctx, drainBatchSize)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	log.Info("relaying outbox events", zap.Int("count", len(events)))

	for _, event := range events {
		fields := []zap.Field{
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
		}

		if err := publishEvent(ctx, writer, event); err != nil {
			log.Error("publish outbox event failed", append(fields, zap.Error(err))...)
			_ = repo.MarkFailed(ctx, event.ID, err.Error())
			continue
		}
		if err := repo.MarkSent(ctx, event.ID); err != nil {
			log.Error("mark outbox sent failed", append(fields, zap.Error(err))...)
			continue
		}

		log.Info("outbox event sent", fields...)
	}
	return nil
}
