package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-ems/internal/messaging/kafka"
	"go-ems/internal/messaging/kafka/producer"
	"go-ems/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker ships pending outbox rows to Kafka until interrupted.
func RunWorker() error {
	logger := zap.L().Named("app.worker")

	_, sqlDB, err := connectDatabase()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	broker, err := kafkaBrokerFromEnv()
	if err != nil {
		return err
	}
	writer, err := connection.ConnectKafkaWithRetry(broker, connectRetries)
	if err != nil {
		return err
	}
	defer writer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(ctx, kafka.NewOutboxRepository(sqlDB), writer, logger, 3*time.Second)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()
	return nil
}
