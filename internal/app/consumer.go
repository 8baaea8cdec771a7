package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-ems/internal/events"
	"go-ems/internal/messaging/kafka/consumer"
	"go-ems/internal/payroll"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func newGroupReader(broker, topic, groupID string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{broker},
		Topic:          topic,
		GroupID:        groupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
}

// RunConsumer drives both event consumers: employee lifecycle seeds salary
// structures, payslip_generated renders PDFs.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, sqlDB, err := connectDatabase()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	broker, err := kafkaBrokerFromEnv()
	if err != nil {
		return err
	}

	payrollService := payroll.NewService(sqlDB, payroll.NewRepository(gormDB))

	lifecycleReader := newGroupReader(broker, events.EmployeeCreatedTopic, "go-ems-salary-structure")
	defer lifecycleReader.Close()

	payslipReader := newGroupReader(broker, events.PayslipGeneratedTopic, "go-ems-payslip-pdf")
	defer payslipReader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeEmployeeLifecycle(ctx, lifecycleReader, payrollService, logger)
	go consumer.ConsumePayslipGenerated(ctx, payslipReader, payrollService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()
	return nil
}
