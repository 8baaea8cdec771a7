package consumer

import (
	"context"
	"encoding/json"

	"go-ems/internal/events"
	"go-ems/internal/payroll"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumePayslipGenerated renders the PDF for each freshly generated
// payslip and records where it landed.
func ConsumePayslipGenerated(
	ctx context.Context,
	reader *kafkago.Reader,
	payrollService payroll.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payslip_generated")
	log.Info("payslip generated consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payslip generated consumer stopped")
				return
			}
			log.Error("fetch payslip generated message failed", zap.Error(err))
			continue
		}

		var event events.PayslipGeneratedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payslip_generated event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := payrollService.RenderPayslipPDF(ctx, event.PayslipID); err != nil {
			log.Error("render payslip pdf failed",
				zap.String("payslip_id", event.PayslipID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payslip generated message failed", zap.Error(err))
			continue
		}

		log.Info("payslip pdf rendered",
			zap.String("payslip_id", event.PayslipID),
			zap.String("employee_id", event.EmployeeID),
		)
	}
}
