package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"go-ems/internal/events"
	"go-ems/internal/payroll"
	payrollerrors "go-ems/internal/payroll/errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeEmployeeLifecycle seeds a zero salary structure for every new
// employee so payroll generation has something to read. Redeliveries are
// skipped once a structure exists.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	payrollService payroll.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		_, err = payrollService.GetStructure(ctx, event.EmployeeID)
		switch {
		case err == nil:
			log.Warn("salary structure already exists for event, skipping",
				zap.String("employee_id", event.EmployeeID),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		case errors.Is(err, payrollerrors.ErrStructureNotFound):
			// fall through and seed
		default:
			log.Error("lookup salary structure failed",
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			continue
		}

		if _, err := payrollService.SaveStructure(ctx, payroll.SaveStructureRequest{
			EmployeeID: event.EmployeeID,
		}); err != nil {
			log.Error("seed salary structure failed",
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("salary structure seeded from employee_created event",
			zap.String("employee_id", event.EmployeeID),
			zap.String("request_id", event.RequestID),
		)
	}
}
