package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go-ems/internal/events"
	"go-ems/internal/messaging/kafka"
	payrollerrors "go-ems/internal/payroll/errors"
	"go-ems/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PayslipDir is where rendered payslip PDFs land on disk.
const PayslipDir = "storage/payslips"

// statusRank orders the payslip lifecycle. Transitions may only move to a
// strictly higher rank.
var statusRank = map[string]int{
	StatusDraft:     0,
	StatusPublished: 1,
	StatusPaid:      2,
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	SaveStructure(ctx context.Context, req SaveStructureRequest) (StructureResponse, error)
	GetStructure(ctx context.Context, employeeID string) (StructureResponse, error)
	Generate(ctx context.Context, actorID string, req GeneratePayslipRequest) (PayslipResponse, error)
	GetMyPayslips(ctx context.Context, employeeID string) ([]PayslipResponse, error)
	GetAll(ctx context.Context, month, year int) ([]PayslipResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdatePayslipStatusRequest) (PayslipResponse, error)
	GetPayslipPDF(ctx context.Context, id string) ([]byte, string, error)
	RenderPayslipPDF(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) SaveStructure(ctx context.Context, req SaveStructureRequest) (StructureResponse, error) {
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return StructureResponse{}, payrollerrors.ErrInvalidEmployeeID
	}

	structure := &SalaryStructure{
		ID:               uuid.New(),
		EmployeeID:       employeeUUID,
		Basic:            req.Basic,
		HRA:              req.HRA,
		DA:               req.DA,
		SpecialAllowance: req.SpecialAllowance,
		PF:               req.PF,
		Tax:              req.Tax,
	}

	if err := s.repo.SaveStructure(ctx, structure); err != nil {
		s.logger.Error("save salary structure failed",
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return StructureResponse{}, mapPayrollError(err)
	}

	return mapStructureToResponse(*structure), nil
}

func (s *service) GetStructure(ctx context.Context, employeeID string) (StructureResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return StructureResponse{}, payrollerrors.ErrInvalidEmployeeID
	}

	structure, err := s.repo.FindStructureByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StructureResponse{}, payrollerrors.ErrStructureNotFound
		}
		return StructureResponse{}, err
	}

	return mapStructureToResponse(*structure), nil
}

func (s *service) Generate(ctx context.Context, actorID string, req GeneratePayslipRequest) (PayslipResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return PayslipResponse{}, payrollerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayslipResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	structure, err := qtx.FindStructureByEmployee(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayslipResponse{}, payrollerrors.ErrStructureNotFound
		}
		return PayslipResponse{}, err
	}

	gross := structure.Gross()
	totalEarnings := round2(gross - req.LossOfPay)
	totalDeductions := round2(structure.PF + structure.Tax)
	netPay := round2(totalEarnings - totalDeductions)

	payslip := &Payslip{
		ID:               uuid.New(),
		EmployeeID:       employeeUUID,
		Month:            req.Month,
		Year:             req.Year,
		Basic:            structure.Basic,
		HRA:              structure.HRA,
		DA:               structure.DA,
		SpecialAllowance: structure.SpecialAllowance,
		PF:               structure.PF,
		Tax:              structure.Tax,
		LossOfPay:        req.LossOfPay,
		TotalEarnings:    totalEarnings,
		TotalDeductions:  totalDeductions,
		NetPay:           netPay,
		Status:           StatusDraft,
	}

	if err := qtx.CreatePayslip(ctx, payslip); err != nil {
		s.logger.Error("create payslip failed",
			zap.String("request_id", rid),
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return PayslipResponse{}, mapPayrollError(err)
	}

	if s.outbox != nil {
		event := events.PayslipGeneratedEvent{
			EventType:   "payslip_generated",
			PayslipID:   payslip.ID.String(),
			EmployeeID:  payslip.EmployeeID.String(),
			RequestedBy: actorID,
			OccurredAt:  time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return PayslipResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "payslip",
			AggregateID:   payslip.ID.String(),
			EventType:     event.EventType,
			Topic:         events.PayslipGeneratedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("payslip outbox persist failed",
				zap.String("payslip_id", payslip.ID.String()),
				zap.Error(err),
			)
			return PayslipResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return PayslipResponse{}, err
	}

	s.logger.Info("payslip generated",
		zap.String("request_id", rid),
		zap.String("payslip_id", payslip.ID.String()),
		zap.Int("month", payslip.Month),
		zap.Int("year", payslip.Year),
	)

	return mapPayslipToResponse(*payslip), nil
}

func (s *service) GetMyPayslips(ctx context.Context, employeeID string) ([]PayslipResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, payrollerrors.ErrInvalidEmployeeID
	}

	slips, err := s.repo.FindPayslipsByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return mapPayslipsToResponse(slips), nil
}

func (s *service) GetAll(ctx context.Context, month, year int) ([]PayslipResponse, error) {
	slips, err := s.repo.FindAllPayslips(ctx, month, year)
	if err != nil {
		return nil, err
	}

	return mapPayslipsToResponse(slips), nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdatePayslipStatusRequest) (PayslipResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PayslipResponse{}, payrollerrors.ErrInvalidPayslipID
	}

	payslip, err := s.repo.FindPayslipByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayslipResponse{}, payrollerrors.ErrPayslipNotFound
		}
		return PayslipResponse{}, err
	}

	from, ok := statusRank[payslip.Status]
	to, okTarget := statusRank[req.Status]
	if !okTarget {
		return PayslipResponse{}, payrollerrors.ErrInvalidStatus
	}
	if !ok || to <= from {
		return PayslipResponse{}, payrollerrors.ErrInvalidStatusTransition
	}

	payslip.Status = req.Status
	if err := s.repo.UpdatePayslip(ctx, payslip); err != nil {
		return PayslipResponse{}, mapPayrollError(err)
	}

	s.logger.Info("payslip status updated",
		zap.String("payslip_id", id),
		zap.String("status", req.Status),
	)

	return mapPayslipToResponse(*payslip), nil
}

func (s *service) GetPayslipPDF(ctx context.Context, id string) ([]byte, string, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, "", payrollerrors.ErrInvalidPayslipID
	}

	payslip, err := s.repo.FindPayslipByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", payrollerrors.ErrPayslipNotFound
		}
		return nil, "", err
	}

	if payslip.PayslipURL == nil {
		return nil, "", payrollerrors.ErrPayslipNotRendered
	}

	data, err := os.ReadFile(*payslip.PayslipURL)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", payrollerrors.ErrPayslipNotRendered
		}
		return nil, "", err
	}

	name := fmt.Sprintf("payslip-%04d-%02d.pdf", payslip.Year, payslip.Month)
	return data, name, nil
}

// RenderPayslipPDF builds the PDF for a generated payslip and records its
// location. Called by the Kafka consumer, not by HTTP handlers.
func (s *service) RenderPayslipPDF(ctx context.Context, id string) error {
	payslip, err := s.repo.FindPayslipByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return payrollerrors.ErrPayslipNotFound
		}
		return err
	}

	data, err := buildPayslipPDF(payslip)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(PayslipDir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(PayslipDir, payslip.ID.String()+".pdf")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	now := time.Now().UTC()
	payslip.PayslipURL = &path
	payslip.PayslipGeneratedAt = &now
	if err := s.repo.UpdatePayslip(ctx, payslip); err != nil {
		return err
	}

	s.logger.Info("payslip pdf rendered",
		zap.String("payslip_id", id),
		zap.String("path", path),
	)
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func mapPayrollError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrPayslipNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return payrollerrors.ErrPayslipExists
	}
	if strings.Contains(err.Error(), "duplicate key value") {
		return payrollerrors.ErrPayslipExists
	}

	return err
}

func mapStructureToResponse(s SalaryStructure) StructureResponse {
	return StructureResponse{
		ID:               s.ID.String(),
		EmployeeID:       s.EmployeeID.String(),
		Basic:            s.Basic,
		HRA:              s.HRA,
		DA:               s.DA,
		SpecialAllowance: s.SpecialAllowance,
		PF:               s.PF,
		Tax:              s.Tax,
		Gross:            s.Gross(),
		Net:              s.Net(),
	}
}

func mapPayslipToResponse(p Payslip) PayslipResponse {
	resp := PayslipResponse{
		ID:               p.ID.String(),
		EmployeeID:       p.EmployeeID.String(),
		Month:            p.Month,
		Year:             p.Year,
		Basic:            p.Basic,
		HRA:              p.HRA,
		DA:               p.DA,
		SpecialAllowance: p.SpecialAllowance,
		PF:               p.PF,
		Tax:              p.Tax,
		LossOfPay:        p.LossOfPay,
		TotalEarnings:    p.TotalEarnings,
		TotalDeductions:  p.TotalDeductions,
		NetPay:           p.NetPay,
		Status:           p.Status,
		PayslipURL:       p.PayslipURL,
	}
	if p.Employee != nil {
		resp.EmployeeName = p.Employee.FullName
	}
	return resp
}

func mapPayslipsToResponse(slips []Payslip) []PayslipResponse {
	out := make([]PayslipResponse, 0, len(slips))
	for _, p := range slips {
		out = append(out, mapPayslipToResponse(p))
	}
	return out
}
