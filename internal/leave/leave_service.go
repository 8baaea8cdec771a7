package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	leaveerrors "go-ems/internal/leave/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Apply(ctx context.Context, employeeID string, req ApplyLeaveRequest) (LeaveResponse, error)
	GetMyLeaves(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	GetPending(ctx context.Context) ([]LeaveResponse, error)
	Decide(ctx context.Context, deciderID, id string, req DecideLeaveRequest) (LeaveResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Apply(ctx context.Context, employeeID string, req ApplyLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("apply leave requested",
		zap.String("employee_id", employeeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("apply leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	if endDate.Before(startDate) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	overlap, err := qtx.HasOverlappingPeriod(ctx, employeeID, startDate, endDate)
	if err != nil {
		s.logger.Error("apply leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		s.logger.Warn("apply leave overlap detected",
			zap.String("employee_id", employeeID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	// Both end points count as leave days.
	totalDays := int(endDate.Sub(startDate).Hours()/24) + 1

	l := &Leave{
		ID:         uuid.New(),
		EmployeeID: employeeUUID,
		LeaveType:  req.LeaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		TotalDays:  totalDays,
		Reason:     req.Reason,
		Status:     StatusPending,
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("apply leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("apply leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("apply leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", employeeID),
		zap.Int("total_days", totalDays),
	)

	return mapToResponse(*l), nil
}

func (s *service) GetMyLeaves(ctx context.Context, employeeID string) ([]LeaveResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, leaveerrors.ErrInvalidLeaveID
	}

	leaves, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetPending(ctx context.Context) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindPending(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) Decide(ctx context.Context, deciderID, id string, req DecideLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("decide leave requested",
		zap.String("leave_id", id),
		zap.String("decider_id", deciderID),
		zap.String("status", req.Status),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("decide leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	deciderUUID, err := uuid.Parse(deciderID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	if req.Status != StatusApproved && req.Status != StatusRejected {
		return LeaveResponse{}, leaveerrors.ErrInvalidDecision
	}

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	// Approved and Rejected are terminal.
	if l.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrAlreadyDecided
	}

	now := time.Now().UTC()
	l.Status = req.Status
	l.DecidedBy = &deciderUUID
	l.DecidedAt = &now
	if req.Status == StatusRejected {
		l.RejectionReason = req.RejectionReason
	}

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("decide leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("decide leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("decide leave success",
		zap.String("leave_id", id),
		zap.String("status", l.Status),
		zap.String("decided_by", deciderID),
	)

	return mapToResponse(*l), nil
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:              l.ID.String(),
		EmployeeID:      l.EmployeeID.String(),
		LeaveType:       l.LeaveType,
		StartDate:       l.StartDate.Format("2006-01-02"),
		EndDate:         l.EndDate.Format("2006-01-02"),
		TotalDays:       l.TotalDays,
		Reason:          l.Reason,
		Status:          l.Status,
		RejectionReason: l.RejectionReason,
	}
	if l.DecidedBy != nil {
		decidedBy := l.DecidedBy.String()
		resp.DecidedBy = &decidedBy
	}
	if l.DecidedAt != nil {
		decidedAt := l.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &decidedAt
	}
	if l.Employee != nil {
		resp.EmployeeName = l.Employee.FullName
	}
	return resp
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	res := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		res[i] = mapToResponse(l)
	}
	return res
}
