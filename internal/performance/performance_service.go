package performance

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"strings"

	performanceerrors "go-ems/internal/performance/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusGoalSetting   = "GoalSetting"
	StatusSelfReview    = "SelfReview"
	StatusManagerReview = "ManagerReview"
	StatusCompleted     = "Completed"
)

// nextStatus holds the single allowed transition per state.
var nextStatus = map[string]string{
	StatusGoalSetting:   StatusSelfReview,
	StatusSelfReview:    StatusManagerReview,
	StatusManagerReview: StatusCompleted,
}

//go:generate mockgen -source=performance_service.go -destination=mock/performance_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, employeeID string, req CreateAppraisalRequest) (AppraisalResponse, error)
	GetMyAppraisals(ctx context.Context, employeeID string) ([]AppraisalResponse, error)
	GetPendingReviews(ctx context.Context, reviewerID string) ([]AppraisalResponse, error)
	Update(ctx context.Context, actorID, id string, req UpdateAppraisalRequest) (AppraisalResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("performance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("performance.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, employeeID string, req CreateAppraisalRequest) (AppraisalResponse, error) {
	s.logger.Debug("create appraisal requested",
		zap.String("employee_id", employeeID),
		zap.String("cycle", req.Cycle),
		zap.Int("kpi_count", len(req.KPIs)),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create appraisal begin tx failed", zap.Error(err))
		return AppraisalResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return AppraisalResponse{}, performanceerrors.ErrInvalidAppraisalID
	}

	for _, goal := range req.KPIs {
		if strings.TrimSpace(goal.Title) == "" {
			return AppraisalResponse{}, performanceerrors.ErrInvalidGoal
		}
	}

	var reviewerID *uuid.UUID
	if req.ReviewerID != "" {
		id := uuid.MustParse(req.ReviewerID)
		reviewerID = &id
	} else {
		reviewerID, err = qtx.GetReportingManager(ctx, employeeID)
		if err != nil {
			s.logger.Error("create appraisal reviewer lookup failed", zap.Error(err))
			return AppraisalResponse{}, err
		}
	}

	appraisal := &Appraisal{
		ID:         uuid.New(),
		EmployeeID: employeeUUID,
		ReviewerID: reviewerID,
		Cycle:      strings.TrimSpace(req.Cycle),
		Status:     StatusGoalSetting,
	}
	for i, goal := range req.KPIs {
		appraisal.KPIs = append(appraisal.KPIs, KPI{
			ID:          uuid.New(),
			AppraisalID: appraisal.ID,
			Position:    i,
			Title:       strings.TrimSpace(goal.Title),
			Description: goal.Description,
		})
	}

	if err := qtx.Create(ctx, appraisal); err != nil {
		s.logger.Error("create appraisal persist failed", zap.Error(err))
		return AppraisalResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create appraisal commit failed", zap.Error(err))
		return AppraisalResponse{}, err
	}

	s.logger.Info("create appraisal success",
		zap.String("appraisal_id", appraisal.ID.String()),
		zap.String("employee_id", employeeID),
	)

	return mapToResponse(*appraisal), nil
}

func (s *service) GetMyAppraisals(ctx context.Context, employeeID string) ([]AppraisalResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, performanceerrors.ErrInvalidAppraisalID
	}

	rows, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetPendingReviews(ctx context.Context, reviewerID string) ([]AppraisalResponse, error) {
	if _, err := uuid.Parse(reviewerID); err != nil {
		return nil, performanceerrors.ErrInvalidAppraisalID
	}

	rows, err := s.repo.FindPendingByReviewer(ctx, reviewerID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) Update(ctx context.Context, actorID, id string, req UpdateAppraisalRequest) (AppraisalResponse, error) {
	s.logger.Debug("update appraisal requested",
		zap.String("appraisal_id", id),
		zap.String("actor_id", actorID),
		zap.String("target_status", req.Status),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update appraisal begin tx failed", zap.Error(err))
		return AppraisalResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := uuid.Parse(id); err != nil {
		return AppraisalResponse{}, performanceerrors.ErrInvalidAppraisalID
	}

	appraisal, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AppraisalResponse{}, performanceerrors.ErrAppraisalNotFound
		}
		return AppraisalResponse{}, err
	}

	if err := requirePhaseActor(appraisal, actorID); err != nil {
		s.logger.Warn("update appraisal wrong actor",
			zap.String("appraisal_id", id),
			zap.String("actor_id", actorID),
			zap.String("status", appraisal.Status),
		)
		return AppraisalResponse{}, err
	}

	if err := s.applyKPIUpdates(ctx, qtx, appraisal, req.KPIs); err != nil {
		return AppraisalResponse{}, err
	}

	if req.Status != "" && req.Status != appraisal.Status {
		if nextStatus[appraisal.Status] != req.Status {
			s.logger.Warn("update appraisal invalid transition",
				zap.String("appraisal_id", id),
				zap.String("from", appraisal.Status),
				zap.String("to", req.Status),
			)
			return AppraisalResponse{}, performanceerrors.ErrInvalidTransition
		}

		if req.Status == StatusCompleted {
			final, err := finalRating(appraisal.KPIs)
			if err != nil {
				return AppraisalResponse{}, err
			}
			appraisal.FinalRating = &final
		}
		appraisal.Status = req.Status
	}

	if err := qtx.Update(ctx, appraisal); err != nil {
		s.logger.Error("update appraisal persist failed", zap.Error(err))
		return AppraisalResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update appraisal commit failed", zap.Error(err))
		return AppraisalResponse{}, err
	}

	s.logger.Info("update appraisal success",
		zap.String("appraisal_id", id),
		zap.String("status", appraisal.Status),
	)

	return mapToResponse(*appraisal), nil
}

// requirePhaseActor ties each phase to the one party allowed to act in it:
// the appraised employee owns GoalSetting and SelfReview, the assigned
// reviewer owns ManagerReview and with it the move to Completed.
func requirePhaseActor(appraisal *Appraisal, actorID string) error {
	switch appraisal.Status {
	case StatusGoalSetting, StatusSelfReview:
		if appraisal.EmployeeID.String() != actorID {
			return performanceerrors.ErrNotAppraisalOwner
		}
	case StatusManagerReview:
		if appraisal.ReviewerID == nil || appraisal.ReviewerID.String() != actorID {
			return performanceerrors.ErrNotReviewer
		}
	}
	return nil
}

// applyKPIUpdates writes the side of each KPI that the current phase allows
// and leaves the other side untouched.
func (s *service) applyKPIUpdates(ctx context.Context, qtx Repository, appraisal *Appraisal, updates []KPIUpdateRequest) error {
	if len(updates) == 0 {
		return nil
	}

	byID := make(map[string]*KPI, len(appraisal.KPIs))
	for i := range appraisal.KPIs {
		byID[appraisal.KPIs[i].ID.String()] = &appraisal.KPIs[i]
	}

	for _, upd := range updates {
		kpi, ok := byID[upd.ID]
		if !ok {
			return performanceerrors.ErrAppraisalNotFound
		}

		switch appraisal.Status {
		case StatusSelfReview:
			if upd.SelfRating != nil {
				kpi.SelfRating = upd.SelfRating
			}
			if upd.SelfComment != nil {
				kpi.SelfComment = upd.SelfComment
			}
		case StatusManagerReview:
			if upd.ManagerRating != nil {
				kpi.ManagerRating = upd.ManagerRating
			}
			if upd.ManagerComment != nil {
				kpi.ManagerComment = upd.ManagerComment
			}
		default:
			continue
		}

		if err := qtx.UpdateKPI(ctx, kpi); err != nil {
			s.logger.Error("update kpi persist failed",
				zap.String("kpi_id", upd.ID),
				zap.Error(err),
			)
			return err
		}
	}

	return nil
}

// finalRating averages the manager ratings to one decimal.
func finalRating(kpis []KPI) (float64, error) {
	if len(kpis) == 0 {
		return 0, performanceerrors.ErrMissingManagerRatings
	}

	var sum int
	for _, k := range kpis {
		if k.ManagerRating == nil {
			return 0, performanceerrors.ErrMissingManagerRatings
		}
		sum += *k.ManagerRating
	}

	mean := float64(sum) / float64(len(kpis))
	return math.Round(mean*10) / 10, nil
}

func mapToResponse(a Appraisal) AppraisalResponse {
	resp := AppraisalResponse{
		ID:          a.ID.String(),
		EmployeeID:  a.EmployeeID.String(),
		Cycle:       a.Cycle,
		Status:      a.Status,
		FinalRating: a.FinalRating,
		KPIs:        make([]KPIResponse, len(a.KPIs)),
	}
	if a.ReviewerID != nil {
		resp.ReviewerID = a.ReviewerID.String()
	}
	if a.Employee != nil {
		resp.EmployeeName = a.Employee.FullName
	}
	if a.Reviewer != nil {
		resp.ReviewerName = a.Reviewer.FullName
	}
	for i, k := range a.KPIs {
		resp.KPIs[i] = KPIResponse{
			ID:             k.ID.String(),
			Title:          k.Title,
			Description:    k.Description,
			SelfRating:     k.SelfRating,
			SelfComment:    k.SelfComment,
			ManagerRating:  k.ManagerRating,
			ManagerComment: k.ManagerComment,
		}
	}
	return resp
}

func mapToListResponse(rows []Appraisal) []AppraisalResponse {
	res := make([]AppraisalResponse, len(rows))
	for i, a := range rows {
		res[i] = mapToResponse(a)
	}
	return res
}
