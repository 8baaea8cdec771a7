package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	employeeerrors "go-ems/internal/employee/errors"
	"go-ems/internal/events"
	"go-ems/internal/messaging/kafka"
	"go-ems/internal/shared/contextutil"
	"go-ems/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const OptionsCacheKey = "employees:options"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counter counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counter, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dateOfBirth, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDateOfBirth
	}
	dateOfJoining, err := time.Parse("2006-01-02", req.DateOfJoining)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDateOfJoining
	}

	if req.EmployeeNumber == "" {
		nextVal, err := s.counter.GetNextValue(ctx, "employee_number")
		if err != nil {
			s.logger.Error("create employee generate number failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		req.EmployeeNumber = fmt.Sprintf("EMP-%06d", nextVal)
	}

	workMode := req.WorkMode
	if workMode == "" {
		workMode = "Office"
	}

	empl := &Employee{
		ID:                 uuid.New(),
		EmployeeNumber:     req.EmployeeNumber,
		FullName:           req.FullName,
		Email:              req.Email,
		Gender:             req.Gender,
		DateOfBirth:        dateOfBirth,
		State:              req.State,
		DepartmentID:       uuidPtr(req.DepartmentID),
		DesignationID:      uuidPtr(req.DesignationID),
		ReportingManagerID: uuidPtr(req.ReportingManagerID),
		DateOfJoining:      dateOfJoining,
		WorkMode:           workMode,
		IsActive:           true,
		Status:             StatusActive,
		Avatar:             req.Avatar,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:  "employee_created",
			RequestID:  rid,
			EmployeeID: empl.ID.String(),
			Email:      empl.Email,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("employee_number", empl.EmployeeNumber),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(empls), nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OptionsCacheKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight keeps a burst of form loads down to one query.
	v, err, _ := s.sf.Do(OptionsCacheKey, func() (interface{}, error) {
		empls, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(empls)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, OptionsCacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if req.FullName != nil {
		empl.FullName = *req.FullName
	}
	if req.Email != nil {
		empl.Email = *req.Email
	}
	if req.Gender != nil {
		empl.Gender = *req.Gender
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidDateOfBirth
		}
		empl.DateOfBirth = dob
	}
	if req.State != nil {
		empl.State = *req.State
	}
	if req.DateOfJoining != nil {
		doj, err := time.Parse("2006-01-02", *req.DateOfJoining)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidDateOfJoining
		}
		empl.DateOfJoining = doj
	}
	if req.WorkMode != nil {
		empl.WorkMode = *req.WorkMode
	}
	if req.Avatar != nil {
		empl.Avatar = req.Avatar
	}

	// Reference fields: empty string means "unset", anything else must parse
	// as a uuid. This is where the UI's "" placeholder would otherwise leak a
	// type mismatch into the reference column.
	if req.DepartmentID != nil {
		empl.DepartmentID = uuidPtr(*req.DepartmentID)
		empl.Department = nil
	}
	if req.DesignationID != nil {
		empl.DesignationID = uuidPtr(*req.DesignationID)
		empl.Designation = nil
	}
	if req.ReportingManagerID != nil {
		empl.ReportingManagerID = uuidPtr(*req.ReportingManagerID)
		empl.ReportingManager = nil
	}

	// isActive and status must never disagree.
	if req.IsActive != nil {
		empl.IsActive = *req.IsActive
		if empl.IsActive {
			empl.Status = StatusActive
		} else {
			empl.Status = StatusInactive
		}
	}

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)
	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	// Soft delete; dependent attendance/leave/payslip rows are retained.
	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.invalidateOptionsCache(ctx)
	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, OptionsCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", OptionsCacheKey),
		)
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                 empl.ID.String(),
		EmployeeNumber:     empl.EmployeeNumber,
		FullName:           empl.FullName,
		Email:              empl.Email,
		Gender:             empl.Gender,
		DateOfBirth:        empl.DateOfBirth.Format("2006-01-02"),
		State:              empl.State,
		DepartmentID:       uuidToString(empl.DepartmentID),
		DesignationID:      uuidToString(empl.DesignationID),
		ReportingManagerID: uuidToString(empl.ReportingManagerID),
		DateOfJoining:      empl.DateOfJoining.Format("2006-01-02"),
		WorkMode:           empl.WorkMode,
		IsActive:           empl.IsActive,
		Status:             empl.Status,
		Avatar:             empl.Avatar,
	}
	if empl.Department != nil {
		resp.Department = &RefResponse{ID: empl.Department.ID.String(), Name: empl.Department.Name}
	}
	if empl.Designation != nil {
		resp.Designation = &RefResponse{ID: empl.Designation.ID.String(), Name: empl.Designation.Title}
	}
	if empl.ReportingManager != nil {
		resp.ReportingManager = &RefResponse{ID: empl.ReportingManager.ID.String(), Name: empl.ReportingManager.FullName}
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}

func uuidPtr(v string) *uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}

func uuidToString(v *uuid.UUID) string {
	if v == nil {
		return ""
	}
	return v.String()
}
