package department

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	departmenterrors "go-ems/internal/department/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept := &Department{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	}

	if err := qtx.Create(ctx, dept); err != nil {
		return DepartmentResponse{}, mapDepartmentError(err)
	}

	if err := tx.Commit(); err != nil {
		return DepartmentResponse{}, err
	}

	return mapToResponse(*dept), nil
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	depts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapDepartmentError(err)
	}
	return mapToListResponse(depts), nil
}

func (s *service) GetByID(ctx context.Context, id string) (DepartmentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}
	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapDepartmentError(err)
	}
	return mapToResponse(*dept), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := uuid.Parse(id); err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	dept, err := qtx.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapDepartmentError(err)
	}

	dept.Name = strings.TrimSpace(req.Name)
	dept.Description = req.Description

	if err := qtx.Update(ctx, dept); err != nil {
		return DepartmentResponse{}, mapDepartmentError(err)
	}

	if err := tx.Commit(); err != nil {
		return DepartmentResponse{}, err
	}

	return mapToResponse(*dept), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := uuid.Parse(id); err != nil {
		return departmenterrors.ErrInvalidDepartmentID
	}

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapDepartmentError(err)
	}

	count, err := qtx.CountEmployees(ctx, id)
	if err != nil {
		return mapDepartmentError(err)
	}
	if count > 0 {
		return departmenterrors.ErrDepartmentInUse
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapDepartmentError(err)
	}

	return tx.Commit()
}

func mapDepartmentError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return departmenterrors.ErrDepartmentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return departmenterrors.ErrDepartmentNameExists
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return departmenterrors.ErrDepartmentNameExists
	}

	return err
}

func mapToResponse(dept Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          dept.ID.String(),
		Name:        dept.Name,
		Description: dept.Description,
		CreatedAt:   dept.CreatedAt.Format("2006-01-02"),
		UpdatedAt:   dept.UpdatedAt.Format("2006-01-02"),
	}
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}
