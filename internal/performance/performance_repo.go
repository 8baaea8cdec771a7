package performance

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-ems/internal/scope"
)

//go:generate mockgen -source=performance_repo.go -destination=mock/performance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Appraisal) error
	FindByID(ctx context.Context, id string) (*Appraisal, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Appraisal, error)
	FindPendingByReviewer(ctx context.Context, reviewerID string) ([]Appraisal, error)
	GetReportingManager(ctx context.Context, employeeID string) (*uuid.UUID, error)
	Update(ctx context.Context, a *Appraisal) error
	UpdateKPI(ctx context.Context, k *KPI) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, a *Appraisal) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Appraisal, error) {
	var a Appraisal
	err := r.db.WithContext(ctx).
		Preload("KPIs", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Employee").
		Preload("Reviewer").
		First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Appraisal, error) {
	var rows []Appraisal
	err := r.db.WithContext(ctx).
		Preload("KPIs", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Reviewer").
		Scopes(scope.Owner(employeeID)).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindPendingByReviewer(ctx context.Context, reviewerID string) ([]Appraisal, error) {
	var rows []Appraisal
	err := r.db.WithContext(ctx).
		Preload("KPIs", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Employee").
		Where("reviewer_id = ?", reviewerID).
		Where("status <> ?", StatusCompleted).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) GetReportingManager(ctx context.Context, employeeID string) (*uuid.UUID, error) {
	var managerID *uuid.UUID
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("reporting_manager_id").
		Where("id = ? AND deleted_at IS NULL", employeeID).
		Scan(&managerID).Error
	return managerID, err
}

func (r *repository) Update(ctx context.Context, a *Appraisal) error {
	return r.db.WithContext(ctx).Omit("KPIs", "Employee", "Reviewer").Save(a).Error
}

func (r *repository) UpdateKPI(ctx context.Context, k *KPI) error {
	return r.db.WithContext(ctx).Save(k).Error
}
