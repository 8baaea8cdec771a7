package leave

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"go-ems/internal/scope"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Leave) error
	FindByID(ctx context.Context, id string) (*Leave, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Leave, error)
	FindPending(ctx context.Context) ([]Leave, error)
	HasOverlappingPeriod(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
	Update(ctx context.Context, l *Leave) error
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

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).
		Scopes(scope.Owner(employeeID)).
		Order("created_at DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindPending(ctx context.Context) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Scopes(scope.Status(StatusPending)).
		Order("created_at ASC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) HasOverlappingPeriod(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Leave{}).
		Scopes(scope.Owner(employeeID)).
		Where("status IN ?", []string{StatusPending, StatusApproved}).
		Where("start_date <= ? AND end_date >= ?", end.Format("2006-01-02"), start.Format("2006-01-02")).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Save(l).Error
}
