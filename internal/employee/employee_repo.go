package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindOptions(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Designation").
		Preload("ReportingManager").
		Order("full_name ASC").
		Find(&empls).Error
	return empls, err
}

// FindOptions returns the thin list used to populate dropdowns; no preloads.
func (r *repository) FindOptions(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Select("id", "employee_number", "full_name", "email", "is_active", "status",
			"gender", "state", "work_mode", "date_of_birth", "date_of_joining").
		Where("is_active = ?", true).
		Order("full_name ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Designation").
		Preload("ReportingManager").
		First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id).Error
}
