package payroll

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"go-ems/internal/scope"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	SaveStructure(ctx context.Context, s *SalaryStructure) error
	FindStructureByEmployee(ctx context.Context, employeeID string) (*SalaryStructure, error)
	CreatePayslip(ctx context.Context, p *Payslip) error
	FindPayslipByID(ctx context.Context, id string) (*Payslip, error)
	FindPayslipsByEmployee(ctx context.Context, employeeID string) ([]Payslip, error)
	FindAllPayslips(ctx context.Context, month, year int) ([]Payslip, error)
	UpdatePayslip(ctx context.Context, p *Payslip) error
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

func (r *repository) SaveStructure(ctx context.Context, s *SalaryStructure) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"basic", "hra", "da", "special_allowance", "pf", "tax", "updated_at",
			}),
		}).
		Create(s).Error
}

func (r *repository) FindStructureByEmployee(ctx context.Context, employeeID string) (*SalaryStructure, error) {
	var s SalaryStructure
	err := r.db.WithContext(ctx).
		First(&s, "employee_id = ?", employeeID).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) CreatePayslip(ctx context.Context, p *Payslip) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindPayslipByID(ctx context.Context, id string) (*Payslip, error) {
	var p Payslip
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindPayslipsByEmployee(ctx context.Context, employeeID string) ([]Payslip, error) {
	var slips []Payslip
	err := r.db.WithContext(ctx).
		Scopes(scope.Owner(employeeID)).
		Order("year DESC, month DESC").
		Find(&slips).Error
	return slips, err
}

func (r *repository) FindAllPayslips(ctx context.Context, month, year int) ([]Payslip, error) {
	q := r.db.WithContext(ctx).Preload("Employee")
	if month > 0 {
		q = q.Where("month = ?", month)
	}
	if year > 0 {
		q = q.Where("year = ?", year)
	}

	var slips []Payslip
	err := q.Order("year DESC, month DESC").Find(&slips).Error
	return slips, err
}

func (r *repository) UpdatePayslip(ctx context.Context, p *Payslip) error {
	return r.db.WithContext(ctx).
		Omit("Employee").
		Save(p).Error
}
