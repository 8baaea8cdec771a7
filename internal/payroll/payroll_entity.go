package payroll

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusDraft     = "Draft"
	StatusPublished = "Published"
	StatusPaid      = "Paid"
)

// SalaryStructure holds the current compensation split for one employee.
// Saving a new structure replaces the previous one.
type SalaryStructure struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_salary_structure_employee"`

	Basic            float64 `gorm:"type:numeric(12,2);not null"`
	HRA              float64 `gorm:"type:numeric(12,2);not null;column:hra"`
	DA               float64 `gorm:"type:numeric(12,2);not null;column:da"`
	SpecialAllowance float64 `gorm:"type:numeric(12,2);not null"`
	PF               float64 `gorm:"type:numeric(12,2);not null;column:pf"`
	Tax              float64 `gorm:"type:numeric(12,2);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s SalaryStructure) Gross() float64 {
	return s.Basic + s.HRA + s.DA + s.SpecialAllowance
}

func (s SalaryStructure) Net() float64 {
	return s.Gross() - (s.PF + s.Tax)
}

// Payslip snapshots the structure at generation time so later structure
// edits never change an issued slip.
type Payslip struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_payslip_period"`
	Month      int       `gorm:"not null;uniqueIndex:uq_payslip_period"`
	Year       int       `gorm:"not null;uniqueIndex:uq_payslip_period"`

	Basic            float64 `gorm:"type:numeric(12,2);not null"`
	HRA              float64 `gorm:"type:numeric(12,2);not null;column:hra"`
	DA               float64 `gorm:"type:numeric(12,2);not null;column:da"`
	SpecialAllowance float64 `gorm:"type:numeric(12,2);not null"`
	PF               float64 `gorm:"type:numeric(12,2);not null;column:pf"`
	Tax              float64 `gorm:"type:numeric(12,2);not null"`
	LossOfPay        float64 `gorm:"type:numeric(12,2);not null;default:0"`

	TotalEarnings   float64 `gorm:"type:numeric(12,2);not null"`
	TotalDeductions float64 `gorm:"type:numeric(12,2);not null"`
	NetPay          float64 `gorm:"type:numeric(12,2);not null"`

	Status             string  `gorm:"type:varchar(20);not null;default:'Draft';index:idx_payslips_status"`
	PayslipURL         *string `gorm:"type:text"`
	PayslipGeneratedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_payslips_deleted_at"`

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

type EmployeeRef struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string    `gorm:"column:employee_number"`
	FullName       string    `gorm:"column:full_name"`
	Email          string    `gorm:"column:email"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
