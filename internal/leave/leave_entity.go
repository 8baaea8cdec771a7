package leave

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Leave struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_leaves_employee_dates"`

	LeaveType string    `gorm:"type:varchar(30);not null;default:'Casual'"`
	StartDate time.Time `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	TotalDays int       `gorm:"type:int;not null;default:1"`
	Reason    string    `gorm:"type:text"`

	Status          string     `gorm:"type:varchar(20);not null;default:'Pending';index:idx_leaves_status"`
	DecidedBy       *uuid.UUID `gorm:"type:uuid"`
	DecidedAt       *time.Time
	RejectionReason *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_leaves_deleted_at"`

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
