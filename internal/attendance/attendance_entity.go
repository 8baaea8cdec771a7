package attendance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const StatusPresent = "Present"

type Attendance struct {
	ID             uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID     uuid.UUID      `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date"`
	AttendanceDate time.Time      `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_employee_date"`
	PunchIn        time.Time      `gorm:"column:punch_in;type:timestamptz;not null"`
	PunchOut       *time.Time     `gorm:"column:punch_out;type:timestamptz"`
	TotalHours     float64        `gorm:"column:total_hours;default:0"`
	WorkMode       string         `gorm:"column:work_mode;size:20;not null;default:Office"`
	Status         string         `gorm:"column:status;size:20;not null;default:Present"`
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index"`
	Employee       *EmployeeRef   `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendances"
}

type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
