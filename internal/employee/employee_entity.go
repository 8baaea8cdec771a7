package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

type Employee struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeNumber     string     `gorm:"type:varchar(20);uniqueIndex:uq_employee_number;not null"`
	FullName           string     `gorm:"type:varchar(255);not null"`
	Email              string     `gorm:"type:varchar(255);uniqueIndex:uq_employee_email;not null"`
	Gender             string     `gorm:"type:varchar(10);not null"`
	DateOfBirth        time.Time  `gorm:"type:date;not null"`
	State              string     `gorm:"type:varchar(100);not null"`
	DepartmentID       *uuid.UUID `gorm:"type:uuid"`
	DesignationID      *uuid.UUID `gorm:"type:uuid"`
	ReportingManagerID *uuid.UUID `gorm:"type:uuid"`
	DateOfJoining      time.Time  `gorm:"type:date;not null"`
	WorkMode           string     `gorm:"type:varchar(20);not null;default:'Office'"`
	IsActive           bool       `gorm:"not null;default:true"`
	Status             string     `gorm:"type:varchar(20);not null;default:'Active'"`
	Avatar             *string    `gorm:"type:text"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`

	Department       *DepartmentRef  `gorm:"foreignKey:DepartmentID;references:ID"`
	Designation      *DesignationRef `gorm:"foreignKey:DesignationID;references:ID"`
	ReportingManager *ManagerRef     `gorm:"foreignKey:ReportingManagerID;references:ID"`
}

func (Employee) TableName() string {
	return "employees"
}

type DepartmentRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (DepartmentRef) TableName() string {
	return "departments"
}

type DesignationRef struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title string    `gorm:"column:title"`
}

func (DesignationRef) TableName() string {
	return "designations"
}

type ManagerRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (ManagerRef) TableName() string {
	return "employees"
}
