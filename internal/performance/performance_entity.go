package performance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appraisal struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	ReviewerID  *uuid.UUID `gorm:"type:uuid;index"`
	Cycle       string     `gorm:"size:50;not null"`
	Status      string     `gorm:"size:30;not null;default:GoalSetting"`
	FinalRating *float64

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	KPIs     []KPI        `gorm:"foreignKey:AppraisalID;references:ID"`
	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
	Reviewer *EmployeeRef `gorm:"foreignKey:ReviewerID;references:ID"`
}

func (Appraisal) TableName() string {
	return "appraisals"
}

type KPI struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	AppraisalID uuid.UUID `gorm:"type:uuid;not null;index"`
	Position    int       `gorm:"type:int;not null;default:0"`
	Title       string    `gorm:"size:255;not null"`
	Description string    `gorm:"type:text"`

	SelfRating     *int    `gorm:"type:int"`
	SelfComment    *string `gorm:"type:text"`
	ManagerRating  *int    `gorm:"type:int"`
	ManagerComment *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (KPI) TableName() string {
	return "appraisal_kpis"
}

type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
