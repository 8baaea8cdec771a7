package recruitment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	JobStatusOpen   = "Open"
	JobStatusClosed = "Closed"
	JobStatusDraft  = "Draft"
)

const (
	StageNew       = "New"
	StageScreening = "Screening"
	StageInterview = "Interview"
	StageOffer     = "Offer"
	StageHired     = "Hired"
	StageRejected  = "Rejected"
)

type Job struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Title           string `gorm:"type:varchar(200);not null"`
	Department      string `gorm:"type:varchar(100)"`
	Location        string `gorm:"type:varchar(100)"`
	JobType         string `gorm:"type:varchar(30);not null;default:'Full-time'"`
	RemotePolicy    string `gorm:"type:varchar(30)"`
	ExperienceLevel string `gorm:"type:varchar(30)"`

	Skills             []string `gorm:"serializer:json"`
	SalaryRange        string   `gorm:"type:varchar(60)"`
	ScreeningQuestions []string `gorm:"serializer:json"`

	Status string `gorm:"type:varchar(20);not null;default:'Open';index:idx_jobs_status"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_jobs_deleted_at"`
}

type Candidate struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobID uuid.UUID `gorm:"type:uuid;not null;index:idx_candidates_job"`

	FullName string `gorm:"type:varchar(150);not null"`
	Email    string `gorm:"type:varchar(255);not null"`
	Phone    string `gorm:"type:varchar(30)"`

	Skills           []string `gorm:"serializer:json"`
	ScreeningAnswers []string `gorm:"serializer:json"`
	ExperienceYears  float64  `gorm:"type:numeric(4,1);default:0"`
	AIScore          *float64 `gorm:"type:numeric(5,2);column:ai_score"`

	Status string `gorm:"type:varchar(20);not null;default:'New';index:idx_candidates_status"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_candidates_deleted_at"`

	Job *Job `gorm:"foreignKey:JobID;references:ID"`
}
