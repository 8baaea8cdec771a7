package event

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeAnnouncement = "Announcement"
	TypeEvent        = "Event"
	TypeHoliday      = "Holiday"
	TypeMeeting      = "Meeting"
)

type Event struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text"`
	EventType   string    `gorm:"type:varchar(20);not null;default:'Announcement';index:idx_events_type"`
	EventDate   time.Time `gorm:"type:date;not null;index:idx_events_date"`
	Audience    string    `gorm:"type:varchar(100);not null;default:'All'"`

	CreatedBy *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_events_deleted_at"`
}
