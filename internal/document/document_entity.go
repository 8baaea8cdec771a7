package document

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Document struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index:idx_documents_owner"`

	Title    string `gorm:"type:varchar(200);not null"`
	DocType  string `gorm:"type:varchar(50);not null;column:doc_type"`
	FileName string `gorm:"type:varchar(255);not null"`
	FileData []byte `gorm:"type:bytea;not null"`
	FileSize int64  `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_documents_deleted_at"`
}
