package document

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=document_repo.go -destination=mock/document_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, d *Document) error
	FindByID(ctx context.Context, id string) (*Document, error)
	FindAllByOwner(ctx context.Context, ownerID string) ([]Document, error)
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

func (r *repository) Create(ctx context.Context, d *Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Document, error) {
	var d Document
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) FindAllByOwner(ctx context.Context, ownerID string) ([]Document, error) {
	var docs []Document
	err := r.db.WithContext(ctx).
		Select("id", "owner_id", "title", "doc_type", "file_name", "file_size", "created_at", "updated_at").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&docs).Error
	return docs, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Document{}, "id = ?", id).Error
}
