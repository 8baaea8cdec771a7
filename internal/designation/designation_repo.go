package designation

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=designation_repo.go -destination=mock/designation_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, desig *Designation) error
	FindAll(ctx context.Context) ([]Designation, error)
	FindByID(ctx context.Context, id string) (*Designation, error)
	CountEmployees(ctx context.Context, id string) (int64, error)
	Update(ctx context.Context, desig *Designation) error
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
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, desig *Designation) error {
	return r.db.WithContext(ctx).Create(desig).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Designation, error) {
	var desigs []Designation
	err := r.db.WithContext(ctx).
		Preload("Department").
		Order("title ASC").
		Find(&desigs).Error
	return desigs, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Designation, error) {
	var desig Designation
	err := r.db.WithContext(ctx).
		Preload("Department").
		First(&desig, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &desig, nil
}

func (r *repository) CountEmployees(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("designation_id = ? AND deleted_at IS NULL", id).
		Count(&count).Error
	return count, err
}

func (r *repository) Update(ctx context.Context, desig *Designation) error {
	return r.db.WithContext(ctx).Save(desig).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Designation{}, "id = ?", id).Error
}
