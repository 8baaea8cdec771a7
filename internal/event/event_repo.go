package event

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=event_repo.go -destination=mock/event_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Event) error
	FindByID(ctx context.Context, id string) (*Event, error)
	FindAll(ctx context.Context) ([]Event, error)
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

func (r *repository) Create(ctx context.Context, e *Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Event, error) {
	var e Event
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Event, error) {
	var events []Event
	err := r.db.WithContext(ctx).
		Order("event_date DESC").
		Find(&events).Error
	return events, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Event{}, "id = ?", id).Error
}
