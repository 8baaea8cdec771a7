package recruitment

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=recruitment_repo.go -destination=mock/recruitment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateJob(ctx context.Context, j *Job) error
	FindJobByID(ctx context.Context, id string) (*Job, error)
	FindAllJobs(ctx context.Context) ([]Job, error)
	FindJobsByStatus(ctx context.Context, status string) ([]Job, error)
	CreateCandidate(ctx context.Context, c *Candidate) error
	FindCandidateByID(ctx context.Context, id string) (*Candidate, error)
	FindAllCandidates(ctx context.Context) ([]Candidate, error)
	UpdateCandidate(ctx context.Context, c *Candidate) error
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

func (r *repository) CreateJob(ctx context.Context, j *Job) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *repository) FindJobByID(ctx context.Context, id string) (*Job, error) {
	var j Job
	err := r.db.WithContext(ctx).First(&j, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *repository) FindAllJobs(ctx context.Context) ([]Job, error) {
	var jobs []Job
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *repository) FindJobsByStatus(ctx context.Context, status string) ([]Job, error) {
	var jobs []Job
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *repository) CreateCandidate(ctx context.Context, c *Candidate) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindCandidateByID(ctx context.Context, id string) (*Candidate, error) {
	var c Candidate
	err := r.db.WithContext(ctx).
		Preload("Job").
		First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) FindAllCandidates(ctx context.Context) ([]Candidate, error) {
	var candidates []Candidate
	err := r.db.WithContext(ctx).
		Preload("Job").
		Order("created_at DESC").
		Find(&candidates).Error
	return candidates, err
}

func (r *repository) UpdateCandidate(ctx context.Context, c *Candidate) error {
	return r.db.WithContext(ctx).
		Omit("Job").
		Save(c).Error
}
