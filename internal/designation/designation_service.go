package designation

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	designationerrors "go-ems/internal/designation/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const AllCacheKey = "designations:all"

//go:generate mockgen -source=designation_service.go -destination=mock/designation_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDesignationRequest) (DesignationResponse, error)
	GetAll(ctx context.Context) ([]DesignationResponse, error)
	GetByID(ctx context.Context, id string) (DesignationResponse, error)
	Update(ctx context.Context, id string, req UpdateDesignationRequest) (DesignationResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
	rdb  *redis.Client
	sf   *singleflight.Group
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client) Service {
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}}
}

func (s *service) Create(ctx context.Context, req CreateDesignationRequest) (DesignationResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DesignationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	desig := &Designation{
		ID:           uuid.New(),
		Title:        strings.TrimSpace(req.Title),
		DepartmentID: uuid.MustParse(req.DepartmentID),
	}

	if err := qtx.Create(ctx, desig); err != nil {
		return DesignationResponse{}, mapDesignationError(err)
	}

	if err := tx.Commit(); err != nil {
		return DesignationResponse{}, err
	}

	s.invalidateCache(ctx)

	return mapToResponse(*desig), nil
}

func (s *service) GetAll(ctx context.Context) ([]DesignationResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, AllCacheKey).Result(); err == nil {
			var resp []DesignationResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(AllCacheKey, func() (interface{}, error) {
		desigs, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, mapDesignationError(err)
		}

		resp := mapToListResponse(desigs)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, AllCacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]DesignationResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (DesignationResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DesignationResponse{}, designationerrors.ErrInvalidDesignationID
	}
	desig, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DesignationResponse{}, mapDesignationError(err)
	}
	return mapToResponse(*desig), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDesignationRequest) (DesignationResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DesignationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := uuid.Parse(id); err != nil {
		return DesignationResponse{}, designationerrors.ErrInvalidDesignationID
	}

	desig, err := qtx.FindByID(ctx, id)
	if err != nil {
		return DesignationResponse{}, mapDesignationError(err)
	}

	desig.Title = strings.TrimSpace(req.Title)
	desig.DepartmentID = uuid.MustParse(req.DepartmentID)
	desig.Department = nil

	if err := qtx.Update(ctx, desig); err != nil {
		return DesignationResponse{}, mapDesignationError(err)
	}

	if err := tx.Commit(); err != nil {
		return DesignationResponse{}, err
	}

	s.invalidateCache(ctx)

	return mapToResponse(*desig), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := uuid.Parse(id); err != nil {
		return designationerrors.ErrInvalidDesignationID
	}

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapDesignationError(err)
	}

	count, err := qtx.CountEmployees(ctx, id)
	if err != nil {
		return mapDesignationError(err)
	}
	if count > 0 {
		return designationerrors.ErrDesignationInUse
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapDesignationError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	s.rdb.Del(ctx, AllCacheKey)
}

func mapDesignationError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return designationerrors.ErrDesignationNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return designationerrors.ErrDesignationTitleExists
		case "23503":
			return designationerrors.ErrInvalidDepartmentRef
		}
	}

	return err
}

func mapToResponse(desig Designation) DesignationResponse {
	resp := DesignationResponse{
		ID:           desig.ID.String(),
		Title:        desig.Title,
		DepartmentID: desig.DepartmentID.String(),
		CreatedAt:    desig.CreatedAt.Format("2006-01-02"),
		UpdatedAt:    desig.UpdatedAt.Format("2006-01-02"),
	}
	if desig.Department != nil {
		resp.DepartmentName = desig.Department.Name
	}
	return resp
}

func mapToListResponse(desigs []Designation) []DesignationResponse {
	res := make([]DesignationResponse, len(desigs))
	for i, d := range desigs {
		res[i] = mapToResponse(d)
	}
	return res
}
