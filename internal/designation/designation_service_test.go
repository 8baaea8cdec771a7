package designation_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"go-ems/internal/designation"
	designationerrors "go-ems/internal/designation/errors"
	designationMock "go-ems/internal/designation/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type desigDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   designation.Service
	repo      *designationMock.MockRepository
	redismock redismock.ClientMock
}

func setupDesigTest(t *testing.T) *desigDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	rdb, redisMock := redismock.NewClientMock()
	repo := designationMock.NewMockRepository(ctrl)
	svc := designation.NewService(db, repo, rdb)

	return &desigDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo, redismock: redisMock}
}

func TestDesignationService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupDesigTest(t)
		defer deps.db.Close()

		deptID := uuid.NewString()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, d *designation.Designation) error {
				assert.Equal(t, "Senior Engineer", d.Title)
				assert.Equal(t, deptID, d.DepartmentID.String())
				return nil
			})

		deps.redismock.ExpectDel(designation.AllCacheKey).SetVal(1)

		resp, err := deps.service.Create(ctx, designation.CreateDesignationRequest{
			Title:        "Senior Engineer",
			DepartmentID: deptID,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Senior Engineer", resp.Title)
	})

	t.Run("unknown department -> invalid input", func(t *testing.T) {
		deps := setupDesigTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23503"})

		_, err := deps.service.Create(ctx, designation.CreateDesignationRequest{
			Title:        "Senior Engineer",
			DepartmentID: uuid.NewString(),
		})

		assert.ErrorIs(t, err, designationerrors.ErrInvalidDepartmentRef)
	})
}

func TestDesignationService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss populates redis", func(t *testing.T) {
		deps := setupDesigTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(designation.AllCacheKey).RedisNil()

		deps.repo.EXPECT().
			FindAll(ctx).
			Return([]designation.Designation{
				{ID: uuid.New(), Title: "Engineer"},
			}, nil)

		deps.redismock.Regexp().
			ExpectSet(designation.AllCacheKey, `.*`, time.Hour).
			SetVal("OK")

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		deps := setupDesigTest(t)
		defer deps.db.Close()

		cached := []designation.DesignationResponse{{ID: uuid.NewString(), Title: "Cached"}}
		raw, _ := json.Marshal(cached)

		deps.redismock.ExpectGet(designation.AllCacheKey).SetVal(string(raw))

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "Cached", resp[0].Title)
	})
}

func TestDesignationService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("blocked while employees assigned", func(t *testing.T) {
		deps := setupDesigTest(t)
		defer deps.db.Close()

		id := uuid.NewString()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(&designation.Designation{}, nil)
		deps.repo.EXPECT().CountEmployees(ctx, id).Return(int64(2), nil)

		err := deps.service.Delete(ctx, id)

		assert.ErrorIs(t, err, designationerrors.ErrDesignationInUse)
	})
}
