package performance_test

import (
	"context"
	"database/sql"
	"testing"

	"go-ems/internal/performance"
	performanceerrors "go-ems/internal/performance/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakePerformanceRepository struct {
	withTxFn                func(tx *sql.Tx) performance.Repository
	createFn                func(ctx context.Context, a *performance.Appraisal) error
	findByIDFn              func(ctx context.Context, id string) (*performance.Appraisal, error)
	findAllByEmployeeFn     func(ctx context.Context, employeeID string) ([]performance.Appraisal, error)
	findPendingByReviewerFn func(ctx context.Context, reviewerID string) ([]performance.Appraisal, error)
	getReportingManagerFn   func(ctx context.Context, employeeID string) (*uuid.UUID, error)
	updateFn                func(ctx context.Context, a *performance.Appraisal) error
	updateKPIFn             func(ctx context.Context, k *performance.KPI) error
}

func (f *fakePerformanceRepository) WithTx(tx *sql.Tx) performance.Repository { return f.withTxFn(tx) }
func (f *fakePerformanceRepository) Create(ctx context.Context, a *performance.Appraisal) error {
	return f.createFn(ctx, a)
}
func (f *fakePerformanceRepository) FindByID(ctx context.Context, id string) (*performance.Appraisal, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakePerformanceRepository) FindAllByEmployee(ctx context.Context, employeeID string) ([]performance.Appraisal, error) {
	return f.findAllByEmployeeFn(ctx, employeeID)
}
func (f *fakePerformanceRepository) FindPendingByReviewer(ctx context.Context, reviewerID string) ([]performance.Appraisal, error) {
	return f.findPendingByReviewerFn(ctx, reviewerID)
}
func (f *fakePerformanceRepository) GetReportingManager(ctx context.Context, employeeID string) (*uuid.UUID, error) {
	return f.getReportingManagerFn(ctx, employeeID)
}
func (f *fakePerformanceRepository) Update(ctx context.Context, a *performance.Appraisal) error {
	return f.updateFn(ctx, a)
}
func (f *fakePerformanceRepository) UpdateKPI(ctx context.Context, k *performance.KPI) error {
	return f.updateKPIFn(ctx, k)
}

func newPerformanceFake() *fakePerformanceRepository {
	f := &fakePerformanceRepository{}
	f.withTxFn = func(tx *sql.Tx) performance.Repository { return f }
	f.updateFn = func(ctx context.Context, a *performance.Appraisal) error { return nil }
	f.updateKPIFn = func(ctx context.Context, k *performance.KPI) error { return nil }
	return f
}

func intPtr(v int) *int { return &v }

func TestPerformanceService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults reviewer to reporting manager", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		managerID := uuid.New()
		var saved performance.Appraisal
		repo := newPerformanceFake()
		repo.getReportingManagerFn = func(ctx context.Context, employeeID string) (*uuid.UUID, error) {
			return &managerID, nil
		}
		repo.createFn = func(ctx context.Context, a *performance.Appraisal) error { saved = *a; return nil }

		svc := performance.NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectCommit()
		resp, err := svc.Create(ctx, uuid.NewString(), performance.CreateAppraisalRequest{
			Cycle: "2026-H1",
			KPIs: []performance.KPIGoalRequest{
				{Title: "Ship the reporting module"},
				{Title: "Mentor two juniors"},
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, performance.StatusGoalSetting, resp.Status)
		assert.Equal(t, managerID.String(), resp.ReviewerID)
		assert.Len(t, saved.KPIs, 2)
		assert.Equal(t, 0, saved.KPIs[0].Position)
		assert.Equal(t, 1, saved.KPIs[1].Position)
	})

	t.Run("empty kpi title rejected", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		repo := newPerformanceFake()
		svc := performance.NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectRollback()
		_, err := svc.Create(ctx, uuid.NewString(), performance.CreateAppraisalRequest{
			Cycle: "2026-H1",
			KPIs: []performance.KPIGoalRequest{
				{Title: "Valid goal"},
				{Title: "   "},
			},
		})

		assert.ErrorIs(t, err, performanceerrors.ErrInvalidGoal)
	})
}

func TestPerformanceService_Update_Transitions(t *testing.T) {
	ctx := context.Background()

	run := func(t *testing.T, from, to string, kpis []performance.KPI) error {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		employeeID := uuid.New()
		reviewerID := uuid.New()
		repo := newPerformanceFake()
		repo.findByIDFn = func(ctx context.Context, id string) (*performance.Appraisal, error) {
			return &performance.Appraisal{
				ID:         uuid.New(),
				EmployeeID: employeeID,
				ReviewerID: &reviewerID,
				Status:     from,
				KPIs:       kpis,
			}, nil
		}

		svc := performance.NewService(db, repo)

		actorID := employeeID.String()
		if from == performance.StatusManagerReview {
			actorID = reviewerID.String()
		}

		mock.ExpectBegin()
		if to == "" || nextAllowed(from, to) {
			mock.ExpectCommit()
		} else {
			mock.ExpectRollback()
		}
		_, err := svc.Update(ctx, actorID, uuid.NewString(), performance.UpdateAppraisalRequest{Status: to})
		return err
	}

	t.Run("goal setting to self review", func(t *testing.T) {
		assert.NoError(t, run(t, performance.StatusGoalSetting, performance.StatusSelfReview, nil))
	})

	t.Run("cannot skip a phase", func(t *testing.T) {
		err := run(t, performance.StatusGoalSetting, performance.StatusManagerReview, nil)
		assert.ErrorIs(t, err, performanceerrors.ErrInvalidTransition)
	})

	t.Run("cannot move backwards", func(t *testing.T) {
		err := run(t, performance.StatusManagerReview, performance.StatusSelfReview, nil)
		assert.ErrorIs(t, err, performanceerrors.ErrInvalidTransition)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		err := run(t, performance.StatusCompleted, performance.StatusSelfReview, nil)
		assert.ErrorIs(t, err, performanceerrors.ErrInvalidTransition)
	})
}

func nextAllowed(from, to string) bool {
	switch from {
	case performance.StatusGoalSetting:
		return to == performance.StatusSelfReview
	case performance.StatusSelfReview:
		return to == performance.StatusManagerReview
	case performance.StatusManagerReview:
		return to == performance.StatusCompleted
	default:
		return false
	}
}

func TestPerformanceService_Update_Completion(t *testing.T) {
	ctx := context.Background()

	t.Run("final rating is mean of manager ratings", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		reviewerID := uuid.New()
		var saved performance.Appraisal
		repo := newPerformanceFake()
		repo.findByIDFn = func(ctx context.Context, id string) (*performance.Appraisal, error) {
			return &performance.Appraisal{
				ID:         uuid.New(),
				ReviewerID: &reviewerID,
				Status:     performance.StatusManagerReview,
				KPIs: []performance.KPI{
					{ID: uuid.New(), ManagerRating: intPtr(4)},
					{ID: uuid.New(), ManagerRating: intPtr(3)},
					{ID: uuid.New(), ManagerRating: intPtr(5)},
				},
			}, nil
		}
		repo.updateFn = func(ctx context.Context, a *performance.Appraisal) error { saved = *a; return nil }

		svc := performance.NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectCommit()
		resp, err := svc.Update(ctx, reviewerID.String(), uuid.NewString(), performance.UpdateAppraisalRequest{
			Status: performance.StatusCompleted,
		})

		assert.NoError(t, err)
		assert.NotNil(t, resp.FinalRating)
		assert.Equal(t, 4.0, *resp.FinalRating)
		assert.Equal(t, performance.StatusCompleted, saved.Status)
	})

	t.Run("rounds to one decimal", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		reviewerID := uuid.New()
		repo := newPerformanceFake()
		repo.findByIDFn = func(ctx context.Context, id string) (*performance.Appraisal, error) {
			return &performance.Appraisal{
				ID:         uuid.New(),
				ReviewerID: &reviewerID,
				Status:     performance.StatusManagerReview,
				KPIs: []performance.KPI{
					{ID: uuid.New(), ManagerRating: intPtr(4)},
					{ID: uuid.New(), ManagerRating: intPtr(3)},
					{ID: uuid.New(), ManagerRating: intPtr(3)},
				},
			}, nil
		}

		svc := performance.NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectCommit()
		resp, err := svc.Update(ctx, reviewerID.String(), uuid.NewString(), performance.UpdateAppraisalRequest{
			Status: performance.StatusCompleted,
		})

		assert.NoError(t, err)
		assert.Equal(t, 3.3, *resp.FinalRating)
	})

	t.Run("missing manager rating blocks completion", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		reviewerID := uuid.New()
		repo := newPerformanceFake()
		repo.findByIDFn = func(ctx context.Context, id string) (*performance.Appraisal, error) {
			return &performance.Appraisal{
				ID:         uuid.New(),
				ReviewerID: &reviewerID,
				Status:     performance.StatusManagerReview,
				KPIs: []performance.KPI{
					{ID: uuid.New(), ManagerRating: intPtr(4)},
					{ID: uuid.New()},
				},
			}, nil
		}

		svc := performance.NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectRollback()
		_, err := svc.Update(ctx, reviewerID.String(), uuid.NewString(), performance.UpdateAppraisalRequest{
			Status: performance.StatusCompleted,
		})

		assert.ErrorIs(t, err, performanceerrors.ErrMissingManagerRatings)
	})
}

func TestPerformanceService_Update_PhaseFields(t *testing.T) {
	ctx := context.Background()

	t.Run("self fields only during self review", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		kpiID := uuid.New()
		employeeID := uuid.New()
		var savedKPI performance.KPI
		repo := newPerformanceFake()
		repo.findByIDFn = func(ctx context.Context, id string) (*performance.Appraisal, error) {
			return &performance.Appraisal{
				ID:         uuid.New(),
				EmployeeID: employeeID,
				Status:     performance.StatusSelfReview,
				KPIs:       []performance.KPI{{ID: kpiID}},
			}, nil
		}
		repo.updateKPIFn = func(ctx context.Context, k *performance.KPI) error { savedKPI = *k; return nil }

		svc := performance.NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectCommit()
		comment := "Delivered ahead of schedule"
		_, err := svc.Update(ctx, employeeID.String(), uuid.NewString(), performance.UpdateAppraisalRequest{
			KPIs: []performance.KPIUpdateRequest{{
				ID:             kpiID.String(),
				SelfRating:     intPtr(5),
				SelfComment:    &comment,
				ManagerRating:  intPtr(1),
				ManagerComment: &comment,
			}},
		})

		assert.NoError(t, err)
		assert.Equal(t, 5, *savedKPI.SelfRating)
		// The manager side must stay untouched during self review.
		assert.Nil(t, savedKPI.ManagerRating)
		assert.Nil(t, savedKPI.ManagerComment)
	})

	t.Run("manager fields only during manager review", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		kpiID := uuid.New()
		reviewerID := uuid.New()
		selfRating := 4
		var savedKPI performance.KPI
		repo := newPerformanceFake()
		repo.findByIDFn = func(ctx context.Context, id string) (*performance.Appraisal, error) {
			return &performance.Appraisal{
				ID:         uuid.New(),
				ReviewerID: &reviewerID,
				Status:     performance.StatusManagerReview,
				KPIs:       []performance.KPI{{ID: kpiID, SelfRating: &selfRating}},
			}, nil
		}
		repo.updateKPIFn = func(ctx context.Context, k *performance.KPI) error { savedKPI = *k; return nil }

		svc := performance.NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectCommit()
		_, err := svc.Update(ctx, reviewerID.String(), uuid.NewString(), performance.UpdateAppraisalRequest{
			KPIs: []performance.KPIUpdateRequest{{
				ID:            kpiID.String(),
				SelfRating:    intPtr(1),
				ManagerRating: intPtr(3),
			}},
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, *savedKPI.ManagerRating)
		assert.Equal(t, 4, *savedKPI.SelfRating)
	})
}

func TestPerformanceService_Update_ActorIdentity(t *testing.T) {
	ctx := context.Background()

	newAppraisal := func(status string) (*performance.Appraisal, uuid.UUID, uuid.UUID) {
		employeeID := uuid.New()
		reviewerID := uuid.New()
		return &performance.Appraisal{
			ID:         uuid.New(),
			EmployeeID: employeeID,
			ReviewerID: &reviewerID,
			Status:     status,
			KPIs:       []performance.KPI{{ID: uuid.New()}},
		}, employeeID, reviewerID
	}

	t.Run("only the appraised employee writes during self review", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		appraisal, _, reviewerID := newAppraisal(performance.StatusSelfReview)
		repo := newPerformanceFake()
		repo.findByIDFn = func(ctx context.Context, id string) (*performance.Appraisal, error) {
			return appraisal, nil
		}

		svc := performance.NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectRollback()
		_, err := svc.Update(ctx, reviewerID.String(), uuid.NewString(), performance.UpdateAppraisalRequest{
			KPIs: []performance.KPIUpdateRequest{{ID: appraisal.KPIs[0].ID.String(), SelfRating: intPtr(5)}},
		})

		assert.ErrorIs(t, err, performanceerrors.ErrNotAppraisalOwner)
	})

	t.Run("subject cannot act during manager review", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		appraisal, employeeID, _ := newAppraisal(performance.StatusManagerReview)
		repo := newPerformanceFake()
		repo.findByIDFn = func(ctx context.Context, id string) (*performance.Appraisal, error) {
			return appraisal, nil
		}

		svc := performance.NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectRollback()
		_, err := svc.Update(ctx, employeeID.String(), uuid.NewString(), performance.UpdateAppraisalRequest{
			Status: performance.StatusCompleted,
		})

		assert.ErrorIs(t, err, performanceerrors.ErrNotReviewer)
	})

	t.Run("appraisal without reviewer refuses manager review writes", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		appraisal, employeeID, _ := newAppraisal(performance.StatusManagerReview)
		appraisal.ReviewerID = nil
		repo := newPerformanceFake()
		repo.findByIDFn = func(ctx context.Context, id string) (*performance.Appraisal, error) {
			return appraisal, nil
		}

		svc := performance.NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectRollback()
		_, err := svc.Update(ctx, employeeID.String(), uuid.NewString(), performance.UpdateAppraisalRequest{
			KPIs: []performance.KPIUpdateRequest{{ID: appraisal.KPIs[0].ID.String(), ManagerRating: intPtr(4)}},
		})

		assert.ErrorIs(t, err, performanceerrors.ErrNotReviewer)
	})
}
