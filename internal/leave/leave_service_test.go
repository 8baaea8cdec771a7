package leave_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-ems/internal/leave"
	leaveerrors "go-ems/internal/leave/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeLeaveRepository struct {
	withTxFn               func(tx *sql.Tx) leave.Repository
	createFn               func(ctx context.Context, l *leave.Leave) error
	findByIDFn             func(ctx context.Context, id string) (*leave.Leave, error)
	findAllByEmployeeFn    func(ctx context.Context, employeeID string) ([]leave.Leave, error)
	findPendingFn          func(ctx context.Context) ([]leave.Leave, error)
	hasOverlappingPeriodFn func(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
	updateFn               func(ctx context.Context, l *leave.Leave) error
}

func (f *fakeLeaveRepository) WithTx(tx *sql.Tx) leave.Repository { return f.withTxFn(tx) }
func (f *fakeLeaveRepository) Create(ctx context.Context, l *leave.Leave) error {
	return f.createFn(ctx, l)
}
func (f *fakeLeaveRepository) FindByID(ctx context.Context, id string) (*leave.Leave, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeLeaveRepository) FindAllByEmployee(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	return f.findAllByEmployeeFn(ctx, employeeID)
}
func (f *fakeLeaveRepository) FindPending(ctx context.Context) ([]leave.Leave, error) {
	return f.findPendingFn(ctx)
}
func (f *fakeLeaveRepository) HasOverlappingPeriod(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	return f.hasOverlappingPeriodFn(ctx, employeeID, start, end)
}
func (f *fakeLeaveRepository) Update(ctx context.Context, l *leave.Leave) error {
	return f.updateFn(ctx, l)
}

func newLeaveFake() *fakeLeaveRepository {
	f := &fakeLeaveRepository{}
	f.withTxFn = func(tx *sql.Tx) leave.Repository { return f }
	f.hasOverlappingPeriodFn = func(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
		return false, nil
	}
	return f
}

func TestLeaveService_Apply(t *testing.T) {
	ctx := context.Background()

	t.Run("inclusive day count", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		var saved leave.Leave
		repo := newLeaveFake()
		repo.createFn = func(ctx context.Context, l *leave.Leave) error { saved = *l; return nil }

		svc := leave.NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectCommit()
		resp, err := svc.Apply(ctx, uuid.NewString(), leave.ApplyLeaveRequest{
			LeaveType: "Casual",
			StartDate: "2025-03-10",
			EndDate:   "2025-03-12",
			Reason:    "Family function",
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, resp.TotalDays)
		assert.Equal(t, 3, saved.TotalDays)
		assert.Equal(t, leave.StatusPending, saved.Status)
	})

	t.Run("single day counts as one", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		repo := newLeaveFake()
		repo.createFn = func(ctx context.Context, l *leave.Leave) error { return nil }

		svc := leave.NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectCommit()
		resp, err := svc.Apply(ctx, uuid.NewString(), leave.ApplyLeaveRequest{
			LeaveType: "Sick",
			StartDate: "2025-03-10",
			EndDate:   "2025-03-10",
			Reason:    "Fever",
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, resp.TotalDays)
	})

	t.Run("end before start", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		repo := newLeaveFake()
		svc := leave.NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectRollback()
		_, err := svc.Apply(ctx, uuid.NewString(), leave.ApplyLeaveRequest{
			LeaveType: "Casual",
			StartDate: "2025-03-12",
			EndDate:   "2025-03-10",
			Reason:    "Trip",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})

	t.Run("overlapping period rejected", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		repo := newLeaveFake()
		repo.hasOverlappingPeriodFn = func(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
			return true, nil
		}

		svc := leave.NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectRollback()
		_, err := svc.Apply(ctx, uuid.NewString(), leave.ApplyLeaveRequest{
			LeaveType: "Casual",
			StartDate: "2025-03-10",
			EndDate:   "2025-03-12",
			Reason:    "Trip",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveOverlap)
	})
}

func TestLeaveService_Decide(t *testing.T) {
	ctx := context.Background()

	t.Run("approve pending", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		leaveID := uuid.New()
		var saved leave.Leave
		repo := newLeaveFake()
		repo.findByIDFn = func(ctx context.Context, id string) (*leave.Leave, error) {
			return &leave.Leave{ID: leaveID, Status: leave.StatusPending}, nil
		}
		repo.updateFn = func(ctx context.Context, l *leave.Leave) error { saved = *l; return nil }

		svc := leave.NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectCommit()
		resp, err := svc.Decide(ctx, uuid.NewString(), leaveID.String(), leave.DecideLeaveRequest{
			Status: leave.StatusApproved,
		})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
		assert.NotNil(t, saved.DecidedBy)
		assert.NotNil(t, saved.DecidedAt)
	})

	t.Run("already decided is terminal", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		repo := newLeaveFake()
		repo.findByIDFn = func(ctx context.Context, id string) (*leave.Leave, error) {
			return &leave.Leave{ID: uuid.New(), Status: leave.StatusApproved}, nil
		}

		svc := leave.NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectRollback()
		_, err := svc.Decide(ctx, uuid.NewString(), uuid.NewString(), leave.DecideLeaveRequest{
			Status: leave.StatusRejected,
		})

		assert.ErrorIs(t, err, leaveerrors.ErrAlreadyDecided)
	})

	t.Run("rejection keeps reason", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		reason := "Too many pending deliverables"
		var saved leave.Leave
		repo := newLeaveFake()
		repo.findByIDFn = func(ctx context.Context, id string) (*leave.Leave, error) {
			return &leave.Leave{ID: uuid.New(), Status: leave.StatusPending}, nil
		}
		repo.updateFn = func(ctx context.Context, l *leave.Leave) error { saved = *l; return nil }

		svc := leave.NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectCommit()
		resp, err := svc.Decide(ctx, uuid.NewString(), uuid.NewString(), leave.DecideLeaveRequest{
			Status:          leave.StatusRejected,
			RejectionReason: &reason,
		})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, resp.Status)
		assert.Equal(t, &reason, saved.RejectionReason)
	})
}
