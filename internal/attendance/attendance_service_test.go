package attendance

import (
	"context"
	"database/sql"
	"testing"
	"time"

	attendanceerrors "go-ems/internal/attendance/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn                func(tx *sql.Tx) Repository
	createFn                func(ctx context.Context, a *Attendance) error
	findByEmployeeAndDateFn func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	findAllByEmployeeFn     func(ctx context.Context, employeeID string) ([]Attendance, error)
	findAllFn               func(ctx context.Context) ([]Attendance, error)
	updateFn                func(ctx context.Context, a *Attendance) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository            { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, a *Attendance) error { return f.createFn(ctx, a) }
func (f *fakeRepo) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
	return f.findByEmployeeAndDateFn(ctx, employeeID, date)
}
func (f *fakeRepo) FindAllByEmployee(ctx context.Context, employeeID string) ([]Attendance, error) {
	return f.findAllByEmployeeFn(ctx, employeeID)
}
func (f *fakeRepo) FindAll(ctx context.Context) ([]Attendance, error) { return f.findAllFn(ctx) }
func (f *fakeRepo) Update(ctx context.Context, a *Attendance) error   { return f.updateFn(ctx, a) }

func TestService_PunchInAndPunchOut(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	employeeID := uuid.New().String()
	ctx := context.Background()

	var saved Attendance
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, a *Attendance) error { saved = *a; return nil }
	repo.updateFn = func(ctx context.Context, a *Attendance) error { saved = *a; return nil }
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
		if saved.ID == uuid.Nil {
			return nil, gorm.ErrRecordNotFound
		}
		cp := saved
		return &cp, nil
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	inResp, err := svc.PunchIn(ctx, employeeID, PunchInRequest{WorkMode: "Remote"})
	assert.NoError(t, err)
	assert.NotEmpty(t, inResp.ID)
	assert.Equal(t, "Remote", inResp.WorkMode)
	assert.Equal(t, StatusPresent, inResp.Status)

	mock.ExpectBegin()
	mock.ExpectCommit()
	outResp, err := svc.PunchOut(ctx, employeeID)
	assert.NoError(t, err)
	assert.NotNil(t, outResp.PunchOut)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_PunchIn_Duplicate(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	employeeID := uuid.New().String()
	ctx := context.Background()

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
		return &Attendance{ID: uuid.New()}, nil
	}

	svc := NewService(db, repo)
	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.PunchIn(ctx, employeeID, PunchInRequest{})
	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyPunchedIn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_PunchOut_WithoutPunchIn(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	employeeID := uuid.New().String()
	ctx := context.Background()

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(db, repo)
	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.PunchOut(ctx, employeeID)
	assert.ErrorIs(t, err, attendanceerrors.ErrNotPunchedIn)
}

func TestService_PunchOut_Twice(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	employeeID := uuid.New().String()
	ctx := context.Background()
	out := time.Now().UTC()

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
		return &Attendance{ID: uuid.New(), PunchOut: &out}, nil
	}

	svc := NewService(db, repo)
	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.PunchOut(ctx, employeeID)
	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyPunchedOut)
}

func TestService_PunchOut_TotalHoursRounding(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	employeeID := uuid.New().String()
	ctx := context.Background()

	// Punched in eight and a half hours ago.
	punchIn := time.Now().UTC().Add(-8*time.Hour - 30*time.Minute)

	var saved Attendance
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.updateFn = func(ctx context.Context, a *Attendance) error { saved = *a; return nil }
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
		return &Attendance{ID: uuid.New(), EmployeeID: uuid.MustParse(employeeID), PunchIn: punchIn}, nil
	}

	svc := NewService(db, repo)
	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.PunchOut(ctx, employeeID)

	assert.NoError(t, err)
	assert.Equal(t, 8.5, resp.TotalHours)
	assert.Equal(t, 8.5, saved.TotalHours)
}

func TestService_RoundHours(t *testing.T) {
	assert.Equal(t, 8.5, roundHours(8*time.Hour+30*time.Minute))
	assert.Equal(t, 8.0, roundHours(8*time.Hour+2*time.Minute))
	assert.Equal(t, 0.1, roundHours(7*time.Minute))
	assert.Equal(t, 0.0, roundHours(2*time.Minute))
}

func TestService_GetToday_Empty(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(db, repo)
	resp, err := svc.GetToday(context.Background(), uuid.NewString())

	assert.NoError(t, err)
	assert.Nil(t, resp)
}

func TestService_GetMyAttendance_NewestFirst(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	employeeID := uuid.New()
	repo := &fakeRepo{}
	repo.findAllByEmployeeFn = func(ctx context.Context, id string) ([]Attendance, error) {
		return []Attendance{
			{ID: uuid.New(), EmployeeID: employeeID, AttendanceDate: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)},
			{ID: uuid.New(), EmployeeID: employeeID, AttendanceDate: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)},
		}, nil
	}

	svc := NewService(db, repo)
	resp, err := svc.GetMyAttendance(context.Background(), employeeID.String())

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "2025-03-12", resp[0].AttendanceDate)
}
