package attendance

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"strings"
	"time"

	attendanceerrors "go-ems/internal/attendance/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	PunchIn(ctx context.Context, employeeID string, req PunchInRequest) (AttendanceResponse, error)
	PunchOut(ctx context.Context, employeeID string) (AttendanceResponse, error)
	GetToday(ctx context.Context, employeeID string) (*AttendanceResponse, error)
	GetMyAttendance(ctx context.Context, employeeID string) ([]AttendanceResponse, error)
	GetAll(ctx context.Context) ([]AttendanceResponse, error)
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) PunchIn(ctx context.Context, employeeID string, req PunchInRequest) (AttendanceResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := uuid.Parse(employeeID); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	existing, err := qtx.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}
	if existing != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyPunchedIn
	}

	workMode := req.WorkMode
	if workMode == "" {
		workMode = "Office"
	}

	row := &Attendance{
		ID:             uuid.New(),
		EmployeeID:     uuid.MustParse(employeeID),
		AttendanceDate: today,
		PunchIn:        now,
		WorkMode:       workMode,
		Status:         StatusPresent,
	}

	if err := qtx.Create(ctx, row); err != nil {
		// The unique index backs up the read: two concurrent punch-ins
		// race past FindByEmployeeAndDate, only one insert wins.
		if isDuplicatePunch(err) {
			return AttendanceResponse{}, attendanceerrors.ErrAlreadyPunchedIn
		}
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) PunchOut(ctx context.Context, employeeID string) (AttendanceResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := uuid.Parse(employeeID); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	row, err := qtx.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrNotPunchedIn
		}
		return AttendanceResponse{}, err
	}
	if row.PunchOut != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyPunchedOut
	}

	row.PunchOut = &now
	row.TotalHours = roundHours(now.Sub(row.PunchIn))

	if err := qtx.Update(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) GetToday(ctx context.Context, employeeID string) (*AttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, attendanceerrors.ErrInvalidEmployeeID
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	row, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	resp := mapToResponse(*row)
	return &resp, nil
}

func (s *service) GetMyAttendance(ctx context.Context, employeeID string) ([]AttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, attendanceerrors.ErrInvalidEmployeeID
	}

	rows, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetAll(ctx context.Context) ([]AttendanceResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

// roundHours keeps a single decimal so 8h30m comes out as 8.5.
func roundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*10) / 10
}

func isDuplicatePunch(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(strings.ToLower(err.Error()), "duplicate key value")
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             a.ID.String(),
		EmployeeID:     a.EmployeeID.String(),
		AttendanceDate: a.AttendanceDate.Format("2006-01-02"),
		PunchIn:        a.PunchIn.Format(time.RFC3339),
		TotalHours:     a.TotalHours,
		WorkMode:       a.WorkMode,
		Status:         a.Status,
	}
	if a.PunchOut != nil {
		out := a.PunchOut.Format(time.RFC3339)
		resp.PunchOut = &out
	}
	if a.Employee != nil {
		resp.EmployeeName = a.Employee.FullName
	}
	return resp
}

func mapToListResponse(rows []Attendance) []AttendanceResponse {
	res := make([]AttendanceResponse, len(rows))
	for i, a := range rows {
		res[i] = mapToResponse(a)
	}
	return res
}
