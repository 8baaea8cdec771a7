package payroll_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go-ems/internal/events"
	"go-ems/internal/messaging/kafka"
	"go-ems/internal/payroll"
	payrollerrors "go-ems/internal/payroll/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakePayrollRepository struct {
	withTxFn                  func(tx *sql.Tx) payroll.Repository
	saveStructureFn           func(ctx context.Context, s *payroll.SalaryStructure) error
	findStructureByEmployeeFn func(ctx context.Context, employeeID string) (*payroll.SalaryStructure, error)
	createPayslipFn           func(ctx context.Context, p *payroll.Payslip) error
	findPayslipByIDFn         func(ctx context.Context, id string) (*payroll.Payslip, error)
	findPayslipsByEmployeeFn  func(ctx context.Context, employeeID string) ([]payroll.Payslip, error)
	findAllPayslipsFn         func(ctx context.Context, month, year int) ([]payroll.Payslip, error)
	updatePayslipFn           func(ctx context.Context, p *payroll.Payslip) error
}

func (f *fakePayrollRepository) WithTx(tx *sql.Tx) payroll.Repository { return f.withTxFn(tx) }
func (f *fakePayrollRepository) SaveStructure(ctx context.Context, s *payroll.SalaryStructure) error {
	return f.saveStructureFn(ctx, s)
}
func (f *fakePayrollRepository) FindStructureByEmployee(ctx context.Context, employeeID string) (*payroll.SalaryStructure, error) {
	return f.findStructureByEmployeeFn(ctx, employeeID)
}
func (f *fakePayrollRepository) CreatePayslip(ctx context.Context, p *payroll.Payslip) error {
	return f.createPayslipFn(ctx, p)
}
func (f *fakePayrollRepository) FindPayslipByID(ctx context.Context, id string) (*payroll.Payslip, error) {
	return f.findPayslipByIDFn(ctx, id)
}
func (f *fakePayrollRepository) FindPayslipsByEmployee(ctx context.Context, employeeID string) ([]payroll.Payslip, error) {
	return f.findPayslipsByEmployeeFn(ctx, employeeID)
}
func (f *fakePayrollRepository) FindAllPayslips(ctx context.Context, month, year int) ([]payroll.Payslip, error) {
	return f.findAllPayslipsFn(ctx, month, year)
}
func (f *fakePayrollRepository) UpdatePayslip(ctx context.Context, p *payroll.Payslip) error {
	return f.updatePayslipFn(ctx, p)
}

type fakeOutboxRepository struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}
func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }
func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

func newPayrollFake() *fakePayrollRepository {
	f := &fakePayrollRepository{}
	f.withTxFn = func(tx *sql.Tx) payroll.Repository { return f }
	return f
}

func sampleStructure(employeeID uuid.UUID) *payroll.SalaryStructure {
	return &payroll.SalaryStructure{
		ID:               uuid.New(),
		EmployeeID:       employeeID,
		Basic:            50000,
		HRA:              10000,
		DA:               5000,
		SpecialAllowance: 2000,
		PF:               3000,
		Tax:              4000,
	}
}

func TestPayrollService_SaveStructure(t *testing.T) {
	ctx := context.Background()

	t.Run("derives gross and net", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		var saved payroll.SalaryStructure
		repo := newPayrollFake()
		repo.saveStructureFn = func(ctx context.Context, s *payroll.SalaryStructure) error {
			saved = *s
			return nil
		}

		svc := payroll.NewService(db, repo)

		resp, err := svc.SaveStructure(ctx, payroll.SaveStructureRequest{
			EmployeeID:       uuid.NewString(),
			Basic:            50000,
			HRA:              10000,
			DA:               5000,
			SpecialAllowance: 2000,
			PF:               3000,
			Tax:              4000,
		})

		assert.NoError(t, err)
		assert.Equal(t, float64(67000), resp.Gross)
		assert.Equal(t, float64(60000), resp.Net)
		assert.Equal(t, float64(50000), saved.Basic)
	})

	t.Run("invalid employee id", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		svc := payroll.NewService(db, newPayrollFake())

		_, err := svc.SaveStructure(ctx, payroll.SaveStructureRequest{EmployeeID: "not-a-uuid", Basic: 1000})
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidEmployeeID)
	})
}

func TestPayrollService_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshots structure and computes totals", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		employeeID := uuid.New()
		var saved payroll.Payslip
		repo := newPayrollFake()
		repo.findStructureByEmployeeFn = func(ctx context.Context, id string) (*payroll.SalaryStructure, error) {
			return sampleStructure(employeeID), nil
		}
		repo.createPayslipFn = func(ctx context.Context, p *payroll.Payslip) error {
			saved = *p
			return nil
		}

		outbox := &fakeOutboxRepository{}
		svc := payroll.NewServiceWithOutbox(db, repo, outbox)

		mock.ExpectBegin()
		mock.ExpectCommit()
		resp, err := svc.Generate(ctx, uuid.NewString(), payroll.GeneratePayslipRequest{
			EmployeeID: employeeID.String(),
			Month:      3,
			Year:       2025,
			LossOfPay:  2000,
		})

		assert.NoError(t, err)
		assert.Equal(t, float64(65000), resp.TotalEarnings)
		assert.Equal(t, float64(7000), resp.TotalDeductions)
		assert.Equal(t, float64(58000), resp.NetPay)
		assert.Equal(t, payroll.StatusDraft, resp.Status)
		assert.Equal(t, float64(50000), saved.Basic)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("writes outbox event in the same transaction", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		employeeID := uuid.New()
		repo := newPayrollFake()
		repo.findStructureByEmployeeFn = func(ctx context.Context, id string) (*payroll.SalaryStructure, error) {
			return sampleStructure(employeeID), nil
		}
		repo.createPayslipFn = func(ctx context.Context, p *payroll.Payslip) error { return nil }

		outbox := &fakeOutboxRepository{}
		svc := payroll.NewServiceWithOutbox(db, repo, outbox)

		actorID := uuid.NewString()
		mock.ExpectBegin()
		mock.ExpectCommit()
		resp, err := svc.Generate(ctx, actorID, payroll.GeneratePayslipRequest{
			EmployeeID: employeeID.String(),
			Month:      4,
			Year:       2025,
		})

		assert.NoError(t, err)
		assert.Len(t, outbox.created, 1)
		assert.Equal(t, events.PayslipGeneratedTopic, outbox.created[0].Topic)
		assert.Equal(t, "payslip_generated", outbox.created[0].EventType)

		var event events.PayslipGeneratedEvent
		assert.NoError(t, json.Unmarshal(outbox.created[0].Payload, &event))
		assert.Equal(t, resp.ID, event.PayslipID)
		assert.Equal(t, actorID, event.RequestedBy)
	})

	t.Run("no structure", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		repo := newPayrollFake()
		repo.findStructureByEmployeeFn = func(ctx context.Context, id string) (*payroll.SalaryStructure, error) {
			return nil, gorm.ErrRecordNotFound
		}

		svc := payroll.NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectRollback()
		_, err := svc.Generate(ctx, uuid.NewString(), payroll.GeneratePayslipRequest{
			EmployeeID: uuid.NewString(),
			Month:      3,
			Year:       2025,
		})

		assert.ErrorIs(t, err, payrollerrors.ErrStructureNotFound)
	})

	t.Run("duplicate period", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		employeeID := uuid.New()
		repo := newPayrollFake()
		repo.findStructureByEmployeeFn = func(ctx context.Context, id string) (*payroll.SalaryStructure, error) {
			return sampleStructure(employeeID), nil
		}
		repo.createPayslipFn = func(ctx context.Context, p *payroll.Payslip) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_payslip_period"}
		}

		svc := payroll.NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectRollback()
		_, err := svc.Generate(ctx, uuid.NewString(), payroll.GeneratePayslipRequest{
			EmployeeID: employeeID.String(),
			Month:      3,
			Year:       2025,
		})

		assert.ErrorIs(t, err, payrollerrors.ErrPayslipExists)
	})
}

func TestPayrollService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	run := func(t *testing.T, from, to string) error {
		db, _, _ := sqlmock.New()
		defer db.Close()

		repo := newPayrollFake()
		repo.findPayslipByIDFn = func(ctx context.Context, id string) (*payroll.Payslip, error) {
			return &payroll.Payslip{ID: uuid.New(), EmployeeID: uuid.New(), Status: from}, nil
		}
		repo.updatePayslipFn = func(ctx context.Context, p *payroll.Payslip) error { return nil }

		svc := payroll.NewService(db, repo)
		_, err := svc.UpdateStatus(ctx, uuid.NewString(), payroll.UpdatePayslipStatusRequest{Status: to})
		return err
	}

	t.Run("draft to published", func(t *testing.T) {
		assert.NoError(t, run(t, payroll.StatusDraft, payroll.StatusPublished))
	})

	t.Run("published to paid", func(t *testing.T) {
		assert.NoError(t, run(t, payroll.StatusPublished, payroll.StatusPaid))
	})

	t.Run("backwards is rejected", func(t *testing.T) {
		err := run(t, payroll.StatusPublished, payroll.StatusDraft)
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidStatusTransition)
	})

	t.Run("paid is terminal", func(t *testing.T) {
		err := run(t, payroll.StatusPaid, payroll.StatusPublished)
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidStatusTransition)
	})

	t.Run("same status is rejected", func(t *testing.T) {
		err := run(t, payroll.StatusDraft, payroll.StatusDraft)
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidStatusTransition)
	})
}

func TestPayrollService_PayslipPDF(t *testing.T) {
	ctx := context.Background()

	t.Run("not rendered yet", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		repo := newPayrollFake()
		repo.findPayslipByIDFn = func(ctx context.Context, id string) (*payroll.Payslip, error) {
			return &payroll.Payslip{ID: uuid.New(), EmployeeID: uuid.New(), Status: payroll.StatusDraft}, nil
		}

		svc := payroll.NewService(db, repo)
		_, _, err := svc.GetPayslipPDF(ctx, uuid.NewString())
		assert.ErrorIs(t, err, payrollerrors.ErrPayslipNotRendered)
	})

	t.Run("render writes the file and records its path", func(t *testing.T) {
		origDir, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		if err := os.Chdir(t.TempDir()); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { os.Chdir(origDir) })

		db, _, _ := sqlmock.New()
		defer db.Close()

		payslip := &payroll.Payslip{
			ID:              uuid.New(),
			EmployeeID:      uuid.New(),
			Month:           3,
			Year:            2025,
			Basic:           50000,
			HRA:             10000,
			DA:              5000,
			TotalEarnings:   65000,
			TotalDeductions: 7000,
			NetPay:          58000,
			Status:          payroll.StatusDraft,
		}

		var updated payroll.Payslip
		repo := newPayrollFake()
		repo.findPayslipByIDFn = func(ctx context.Context, id string) (*payroll.Payslip, error) {
			return payslip, nil
		}
		repo.updatePayslipFn = func(ctx context.Context, p *payroll.Payslip) error {
			updated = *p
			return nil
		}

		svc := payroll.NewService(db, repo)
		assert.NoError(t, svc.RenderPayslipPDF(ctx, payslip.ID.String()))

		if assert.NotNil(t, updated.PayslipURL) {
			assert.Equal(t, filepath.Join(payroll.PayslipDir, payslip.ID.String()+".pdf"), *updated.PayslipURL)
			data, err := os.ReadFile(*updated.PayslipURL)
			assert.NoError(t, err)
			assert.True(t, len(data) > 0)
		}
		assert.NotNil(t, updated.PayslipGeneratedAt)
	})

	t.Run("download serves the rendered file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "slip.pdf")
		assert.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 test"), 0o644))

		db, _, _ := sqlmock.New()
		defer db.Close()

		repo := newPayrollFake()
		repo.findPayslipByIDFn = func(ctx context.Context, id string) (*payroll.Payslip, error) {
			return &payroll.Payslip{
				ID:         uuid.New(),
				EmployeeID: uuid.New(),
				Month:      3,
				Year:       2025,
				Status:     payroll.StatusPublished,
				PayslipURL: &path,
			}, nil
		}

		svc := payroll.NewService(db, repo)
		data, name, err := svc.GetPayslipPDF(ctx, uuid.NewString())

		assert.NoError(t, err)
		assert.Equal(t, "payslip-2025-03.pdf", name)
		assert.Equal(t, []byte("%PDF-1.4 test"), data)
	})
}
