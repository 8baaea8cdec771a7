package employee_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-ems/internal/employee"
	employeeerrors "go-ems/internal/employee/errors"
	"go-ems/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	CreateFn     func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetAllFn     func(ctx context.Context) ([]employee.EmployeeResponse, error)
	GetOptionsFn func(ctx context.Context) ([]employee.EmployeeResponse, error)
	GetByIDFn    func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	UpdateFn     func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn     func(ctx context.Context, id string) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeEmployeeService) GetOptions(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.GetOptionsFn(ctx)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

const validCreateBody = `{
	"full_name": "John Doe",
	"email": "john@example.com",
	"gender": "Male",
	"date_of_birth": "1990-01-01",
	"state": "Kerala",
	"date_of_joining": "2026-01-01"
}`

func TestEmployeeHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "John Doe", req.FullName)
				return employee.EmployeeResponse{
					ID:             uuid.New().String(),
					EmployeeNumber: "EMP-000001",
					FullName:       req.FullName,
					Email:          req.Email,
				}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(validCreateBody))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "John Doe")
		assert.Contains(t, w.Body.String(), "EMP-000001")
	})

	t.Run("validation error", func(t *testing.T) {
		svc := &fakeEmployeeService{}
		h := employee.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeInvalidInput)
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, errors.New("database connection failed")
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(validCreateBody))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeInternalError)
	})

	t.Run("duplicate email returns conflict", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmailAlreadyExists
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(validCreateBody))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeConflict)
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
				return []employee.EmployeeResponse{
					{ID: uuid.NewString(), FullName: "Asha"},
					{ID: uuid.NewString(), FullName: "Bala"},
				}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Asha")
		assert.Contains(t, w.Body.String(), "Bala")
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
				return nil, errors.New("db down")
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestEmployeeHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/employees/"+uuid.NewString(), nil)
		c.Params = gin.Params{{Key: "id", Value: uuid.NewString()}}

		h.GetByID(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeNotFound)
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		id := uuid.NewString()
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, got string) error {
				assert.Equal(t, id, got)
				return nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/api/v1/employees/"+id, nil)
		c.Params = gin.Params{{Key: "id", Value: id}}

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "deleted")
	})
}
