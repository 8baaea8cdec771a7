package document_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-ems/internal/document"
	documenterrors "go-ems/internal/document/errors"
	"go-ems/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeDocumentService struct {
	UploadFn         func(ctx context.Context, ownerID string, req document.UploadDocumentRequest) (document.DocumentResponse, error)
	GetMyDocumentsFn func(ctx context.Context, ownerID string) ([]document.DocumentResponse, error)
	DownloadFn       func(ctx context.Context, ownerID, id string) (*document.Document, error)
	DeleteFn         func(ctx context.Context, ownerID, id string) error
}

func (f *fakeDocumentService) Upload(ctx context.Context, ownerID string, req document.UploadDocumentRequest) (document.DocumentResponse, error) {
	return f.UploadFn(ctx, ownerID, req)
}
func (f *fakeDocumentService) GetMyDocuments(ctx context.Context, ownerID string) ([]document.DocumentResponse, error) {
	return f.GetMyDocumentsFn(ctx, ownerID)
}
func (f *fakeDocumentService) Download(ctx context.Context, ownerID, id string) (*document.Document, error) {
	return f.DownloadFn(ctx, ownerID, id)
}
func (f *fakeDocumentService) Delete(ctx context.Context, ownerID, id string) error {
	return f.DeleteFn(ctx, ownerID, id)
}

func TestDocumentHandler_Upload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("validation error", func(t *testing.T) {
		h := document.NewHandler(&fakeDocumentService{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/upload", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Upload(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeInvalidInput)
	})
}

func TestDocumentHandler_Download(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes the caller id to the service", func(t *testing.T) {
		callerID := uuid.NewString()
		docID := uuid.NewString()

		svc := &fakeDocumentService{
			DownloadFn: func(ctx context.Context, ownerID, id string) (*document.Document, error) {
				assert.Equal(t, callerID, ownerID)
				assert.Equal(t, docID, id)
				return &document.Document{FileName: "offer.pdf", FileData: []byte("pdf bytes")}, nil
			},
		}

		h := document.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/documents/"+docID, nil)
		c.Params = gin.Params{{Key: "id", Value: docID}}
		c.Set("employee_id", callerID)

		h.Download(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "pdf bytes", w.Body.String())
		assert.Contains(t, w.Header().Get("Content-Disposition"), "offer.pdf")
	})

	t.Run("foreign document is forbidden", func(t *testing.T) {
		svc := &fakeDocumentService{
			DownloadFn: func(ctx context.Context, ownerID, id string) (*document.Document, error) {
				return nil, documenterrors.ErrNotOwner
			},
		}

		h := document.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		docID := uuid.NewString()
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/documents/"+docID, nil)
		c.Params = gin.Params{{Key: "id", Value: docID}}
		c.Set("employee_id", uuid.NewString())

		h.Download(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeForbidden)
	})
}
