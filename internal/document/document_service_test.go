package document_test

import (
	"context"
	"database/sql"
	"encoding/base64"
	"testing"

	"go-ems/internal/document"
	documenterrors "go-ems/internal/document/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeDocumentRepository struct {
	withTxFn         func(tx *sql.Tx) document.Repository
	createFn         func(ctx context.Context, d *document.Document) error
	findByIDFn       func(ctx context.Context, id string) (*document.Document, error)
	findAllByOwnerFn func(ctx context.Context, ownerID string) ([]document.Document, error)
	deleteFn         func(ctx context.Context, id string) error
}

func (f *fakeDocumentRepository) WithTx(tx *sql.Tx) document.Repository { return f.withTxFn(tx) }
func (f *fakeDocumentRepository) Create(ctx context.Context, d *document.Document) error {
	return f.createFn(ctx, d)
}
func (f *fakeDocumentRepository) FindByID(ctx context.Context, id string) (*document.Document, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeDocumentRepository) FindAllByOwner(ctx context.Context, ownerID string) ([]document.Document, error) {
	return f.findAllByOwnerFn(ctx, ownerID)
}
func (f *fakeDocumentRepository) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func newDocumentFake() *fakeDocumentRepository {
	f := &fakeDocumentRepository{}
	f.withTxFn = func(tx *sql.Tx) document.Repository { return f }
	return f
}

func TestDocumentService_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes and stores the payload", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		var saved document.Document
		repo := newDocumentFake()
		repo.createFn = func(ctx context.Context, d *document.Document) error {
			saved = *d
			return nil
		}

		svc := document.NewService(db, repo)

		content := []byte("offer letter body")
		resp, err := svc.Upload(ctx, uuid.NewString(), document.UploadDocumentRequest{
			Title:    "Offer Letter",
			DocType:  "Letter",
			FileName: "offer.pdf",
			FileData: base64.StdEncoding.EncodeToString(content),
		})

		assert.NoError(t, err)
		assert.Equal(t, content, saved.FileData)
		assert.Equal(t, int64(len(content)), resp.FileSize)
		assert.Equal(t, "offer.pdf", resp.FileName)
	})

	t.Run("rejects undecodable payload", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		svc := document.NewService(db, newDocumentFake())

		_, err := svc.Upload(ctx, uuid.NewString(), document.UploadDocumentRequest{
			Title:    "Broken",
			DocType:  "Letter",
			FileName: "x.bin",
			FileData: "%%% not base64 %%%",
		})
		assert.ErrorIs(t, err, documenterrors.ErrInvalidFile)
	})
}

func TestDocumentService_Download(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("owner gets the payload", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		repo := newDocumentFake()
		repo.findByIDFn = func(ctx context.Context, id string) (*document.Document, error) {
			return &document.Document{
				ID:       uuid.New(),
				OwnerID:  ownerID,
				FileName: "payslip.pdf",
				FileData: []byte("pdf bytes"),
			}, nil
		}

		svc := document.NewService(db, repo)

		doc, err := svc.Download(ctx, ownerID.String(), uuid.NewString())
		assert.NoError(t, err)
		assert.Equal(t, []byte("pdf bytes"), doc.FileData)
	})

	t.Run("non-owner is refused", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		repo := newDocumentFake()
		repo.findByIDFn = func(ctx context.Context, id string) (*document.Document, error) {
			return &document.Document{ID: uuid.New(), OwnerID: ownerID, FileData: []byte("private")}, nil
		}

		svc := document.NewService(db, repo)

		doc, err := svc.Download(ctx, uuid.NewString(), uuid.NewString())
		assert.ErrorIs(t, err, documenterrors.ErrNotOwner)
		assert.Nil(t, doc)
	})

	t.Run("unknown document", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		repo := newDocumentFake()
		repo.findByIDFn = func(ctx context.Context, id string) (*document.Document, error) {
			return nil, gorm.ErrRecordNotFound
		}

		svc := document.NewService(db, repo)

		_, err := svc.Download(ctx, ownerID.String(), uuid.NewString())
		assert.ErrorIs(t, err, documenterrors.ErrDocumentNotFound)
	})
}

func TestDocumentService_Delete(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("owner can delete", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		var deleted string
		repo := newDocumentFake()
		repo.findByIDFn = func(ctx context.Context, id string) (*document.Document, error) {
			return &document.Document{ID: uuid.New(), OwnerID: ownerID}, nil
		}
		repo.deleteFn = func(ctx context.Context, id string) error {
			deleted = id
			return nil
		}

		svc := document.NewService(db, repo)

		id := uuid.NewString()
		assert.NoError(t, svc.Delete(ctx, ownerID.String(), id))
		assert.Equal(t, id, deleted)
	})

	t.Run("non-owner is refused", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		repo := newDocumentFake()
		repo.findByIDFn = func(ctx context.Context, id string) (*document.Document, error) {
			return &document.Document{ID: uuid.New(), OwnerID: ownerID}, nil
		}

		svc := document.NewService(db, repo)

		err := svc.Delete(ctx, uuid.NewString(), uuid.NewString())
		assert.ErrorIs(t, err, documenterrors.ErrNotOwner)
	})

	t.Run("unknown document", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		repo := newDocumentFake()
		repo.findByIDFn = func(ctx context.Context, id string) (*document.Document, error) {
			return nil, gorm.ErrRecordNotFound
		}

		svc := document.NewService(db, repo)

		err := svc.Delete(ctx, ownerID.String(), uuid.NewString())
		assert.ErrorIs(t, err, documenterrors.ErrDocumentNotFound)
	})
}
