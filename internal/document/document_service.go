package document

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"time"

	documenterrors "go-ems/internal/document/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=document_service.go -destination=mock/document_service_mock.go -package=mock
type Service interface {
	Upload(ctx context.Context, ownerID string, req UploadDocumentRequest) (DocumentResponse, error)
	GetMyDocuments(ctx context.Context, ownerID string) ([]DocumentResponse, error)
	Download(ctx context.Context, ownerID, id string) (*Document, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("document.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("document.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Upload(ctx context.Context, ownerID string, req UploadDocumentRequest) (DocumentResponse, error) {
	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return DocumentResponse{}, documenterrors.ErrInvalidDocumentID
	}

	data, err := base64.StdEncoding.DecodeString(req.FileData)
	if err != nil {
		return DocumentResponse{}, documenterrors.ErrInvalidFile
	}

	doc := &Document{
		ID:       uuid.New(),
		OwnerID:  ownerUUID,
		Title:    req.Title,
		DocType:  req.DocType,
		FileName: req.FileName,
		FileData: data,
		FileSize: int64(len(data)),
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		s.logger.Error("store document failed",
			zap.String("owner_id", ownerID),
			zap.String("file_name", req.FileName),
			zap.Error(err),
		)
		return DocumentResponse{}, err
	}

	return mapToResponse(*doc), nil
}

func (s *service) GetMyDocuments(ctx context.Context, ownerID string) ([]DocumentResponse, error) {
	docs, err := s.repo.FindAllByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, mapToResponse(d))
	}
	return out, nil
}

// Download returns the stored payload. Documents are private: only the owner
// may fetch one, the same rule Delete enforces.
func (s *service) Download(ctx context.Context, ownerID, id string) (*Document, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, documenterrors.ErrInvalidDocumentID
	}

	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, documenterrors.ErrDocumentNotFound
		}
		return nil, err
	}

	if doc.OwnerID.String() != ownerID {
		return nil, documenterrors.ErrNotOwner
	}
	return doc, nil
}

func (s *service) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return documenterrors.ErrInvalidDocumentID
	}

	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return documenterrors.ErrDocumentNotFound
		}
		return err
	}

	if doc.OwnerID.String() != ownerID {
		return documenterrors.ErrNotOwner
	}

	return s.repo.Delete(ctx, id)
}

func mapToResponse(d Document) DocumentResponse {
	return DocumentResponse{
		ID:       d.ID.String(),
		OwnerID:  d.OwnerID.String(),
		Title:    d.Title,
		DocType:  d.DocType,
		FileName: d.FileName,
		FileSize: d.FileSize,
		Created:  d.CreatedAt.Format(time.RFC3339),
	}
}
