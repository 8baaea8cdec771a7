package event

import (
	"context"
	"database/sql"
	"errors"
	"time"

	eventerrors "go-ems/internal/event/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=event_service.go -destination=mock/event_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, creatorID string, req CreateEventRequest) (EventResponse, error)
	GetAll(ctx context.Context) ([]EventResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("event.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("event.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, creatorID string, req CreateEventRequest) (EventResponse, error) {
	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		return EventResponse{}, eventerrors.ErrInvalidEventDate
	}

	audience := req.Audience
	if audience == "" {
		audience = "All"
	}

	e := &Event{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		EventType:   req.EventType,
		EventDate:   eventDate,
		Audience:    audience,
	}
	if creatorUUID, err := uuid.Parse(creatorID); err == nil {
		e.CreatedBy = &creatorUUID
	}

	if err := s.repo.Create(ctx, e); err != nil {
		s.logger.Error("create event failed", zap.String("title", req.Title), zap.Error(err))
		return EventResponse{}, err
	}

	return mapToResponse(*e), nil
}

func (s *service) GetAll(ctx context.Context) ([]EventResponse, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, mapToResponse(e))
	}
	return out, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return eventerrors.ErrInvalidEventID
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return eventerrors.ErrEventNotFound
		}
		return err
	}

	return s.repo.Delete(ctx, id)
}

func mapToResponse(e Event) EventResponse {
	resp := EventResponse{
		ID:          e.ID.String(),
		Title:       e.Title,
		Description: e.Description,
		EventType:   e.EventType,
		EventDate:   e.EventDate.Format("2006-01-02"),
		Audience:    e.Audience,
	}
	if e.CreatedBy != nil {
		resp.CreatedBy = e.CreatedBy.String()
	}
	return resp
}
