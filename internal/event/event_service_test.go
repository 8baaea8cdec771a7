package event_test

import (
	"context"
	"database/sql"
	"testing"

	"go-ems/internal/event"
	eventerrors "go-ems/internal/event/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEventRepository struct {
	withTxFn   func(tx *sql.Tx) event.Repository
	createFn   func(ctx context.Context, e *event.Event) error
	findByIDFn func(ctx context.Context, id string) (*event.Event, error)
	findAllFn  func(ctx context.Context) ([]event.Event, error)
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeEventRepository) WithTx(tx *sql.Tx) event.Repository { return f.withTxFn(tx) }
func (f *fakeEventRepository) Create(ctx context.Context, e *event.Event) error {
	return f.createFn(ctx, e)
}
func (f *fakeEventRepository) FindByID(ctx context.Context, id string) (*event.Event, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeEventRepository) FindAll(ctx context.Context) ([]event.Event, error) {
	return f.findAllFn(ctx)
}
func (f *fakeEventRepository) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func newEventFake() *fakeEventRepository {
	f := &fakeEventRepository{}
	f.withTxFn = func(tx *sql.Tx) event.Repository { return f }
	return f
}

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults audience to all", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		var saved event.Event
		repo := newEventFake()
		repo.createFn = func(ctx context.Context, e *event.Event) error {
			saved = *e
			return nil
		}

		svc := event.NewService(db, repo)

		resp, err := svc.Create(ctx, uuid.NewString(), event.CreateEventRequest{
			Title:     "Diwali Holiday",
			EventType: event.TypeHoliday,
			EventDate: "2025-10-20",
		})

		assert.NoError(t, err)
		assert.Equal(t, "All", resp.Audience)
		assert.Equal(t, "2025-10-20", resp.EventDate)
		assert.Equal(t, event.TypeHoliday, saved.EventType)
		assert.NotNil(t, saved.CreatedBy)
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		svc := event.NewService(db, newEventFake())

		_, err := svc.Create(ctx, uuid.NewString(), event.CreateEventRequest{
			Title:     "Townhall",
			EventType: event.TypeMeeting,
			EventDate: "20-10-2025",
		})
		assert.ErrorIs(t, err, eventerrors.ErrInvalidEventDate)
	})
}

func TestEventService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown event", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		repo := newEventFake()
		repo.findByIDFn = func(ctx context.Context, id string) (*event.Event, error) {
			return nil, gorm.ErrRecordNotFound
		}

		svc := event.NewService(db, repo)
		assert.ErrorIs(t, svc.Delete(ctx, uuid.NewString()), eventerrors.ErrEventNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		svc := event.NewService(db, newEventFake())
		assert.ErrorIs(t, svc.Delete(ctx, "nope"), eventerrors.ErrInvalidEventID)
	})
}
