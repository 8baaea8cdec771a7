package kafka

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
)

// outbox retry pacing: linear backoff capped at maxRetryStep steps.
const (
	retryStepInterval = 15 * time.Second
	maxRetryStep      = 10
)

// OutboxEvent is a row of the outbox_events table. Events are written in the
// same transaction as the domain change and shipped to Kafka by the worker.
type OutboxEvent struct {
	ID            string
	RequestID     string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Payload       []byte
	Status        string
	RetryCount    int
	NextRetryAt   time.Time
}

// Validate reports whether the event carries everything the worker needs to
// publish it. Called before insert so a malformed event never reaches the table.
func (e OutboxEvent) Validate() error {
	if e.ID == "" {
		return errors.New("outbox id is required")
	}
	if e.Topic == "" {
		return errors.New("outbox topic is required")
	}
	if len(e.Payload) == 0 {
		return errors.New("outbox payload is required")
	}
	switch e.Status {
	case OutboxStatusPending, OutboxStatusSent, OutboxStatusFailed:
		return nil
	default:
		return fmt.Errorf("invalid outbox status: %s", e.Status)
	}
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock

type OutboxRepository interface {
	WithTx(tx *sql.Tx) OutboxRepository
	Create(ctx context.Context, event OutboxEvent) error
	ListPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

type outboxRepository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewOutboxRepository(db *sql.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

func (r *outboxRepository) WithTx(tx *sql.Tx) OutboxRepository {
	return &outboxRepository{db: r.db, tx: tx}
}

type execer interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
}

// exec returns the enlisted transaction when present so Create shares the
// caller's commit.
func (r *outboxRepository) exec() execer {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *outboxRepository) Create(ctx context.Context, event OutboxEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	const q = `INSERT INTO outbox_events
		(id, request_id, aggregate_type, aggregate_id, event_type, topic, payload, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.exec().ExecContext(ctx, q,
		event.ID, event.RequestID, event.AggregateType, event.AggregateID,
		event.EventType, event.Topic, event.Payload, event.Status)
	return err
}

func (r *outboxRepository) ListPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	const q = `SELECT id::text, aggregate_type, aggregate_id::text, event_type,
			topic, payload, status, retry_count, COALESCE(next_retry_at, created_at)
		FROM outbox_events
		WHERE status IN ($1, $2)
			AND (next_retry_at IS NULL OR next_retry_at <= NOW())
		ORDER BY created_at ASC
		LIMIT $3`

	rows, err := r.db.QueryContext(ctx, q, OutboxStatusPending, OutboxStatusFailed, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]OutboxEvent, 0, limit)
	for rows.Next() {
		var e OutboxEvent
		err := rows.Scan(&e.ID, &e.AggregateType, &e.AggregateID, &e.EventType,
			&e.Topic, &e.Payload, &e.Status, &e.RetryCount, &e.NextRetryAt)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	const q = `UPDATE outbox_events
		SET status = $2, processed_at = NOW(), error_message = NULL, updated_at = NOW()
		WHERE id = $1`

	_, err := r.db.ExecContext(ctx, q, id, OutboxStatusSent)
	return err
}

func (r *outboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	const q = `UPDATE outbox_events
		SET status = $2,
			retry_count = retry_count + 1,
			error_message = LEFT($3, 500),
			next_retry_at = NOW() + (LEAST(retry_count + 1, $4) * $5 * INTERVAL '1 second'),
			updated_at = NOW()
		WHERE id = $1`

	_, err := r.db.ExecContext(ctx, q, id, OutboxStatusFailed, reason,
		maxRetryStep, int(retryStepInterval.Seconds()))
	return err
}
