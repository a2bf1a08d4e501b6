package repository

import (
	"context"
	"time"

	"coupon-issuance/internal/infra"
	sqlc "coupon-issuance/internal/infra/sqlc/generated"
	"coupon-issuance/internal/jobs"
	"coupon-issuance/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OutboxWriteQueries interface {
	CreateOutboxEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOutboxEventParams) error
	GetDeliverableOutboxEvents(ctx context.Context, db sqlc.DBTX, arg sqlc.GetDeliverableOutboxEventsParams) ([]sqlc.OutboxEvents, error)
	MarkOutboxEventProcessed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxEventProcessedParams) error
	MarkOutboxEventFailed(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
	db      sqlc.DBTX
}

func NewOutboxRepository(queries *sqlc.Queries, db sqlc.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

// Append stages an event inside the caller's transaction so the event shares
// atomicity with the state change it describes.
func (r *OutboxRepository) Append(ctx context.Context, db sqlc.DBTX, eventType string, payload []byte) error {
	params := sqlc.CreateOutboxEventParams{
		EventType: eventType,
		Payload:   payload,
	}

	if err := r.queries.CreateOutboxEvent(ctx, db, params); err != nil {
		return infra.WrapRepoErr("failed to append outbox event", err)
	}
	return nil
}

func (r *OutboxRepository) GetDeliverable(ctx context.Context, maxRetry, limit int) ([]jobs.OutboxEvent, error) {
	params := sqlc.GetDeliverableOutboxEventsParams{
		RetryCount: int32(maxRetry), // #nosec G115 -- small config value
		Limit:      int32(limit),    // #nosec G115 -- small config value
	}

	rows, err := r.queries.GetDeliverableOutboxEvents(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch deliverable outbox events", err)
	}

	events := make([]jobs.OutboxEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, jobs.OutboxEvent{
			ID:         row.ID,
			EventType:  row.EventType,
			Payload:    row.Payload,
			Status:     row.Status,
			RetryCount: int(row.RetryCount),
		})
	}
	return events, nil
}

func (r *OutboxRepository) MarkProcessed(ctx context.Context, id uuid.UUID, at time.Time) error {
	params := sqlc.MarkOutboxEventProcessedParams{
		ID:          id,
		ProcessedAt: pgconv.TimestamptzFromTime(at),
	}

	if err := r.queries.MarkOutboxEventProcessed(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to mark outbox event processed", err)
	}
	return nil
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.MarkOutboxEventFailed(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to mark outbox event failed", err)
	}
	return nil
}
