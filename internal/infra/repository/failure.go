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

type FailureWriteQueries interface {
	CreateFailureRecord(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateFailureRecordParams) (sqlc.FailureRecords, error)
	GetDueFailureRecords(ctx context.Context, db sqlc.DBTX, arg sqlc.GetDueFailureRecordsParams) ([]sqlc.FailureRecords, error)
	MarkFailureRecordRetrying(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkFailureRecordRetryingParams) error
	MarkFailureRecordRecovered(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkFailureRecordRecoveredParams) error
	RescheduleFailureRecord(ctx context.Context, db sqlc.DBTX, arg sqlc.RescheduleFailureRecordParams) error
	AbandonFailureRecord(ctx context.Context, db sqlc.DBTX, arg sqlc.AbandonFailureRecordParams) error
}

type FailureRepository struct {
	queries FailureWriteQueries
	db      sqlc.DBTX
}

func NewFailureRepository(queries *sqlc.Queries, db sqlc.DBTX) *FailureRepository {
	return &FailureRepository{
		queries: queries,
		db:      db,
	}
}

func (r *FailureRepository) Create(ctx context.Context, payload string, maxRetryCount int, nextRetryAt time.Time, lastError string) error {
	params := sqlc.CreateFailureRecordParams{
		Payload:          payload,
		MaxRetryCount:    int32(maxRetryCount), // #nosec G115 -- small config value
		NextRetryAt:      pgconv.TimestamptzFromTime(nextRetryAt),
		LastErrorMessage: pgconv.TextFromString(lastError),
	}

	if _, err := r.queries.CreateFailureRecord(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create failure record", err)
	}
	return nil
}

func (r *FailureRepository) GetDue(ctx context.Context, now time.Time, limit int) ([]jobs.FailureRecord, error) {
	params := sqlc.GetDueFailureRecordsParams{
		NextRetryAt: pgconv.TimestamptzFromTime(now),
		Limit:       int32(limit), // #nosec G115 -- small config value
	}

	rows, err := r.queries.GetDueFailureRecords(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch due failure records", err)
	}

	records := make([]jobs.FailureRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, jobs.FailureRecord{
			ID:            row.ID,
			Payload:       row.Payload,
			Status:        row.Status,
			RetryCount:    int(row.RetryCount),
			MaxRetryCount: int(row.MaxRetryCount),
			NextRetryAt:   pgconv.TimePtrFromPgtype(row.NextRetryAt),
		})
	}
	return records, nil
}

func (r *FailureRepository) MarkRetrying(ctx context.Context, id uuid.UUID, at time.Time) error {
	params := sqlc.MarkFailureRecordRetryingParams{
		ID:          id,
		LastRetryAt: pgconv.TimestamptzFromTime(at),
	}

	if err := r.queries.MarkFailureRecordRetrying(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to mark failure record retrying", err)
	}
	return nil
}

func (r *FailureRepository) MarkRecovered(ctx context.Context, id uuid.UUID, at time.Time) error {
	params := sqlc.MarkFailureRecordRecoveredParams{
		ID:          id,
		RecoveredAt: pgconv.TimestamptzFromTime(at),
	}

	if err := r.queries.MarkFailureRecordRecovered(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to mark failure record recovered", err)
	}
	return nil
}

func (r *FailureRepository) Reschedule(ctx context.Context, id uuid.UUID, nextRetryAt time.Time, lastError string) error {
	params := sqlc.RescheduleFailureRecordParams{
		ID:               id,
		NextRetryAt:      pgconv.TimestamptzFromTime(nextRetryAt),
		LastErrorMessage: pgconv.TextFromString(lastError),
	}

	if err := r.queries.RescheduleFailureRecord(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to reschedule failure record", err)
	}
	return nil
}

func (r *FailureRepository) Abandon(ctx context.Context, id uuid.UUID, lastError string) error {
	params := sqlc.AbandonFailureRecordParams{
		ID:               id,
		LastErrorMessage: pgconv.TextFromString(lastError),
	}

	if err := r.queries.AbandonFailureRecord(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to abandon failure record", err)
	}
	return nil
}
