package repository

import (
	"context"
	"time"

	"coupon-issuance/internal/infra"
	sqlc "coupon-issuance/internal/infra/sqlc/generated"
	"coupon-issuance/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type GrantWriteQueries interface {
	BulkInsertGrantRecords(ctx context.Context, db sqlc.DBTX, arg sqlc.BulkInsertGrantRecordsParams) (int64, error)
	GetExistingGrantUsers(ctx context.Context, db sqlc.DBTX, arg sqlc.GetExistingGrantUsersParams) ([]uuid.UUID, error)
	GrantRecordExists(ctx context.Context, db sqlc.DBTX, arg sqlc.GrantRecordExistsParams) (bool, error)
}

type GrantRepository struct {
	queries GrantWriteQueries
	db      sqlc.DBTX
}

func NewGrantRepository(queries *sqlc.Queries, db sqlc.DBTX) *GrantRepository {
	return &GrantRepository{
		queries: queries,
		db:      db,
	}
}

// BulkInsert writes new grant records in one statement. ON CONFLICT DO
// NOTHING absorbs duplicate-key races, so the returned count is exactly the
// newly persisted rows.
func (r *GrantRepository) BulkInsert(ctx context.Context, db sqlc.DBTX, campaignID uuid.UUID, userIDs []uuid.UUID, issuedAt, expiresAt time.Time) (int64, error) {
	params := sqlc.BulkInsertGrantRecordsParams{
		CampaignID: campaignID,
		UserIds:    userIDs,
		IssuedAt:   pgconv.TimestamptzFromTime(issuedAt),
		ExpiresAt:  pgconv.TimestamptzFromTime(expiresAt),
	}

	inserted, err := r.queries.BulkInsertGrantRecords(ctx, db, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to bulk insert grant records", err)
	}
	return inserted, nil
}

func (r *GrantRepository) ExistingUsers(ctx context.Context, db sqlc.DBTX, campaignID uuid.UUID, userIDs []uuid.UUID) (map[uuid.UUID]struct{}, error) {
	params := sqlc.GetExistingGrantUsersParams{
		CampaignID: campaignID,
		UserIds:    userIDs,
	}

	rows, err := r.queries.GetExistingGrantUsers(ctx, db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load existing grant users", err)
	}

	existing := make(map[uuid.UUID]struct{}, len(rows))
	for _, userID := range rows {
		existing[userID] = struct{}{}
	}
	return existing, nil
}

func (r *GrantRepository) Exists(ctx context.Context, campaignID, userID uuid.UUID) (bool, error) {
	params := sqlc.GrantRecordExistsParams{
		CampaignID: campaignID,
		UserID:     userID,
	}

	exists, err := r.queries.GrantRecordExists(ctx, r.db, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check grant record existence", err)
	}
	return exists, nil
}
