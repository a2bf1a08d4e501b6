package repository

import (
	"context"
	"time"

	"coupon-issuance/internal/infra"
	sqlc "coupon-issuance/internal/infra/sqlc/generated"
	"coupon-issuance/internal/pkg/pgconv"
	"coupon-issuance/internal/usecase/commands"

	"github.com/google/uuid"
)

type CampaignWriteQueries interface {
	CreateCampaign(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCampaignParams) (sqlc.Campaigns, error)
	GetCampaignForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Campaigns, error)
	IncrementCampaignIssuedCount(ctx context.Context, db sqlc.DBTX, arg sqlc.IncrementCampaignIssuedCountParams) error
}

type CampaignRepository struct {
	queries CampaignWriteQueries
}

func NewCampaignRepository(queries *sqlc.Queries) *CampaignRepository {
	return &CampaignRepository{
		queries: queries,
	}
}

func (r *CampaignRepository) Create(ctx context.Context, db sqlc.DBTX, name string, maxUnits int, activeFrom, activeUntil *time.Time) (*commands.CampaignSnapshot, error) {
	params := sqlc.CreateCampaignParams{
		Name:        name,
		MaxUnits:    int32(maxUnits), // #nosec G115 -- validated by the entity
		ActiveFrom:  pgconv.TimestamptzFromTimePtr(activeFrom),
		ActiveUntil: pgconv.TimestamptzFromTimePtr(activeUntil),
	}

	row, err := r.queries.CreateCampaign(ctx, db, params)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return nil, infra.WrapRepoErr("campaign already exists", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to create campaign", err)
	}

	return toCampaignSnapshotFromRow(row), nil
}

// FindForUpdate locks the campaign row so the counter increment in the same
// transaction never races another group's write.
func (r *CampaignRepository) FindForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*commands.CampaignSnapshot, error) {
	row, err := r.queries.GetCampaignForUpdate(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("campaign not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find campaign for update", err)
	}

	return toCampaignSnapshotFromRow(row), nil
}

func (r *CampaignRepository) IncrementIssued(ctx context.Context, db sqlc.DBTX, id uuid.UUID, amount int) error {
	params := sqlc.IncrementCampaignIssuedCountParams{
		ID:     id,
		Amount: int32(amount), // #nosec G115 -- bounded by the batch size
	}

	if err := r.queries.IncrementCampaignIssuedCount(ctx, db, params); err != nil {
		return infra.WrapRepoErr("failed to increment issued count", err)
	}
	return nil
}

func toCampaignSnapshotFromRow(row sqlc.Campaigns) *commands.CampaignSnapshot {
	return &commands.CampaignSnapshot{
		ID:          row.ID,
		Name:        row.Name,
		MaxUnits:    int(row.MaxUnits),
		ActiveFrom:  pgconv.TimePtrFromPgtype(row.ActiveFrom),
		ActiveUntil: pgconv.TimePtrFromPgtype(row.ActiveUntil),
		IssuedCount: int(row.IssuedCount),
	}
}
