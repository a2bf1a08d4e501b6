package readstore

import (
	"context"

	"coupon-issuance/internal/infra"
	sqlc "coupon-issuance/internal/infra/sqlc/generated"
	"coupon-issuance/internal/pkg/pgconv"
	"coupon-issuance/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CampaignReadQueries interface {
	GetCampaignByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Campaigns, error)
}

type CampaignReadStore struct {
	queries CampaignReadQueries
	pool    *pgxpool.Pool
}

func NewCampaignReadStore(queries CampaignReadQueries, pool *pgxpool.Pool) *CampaignReadStore {
	return &CampaignReadStore{
		queries: queries,
		pool:    pool,
	}
}

func (s *CampaignReadStore) FindByID(ctx context.Context, id uuid.UUID) (*commands.CampaignSnapshot, error) {
	row, err := s.queries.GetCampaignByID(ctx, s.pool, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("campaign not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find campaign", err)
	}

	return &commands.CampaignSnapshot{
		ID:          row.ID,
		Name:        row.Name,
		MaxUnits:    int(row.MaxUnits),
		ActiveFrom:  pgconv.TimePtrFromPgtype(row.ActiveFrom),
		ActiveUntil: pgconv.TimePtrFromPgtype(row.ActiveUntil),
		IssuedCount: int(row.IssuedCount),
	}, nil
}
