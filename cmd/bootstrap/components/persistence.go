package components

import (
	"coupon-issuance/internal/infra/readstore"
	"coupon-issuance/internal/infra/repository"
	sqlc "coupon-issuance/internal/infra/sqlc/generated"
	"coupon-issuance/internal/infra/uow"
	"coupon-issuance/internal/jobs"
	"coupon-issuance/internal/usecase/commands"
	"coupon-issuance/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Campaign
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CampaignReadQueries)),
		),
		fx.Annotate(
			readstore.NewCampaignReadStore,
			fx.As(new(commands.CampaignReads)),
		),
		// Monitoring
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MonitoringReadQueries)),
		),
		fx.Annotate(
			readstore.NewMonitoringReadStore,
			fx.As(new(queries.MonitoringReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// Campaign
		fx.Annotate(
			repository.NewCampaignRepository,
			fx.As(new(jobs.CampaignStore)),
			fx.As(new(commands.CampaignWrites)),
		),
		// Grant
		fx.Annotate(
			repository.NewGrantRepository,
			fx.As(new(jobs.GrantStore)),
		),
		// Failure
		fx.Annotate(
			repository.NewFailureRepository,
			fx.As(new(jobs.FailureStore)),
		),
		// Outbox
		fx.Annotate(
			repository.NewOutboxRepository,
			fx.As(new(jobs.OutboxStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
