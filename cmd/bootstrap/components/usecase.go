package components

import (
	"context"

	"coupon-issuance/internal/coordinator"
	"coupon-issuance/internal/jobs"
	"coupon-issuance/internal/pkg/cache"
	"coupon-issuance/internal/pkg/clock"
	"coupon-issuance/internal/pkg/config"
	"coupon-issuance/internal/usecase/commands"
	"coupon-issuance/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewCampaignCache,
	fx.Annotate(
		coordinator.NewRedisCoordinator,
		fx.As(new(coordinator.Coordinator)),
		fx.As(new(jobs.PendingQueue)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAdmissionCommands,
		commands.NewCampaignCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewMonitoringQueries,
	),
)

func NewCampaignCache(lc fx.Lifecycle, cfg config.Config) *cache.TTL[*commands.CampaignSnapshot] {
	campaignCache := cache.NewTTL[*commands.CampaignSnapshot](cfg.Jobs.CampaignCacheTTL)

	janitorCtx, cancel := context.WithCancel(context.Background())
	campaignCache.StartJanitor(janitorCtx, cfg.Jobs.CampaignCacheSweep)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})

	return campaignCache
}
