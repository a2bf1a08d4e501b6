package components

import (
	"context"

	"coupon-issuance/internal/infra/delivery"
	"coupon-issuance/internal/jobs"
	"coupon-issuance/internal/pkg/config"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		NewJobsConfig,
		NewDeliveryConfig,
		fx.Annotate(
			delivery.NewHTTPClient,
			fx.As(new(jobs.DeliveryClient)),
		),
		jobs.NewBatchPersister,
		jobs.NewGrantRecoverer,
		jobs.NewDeadLetterScheduler,
		jobs.NewOutboxPublisher,
	),
	fx.Invoke(registerJobRunners),
)

func NewJobsConfig(cfg config.Config) config.JobsConfig {
	return cfg.Jobs
}

func NewDeliveryConfig(cfg config.Config) config.DeliveryConfig {
	return cfg.Delivery
}

func registerJobRunners(
	lc fx.Lifecycle,
	cfg config.Config,
	persister *jobs.BatchPersister,
	scheduler *jobs.DeadLetterScheduler,
	publisher *jobs.OutboxPublisher,
) {
	runners := []*jobs.Runner{
		jobs.NewRunner("batch_persister", cfg.Jobs.PersistInterval, persister.Run),
		jobs.NewRunner("dead_letter_scheduler", cfg.Jobs.RetryInterval, scheduler.Run),
		jobs.NewRunner("outbox_publisher", cfg.Jobs.OutboxInterval, publisher.Run),
	}

	for _, r := range runners {
		runner := r
		lc.Append(fx.Hook{
			OnStart: func(_ context.Context) error {
				runner.Start()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				return runner.Stop(ctx)
			},
		})
	}
}
