package jobs

import (
	"context"
	"log/slog"

	"coupon-issuance/internal/pkg/clock"
	"coupon-issuance/internal/pkg/config"
	"coupon-issuance/internal/pkg/errs"
)

// OutboxPublisher delivers staged events at-least-once. Flat retry ceiling,
// no abandonment: over-ceiling events stay FAILED for manual reprocessing
// rather than being silently dropped.
type OutboxPublisher struct {
	outbox   OutboxStore
	delivery DeliveryClient
	clock    clock.Clock
	cfg      config.JobsConfig
}

func NewOutboxPublisher(
	outbox OutboxStore,
	delivery DeliveryClient,
	clk clock.Clock,
	cfg config.JobsConfig,
) *OutboxPublisher {
	return &OutboxPublisher{
		outbox:   outbox,
		delivery: delivery,
		clock:    clk,
		cfg:      cfg,
	}
}

func (p *OutboxPublisher) Run(ctx context.Context) error {
	events, err := p.outbox.GetDeliverable(ctx, p.cfg.OutboxMaxRetry, p.cfg.OutboxBatchSize)
	if err != nil {
		return errs.Wrap(err, "failed to fetch deliverable outbox events")
	}
	if len(events) == 0 {
		return nil
	}

	var processed, failed int
	for _, event := range events {
		ok, err := p.delivery.Send(ctx, event.Payload)
		if err != nil {
			slog.Warn("outbox delivery error",
				"event_id", event.ID,
				"event_type", event.EventType,
				"retry_count", event.RetryCount,
				"error", err.Error())
		}
		if !ok {
			failed++
			if markErr := p.outbox.MarkFailed(ctx, event.ID); markErr != nil {
				slog.Error("failed to mark outbox event failed", "event_id", event.ID, "error", markErr.Error())
			}
			continue
		}

		if markErr := p.outbox.MarkProcessed(ctx, event.ID, p.clock.Now()); markErr != nil {
			// The event will be re-sent next run; downstream must tolerate
			// duplicates (at-least-once contract).
			slog.Error("failed to mark outbox event processed", "event_id", event.ID, "error", markErr.Error())
			continue
		}
		processed++
	}

	slog.Info("outbox run completed",
		"fetched", len(events),
		"processed", processed,
		"failed", failed)
	return nil
}
