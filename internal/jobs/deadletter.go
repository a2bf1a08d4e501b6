package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"coupon-issuance/internal/domain/pending"
	sqlc "coupon-issuance/internal/infra/sqlc/generated"
	"coupon-issuance/internal/infra/uow"
	"coupon-issuance/internal/pkg/clock"
	"coupon-issuance/internal/pkg/config"
	"coupon-issuance/internal/pkg/errs"

	"github.com/google/uuid"
)

// GrantRecoverer re-attempts one failed grant persistence. Must be idempotent
// against the durable store: a record can be picked up again if a crash lands
// between the action and the status update (at-least-once recovery).
type GrantRecoverer interface {
	Recover(ctx context.Context, grant pending.Grant) error
}

// DeadLetterScheduler drives failure records through
// PENDING -> RETRYING -> RECOVERED | PENDING (backoff) | ABANDONED.
type DeadLetterScheduler struct {
	failures  FailureStore
	recoverer GrantRecoverer
	clock     clock.Clock
	cfg       config.JobsConfig
}

func NewDeadLetterScheduler(
	failures FailureStore,
	recoverer GrantRecoverer,
	clk clock.Clock,
	cfg config.JobsConfig,
) *DeadLetterScheduler {
	return &DeadLetterScheduler{
		failures:  failures,
		recoverer: recoverer,
		clock:     clk,
		cfg:       cfg,
	}
}

func (s *DeadLetterScheduler) Run(ctx context.Context) error {
	now := s.clock.Now()
	due, err := s.failures.GetDue(ctx, now, s.cfg.RetryBatchSize)
	if err != nil {
		return errs.Wrap(err, "failed to fetch due failure records")
	}
	if len(due) == 0 {
		return nil
	}

	var recovered, rescheduled, abandoned int
	for _, record := range due {
		// Records are independent; one failure never blocks the rest.
		switch s.processRecord(ctx, record) {
		case outcomeRecovered:
			recovered++
		case outcomeRescheduled:
			rescheduled++
		case outcomeAbandoned:
			abandoned++
		}
	}

	slog.Info("dead-letter run completed",
		"due", len(due),
		"recovered", recovered,
		"rescheduled", rescheduled,
		"abandoned", abandoned)
	return nil
}

type retryOutcome int

const (
	outcomeRecovered retryOutcome = iota + 1
	outcomeRescheduled
	outcomeAbandoned
	outcomeStuck
)

func (s *DeadLetterScheduler) processRecord(ctx context.Context, record FailureRecord) retryOutcome {
	now := s.clock.Now()
	if err := s.failures.MarkRetrying(ctx, record.ID, now); err != nil {
		slog.Error("failed to mark record retrying", "record_id", record.ID, "error", err.Error())
		return outcomeStuck
	}
	attempt := record.RetryCount + 1

	err := s.attempt(ctx, record.Payload)
	if err == nil {
		if err := s.failures.MarkRecovered(ctx, record.ID, s.clock.Now()); err != nil {
			slog.Error("failed to mark record recovered", "record_id", record.ID, "error", err.Error())
			return outcomeStuck
		}
		return outcomeRecovered
	}

	if attempt >= record.MaxRetryCount {
		if abandonErr := s.failures.Abandon(ctx, record.ID, err.Error()); abandonErr != nil {
			slog.Error("failed to abandon record", "record_id", record.ID, "error", abandonErr.Error())
			return outcomeStuck
		}
		// Needs operator attention; the grant never reached the durable store.
		slog.Error("failure record abandoned after retry ceiling",
			"record_id", record.ID,
			"retry_count", attempt,
			"error", err.Error())
		return outcomeAbandoned
	}

	// Doubling schedule: base*2, base*4, ... per completed attempt.
	delay := s.cfg.RetryBaseDelay * (1 << attempt)
	if rescheduleErr := s.failures.Reschedule(ctx, record.ID, now.Add(delay), err.Error()); rescheduleErr != nil {
		slog.Error("failed to reschedule record", "record_id", record.ID, "error", rescheduleErr.Error())
		return outcomeStuck
	}
	return outcomeRescheduled
}

func (s *DeadLetterScheduler) attempt(ctx context.Context, payload string) error {
	grant, err := pending.Decode(payload)
	if err != nil {
		return errs.Wrap(err, "unrecoverable payload")
	}
	return s.recoverer.Recover(ctx, grant)
}

// grantRecoveryImpl is the domain recovery action: re-persist a single grant.
type grantRecoveryImpl struct {
	uow       uow.UnitOfWork
	campaigns CampaignStore
	grants    GrantStore
	outbox    OutboxStore
	clock     clock.Clock
	cfg       config.JobsConfig
}

func NewGrantRecoverer(
	unit uow.UnitOfWork,
	campaigns CampaignStore,
	grants GrantStore,
	outbox OutboxStore,
	clk clock.Clock,
	cfg config.JobsConfig,
) GrantRecoverer {
	return &grantRecoveryImpl{
		uow:       unit,
		campaigns: campaigns,
		grants:    grants,
		outbox:    outbox,
		clock:     clk,
		cfg:       cfg,
	}
}

func (r *grantRecoveryImpl) Recover(ctx context.Context, grant pending.Grant) error {
	// Re-check before write: an earlier attempt may already have landed.
	exists, err := r.grants.Exists(ctx, grant.CampaignID, grant.UserID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return r.uow.Within(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		camp, err := r.campaigns.FindForUpdate(ctx, db, grant.CampaignID)
		if err != nil {
			return err
		}
		// A sold-out campaign is not an error; re-issuing would over-grant.
		if camp.IssuedCount >= camp.MaxUnits {
			slog.Warn("skipping recovery for exhausted campaign",
				"campaign_id", grant.CampaignID,
				"user_id", grant.UserID)
			return nil
		}

		issuedAt := r.clock.Now()
		inserted, err := r.grants.BulkInsert(ctx, db, grant.CampaignID,
			[]uuid.UUID{grant.UserID}, issuedAt, issuedAt.Add(r.cfg.GrantTTL))
		if err != nil {
			return err
		}
		if inserted == 0 {
			// Lost a race with the persister; the grant is durable either way.
			return nil
		}
		if err := r.campaigns.IncrementIssued(ctx, db, grant.CampaignID, int(inserted)); err != nil {
			return err
		}

		payload, err := json.Marshal(issuedBatchEvent{
			CampaignID: grant.CampaignID,
			UserIDs:    []uuid.UUID{grant.UserID},
			IssuedAt:   issuedAt,
		})
		if err != nil {
			return errs.Wrap(err, "failed to encode outbox payload")
		}
		return r.outbox.Append(ctx, db, EventTypeCouponIssuedBatch, payload)
	})
}
