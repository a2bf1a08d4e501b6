package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"coupon-issuance/internal/domain/pending"
	sqlc "coupon-issuance/internal/infra/sqlc/generated"
	"coupon-issuance/internal/infra/uow"
	"coupon-issuance/internal/pkg/clock"
	"coupon-issuance/internal/pkg/config"
	"coupon-issuance/internal/pkg/errs"

	"github.com/google/uuid"
)

const EventTypeCouponIssuedBatch = "coupon.issued.batch"

type issuedBatchEvent struct {
	CampaignID uuid.UUID   `json:"campaign_id"`
	UserIDs    []uuid.UUID `json:"user_ids"`
	IssuedAt   time.Time   `json:"issued_at"`
}

// BatchPersister drains the coordinator's pending queues and converts
// admitted grants into durable records. The grant_records unique constraint
// plus the existing-user pre-filter make reprocessing idempotent; the queue
// itself guarantees nothing.
type BatchPersister struct {
	queue     PendingQueue
	uow       uow.UnitOfWork
	campaigns CampaignStore
	grants    GrantStore
	failures  FailureStore
	outbox    OutboxStore
	clock     clock.Clock
	cfg       config.JobsConfig
}

func NewBatchPersister(
	queue PendingQueue,
	unit uow.UnitOfWork,
	campaigns CampaignStore,
	grants GrantStore,
	failures FailureStore,
	outbox OutboxStore,
	clk clock.Clock,
	cfg config.JobsConfig,
) *BatchPersister {
	return &BatchPersister{
		queue:     queue,
		uow:       unit,
		campaigns: campaigns,
		grants:    grants,
		failures:  failures,
		outbox:    outbox,
		clock:     clk,
		cfg:       cfg,
	}
}

func (p *BatchPersister) Run(ctx context.Context) error {
	entries, err := p.queue.DrainQueue(ctx, p.cfg.PersistBatchSize)
	if err != nil {
		return errs.Wrap(err, "failed to drain pending queue")
	}
	if len(entries) == 0 {
		return nil
	}

	groups, malformed := groupByCampaign(entries)
	if malformed > 0 {
		// Data-quality bug, not a quota violation: admission already happened.
		slog.Warn("dropped malformed queue entries", "count", malformed)
	}

	var inserted, skipped, failed int64
	for campaignID, userIDs := range groups {
		n, err := p.persistGroup(ctx, campaignID, userIDs)
		if err != nil {
			failed += int64(len(userIDs))
			slog.Error("failed to persist grant group",
				"campaign_id", campaignID,
				"grants", len(userIDs),
				"error", err.Error())
			p.recordFailures(ctx, campaignID, userIDs, err)
			continue
		}
		inserted += n
		skipped += int64(len(userIDs)) - n
	}

	slog.Info("persist run completed",
		"drained", len(entries),
		"inserted", inserted,
		"skipped", skipped,
		"failed", failed,
		"malformed", malformed)
	return nil
}

func groupByCampaign(entries []string) (map[uuid.UUID][]uuid.UUID, int) {
	groups := make(map[uuid.UUID][]uuid.UUID)
	malformed := 0
	for _, entry := range entries {
		grant, err := pending.Decode(entry)
		if err != nil {
			slog.Warn("unparsable queue entry", "entry", entry)
			malformed++
			continue
		}
		groups[grant.CampaignID] = append(groups[grant.CampaignID], grant.UserID)
	}
	return groups, malformed
}

// persistGroup writes one campaign's grants in one transaction: filter
// already-persisted users, cap at the remaining durable quota, bulk-insert,
// bump the issued counter by exactly the inserted rows, and stage the outbox
// event — all atomically.
func (p *BatchPersister) persistGroup(ctx context.Context, campaignID uuid.UUID, userIDs []uuid.UUID) (int64, error) {
	var inserted int64
	err := p.uow.Within(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		camp, err := p.campaigns.FindForUpdate(ctx, db, campaignID)
		if err != nil {
			return err
		}

		existing, err := p.grants.ExistingUsers(ctx, db, campaignID, userIDs)
		if err != nil {
			return err
		}

		newUsers := make([]uuid.UUID, 0, len(userIDs))
		for _, userID := range userIDs {
			if _, ok := existing[userID]; ok {
				continue
			}
			newUsers = append(newUsers, userID)
		}
		if len(newUsers) == 0 {
			return nil
		}

		// Entries admitted during a coordinator outage window can exceed the
		// durable quota; they are dropped here, never inserted.
		remaining := camp.MaxUnits - camp.IssuedCount
		if remaining < 0 {
			remaining = 0
		}
		if len(newUsers) > remaining {
			slog.Warn("pending grants exceed remaining quota, dropping excess",
				"campaign_id", campaignID,
				"pending", len(newUsers),
				"remaining", remaining)
			newUsers = newUsers[:remaining]
		}
		if len(newUsers) == 0 {
			return nil
		}

		issuedAt := p.clock.Now()
		inserted, err = p.grants.BulkInsert(ctx, db, campaignID, newUsers, issuedAt, issuedAt.Add(p.cfg.GrantTTL))
		if err != nil {
			return err
		}
		if inserted == 0 {
			return nil
		}

		if err := p.campaigns.IncrementIssued(ctx, db, campaignID, int(inserted)); err != nil {
			return err
		}

		payload, err := json.Marshal(issuedBatchEvent{
			CampaignID: campaignID,
			UserIDs:    newUsers,
			IssuedAt:   issuedAt,
		})
		if err != nil {
			return errs.Wrap(err, "failed to encode outbox payload")
		}
		return p.outbox.Append(ctx, db, EventTypeCouponIssuedBatch, payload)
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// recordFailures hands a failed group to the dead-letter scheduler, one
// record per grant so recovery is per-user idempotent. Best effort: if even
// this write fails, the error log is the only trail left.
func (p *BatchPersister) recordFailures(ctx context.Context, campaignID uuid.UUID, userIDs []uuid.UUID, cause error) {
	nextRetryAt := p.clock.Now().Add(p.cfg.RetryBaseDelay)
	for _, userID := range userIDs {
		payload := pending.Grant{CampaignID: campaignID, UserID: userID}.Encode()
		if err := p.failures.Create(ctx, payload, p.cfg.MaxRetryCount, nextRetryAt, cause.Error()); err != nil {
			slog.Error("failed to create failure record",
				"campaign_id", campaignID,
				"user_id", userID,
				"error", err.Error())
		}
	}
}
