package jobs

import (
	"context"
	"time"

	sqlc "coupon-issuance/internal/infra/sqlc/generated"
	"coupon-issuance/internal/usecase/commands"

	"github.com/google/uuid"
)

// Narrow per-job ports; the repository layer satisfies them.

type PendingQueue interface {
	DrainQueue(ctx context.Context, max int) ([]string, error)
}

type CampaignStore interface {
	FindForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*commands.CampaignSnapshot, error)
	IncrementIssued(ctx context.Context, db sqlc.DBTX, id uuid.UUID, amount int) error
}

type GrantStore interface {
	BulkInsert(ctx context.Context, db sqlc.DBTX, campaignID uuid.UUID, userIDs []uuid.UUID, issuedAt, expiresAt time.Time) (int64, error)
	ExistingUsers(ctx context.Context, db sqlc.DBTX, campaignID uuid.UUID, userIDs []uuid.UUID) (map[uuid.UUID]struct{}, error)
	Exists(ctx context.Context, campaignID, userID uuid.UUID) (bool, error)
}

type FailureRecord struct {
	ID            uuid.UUID
	Payload       string
	Status        string
	RetryCount    int
	MaxRetryCount int
	NextRetryAt   *time.Time
}

type FailureStore interface {
	Create(ctx context.Context, payload string, maxRetryCount int, nextRetryAt time.Time, lastError string) error
	GetDue(ctx context.Context, now time.Time, limit int) ([]FailureRecord, error)
	MarkRetrying(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkRecovered(ctx context.Context, id uuid.UUID, at time.Time) error
	Reschedule(ctx context.Context, id uuid.UUID, nextRetryAt time.Time, lastError string) error
	Abandon(ctx context.Context, id uuid.UUID, lastError string) error
}

type OutboxEvent struct {
	ID         uuid.UUID
	EventType  string
	Payload    []byte
	Status     string
	RetryCount int
}

type OutboxStore interface {
	Append(ctx context.Context, db sqlc.DBTX, eventType string, payload []byte) error
	GetDeliverable(ctx context.Context, maxRetry, limit int) ([]OutboxEvent, error)
	MarkProcessed(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID) error
}

// DeliveryClient pushes one event to the downstream analytics platform.
// A false return without error is a recoverable rejection.
type DeliveryClient interface {
	Send(ctx context.Context, payload []byte) (bool, error)
}
