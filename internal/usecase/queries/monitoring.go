package queries

import (
	"context"

	"coupon-issuance/internal/coordinator"

	"github.com/google/uuid"
)

type StatusCount struct {
	Status string
	Count  int64
}

type MonitoringReadStore interface {
	FailureCounts(ctx context.Context) ([]StatusCount, error)
	OutboxCounts(ctx context.Context) ([]StatusCount, error)
}

// MonitoringQueries exposes the pipeline's operational reads: queue depth per
// campaign, failure and outbox record counts by status.
type MonitoringQueries interface {
	QueueDepth(ctx context.Context, campaignID uuid.UUID) (int64, error)
	FailureCounts(ctx context.Context) ([]StatusCount, error)
	OutboxCounts(ctx context.Context) ([]StatusCount, error)
}

type monitoringQueriesImpl struct {
	store MonitoringReadStore
	coord coordinator.Coordinator
}

func NewMonitoringQueries(store MonitoringReadStore, coord coordinator.Coordinator) MonitoringQueries {
	return &monitoringQueriesImpl{
		store: store,
		coord: coord,
	}
}

func (q *monitoringQueriesImpl) QueueDepth(ctx context.Context, campaignID uuid.UUID) (int64, error) {
	return q.coord.QueueDepth(ctx, campaignID)
}

func (q *monitoringQueriesImpl) FailureCounts(ctx context.Context) ([]StatusCount, error) {
	return q.store.FailureCounts(ctx)
}

func (q *monitoringQueriesImpl) OutboxCounts(ctx context.Context) ([]StatusCount, error) {
	return q.store.OutboxCounts(ctx)
}
