package readstore

import (
	"context"

	"coupon-issuance/internal/infra"
	sqlc "coupon-issuance/internal/infra/sqlc/generated"
	"coupon-issuance/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type MonitoringReadQueries interface {
	CountFailureRecordsByStatus(ctx context.Context, db sqlc.DBTX) ([]sqlc.CountFailureRecordsByStatusRow, error)
	CountOutboxEventsByStatus(ctx context.Context, db sqlc.DBTX) ([]sqlc.CountOutboxEventsByStatusRow, error)
}

type MonitoringReadStore struct {
	queries MonitoringReadQueries
	pool    *pgxpool.Pool
}

func NewMonitoringReadStore(queries MonitoringReadQueries, pool *pgxpool.Pool) *MonitoringReadStore {
	return &MonitoringReadStore{
		queries: queries,
		pool:    pool,
	}
}

func (s *MonitoringReadStore) FailureCounts(ctx context.Context) ([]queries.StatusCount, error) {
	rows, err := s.queries.CountFailureRecordsByStatus(ctx, s.pool)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count failure records", err)
	}

	counts := make([]queries.StatusCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, queries.StatusCount{Status: row.Status, Count: row.Count})
	}
	return counts, nil
}

func (s *MonitoringReadStore) OutboxCounts(ctx context.Context) ([]queries.StatusCount, error) {
	rows, err := s.queries.CountOutboxEventsByStatus(ctx, s.pool)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count outbox events", err)
	}

	counts := make([]queries.StatusCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, queries.StatusCount{Status: row.Status, Count: row.Count})
	}
	return counts, nil
}
