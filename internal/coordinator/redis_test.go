package coordinator

import (
	"context"
	"sync"
	"testing"

	"coupon-issuance/internal/domain/pending"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCoordinator(t *testing.T) Coordinator {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewRedisCoordinator(rdb)
}

func TestAdmit_GrantedThenDuplicate(t *testing.T) {
	ctx := context.Background()
	c := newTestCoordinator(t)

	campaignID := uuid.New()
	userID := uuid.New()

	status, err := c.Admit(ctx, campaignID, userID, 10, true)
	require.NoError(t, err)
	assert.Equal(t, AdmitGranted, status)

	status, err = c.Admit(ctx, campaignID, userID, 10, true)
	require.NoError(t, err)
	assert.Equal(t, AdmitDuplicate, status)

	count, err := c.Count(ctx, campaignID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	depth, err := c.QueueDepth(ctx, campaignID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), depth, "duplicate must not enqueue")
}

func TestAdmit_Exhausted(t *testing.T) {
	ctx := context.Background()
	c := newTestCoordinator(t)

	campaignID := uuid.New()
	for i := 0; i < 3; i++ {
		status, err := c.Admit(ctx, campaignID, uuid.New(), 3, true)
		require.NoError(t, err)
		assert.Equal(t, AdmitGranted, status)
	}

	status, err := c.Admit(ctx, campaignID, uuid.New(), 3, true)
	require.NoError(t, err)
	assert.Equal(t, AdmitExhausted, status)

	count, err := c.Count(ctx, campaignID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestAdmit_QuotaInvariantUnderConcurrency(t *testing.T) {
	ctx := context.Background()
	c := newTestCoordinator(t)

	const maxUnits = 50
	const callers = 100

	campaignID := uuid.New()

	var wg sync.WaitGroup
	results := make(chan AdmitStatus, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			status, err := c.Admit(ctx, campaignID, uuid.New(), maxUnits, true)
			require.NoError(t, err)
			results <- status
		}()
	}
	wg.Wait()
	close(results)

	granted, exhausted := 0, 0
	for status := range results {
		switch status {
		case AdmitGranted:
			granted++
		case AdmitExhausted:
			exhausted++
		}
	}

	assert.Equal(t, maxUnits, granted)
	assert.Equal(t, callers-maxUnits, exhausted)

	count, err := c.Count(ctx, campaignID)
	require.NoError(t, err)
	assert.Equal(t, int64(maxUnits), count)

	depth, err := c.QueueDepth(ctx, campaignID)
	require.NoError(t, err)
	assert.Equal(t, int64(maxUnits), depth)
}

func TestAdmit_SameUserConcurrently(t *testing.T) {
	ctx := context.Background()
	c := newTestCoordinator(t)

	campaignID := uuid.New()
	userID := uuid.New()

	var wg sync.WaitGroup
	results := make(chan AdmitStatus, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			status, err := c.Admit(ctx, campaignID, userID, 100, true)
			require.NoError(t, err)
			results <- status
		}()
	}
	wg.Wait()
	close(results)

	granted, duplicate := 0, 0
	for status := range results {
		switch status {
		case AdmitGranted:
			granted++
		case AdmitDuplicate:
			duplicate++
		}
	}

	assert.Equal(t, 1, granted)
	assert.Equal(t, 9, duplicate)
}

func TestAdmit_WithoutEnqueue(t *testing.T) {
	ctx := context.Background()
	c := newTestCoordinator(t)

	campaignID := uuid.New()

	status, err := c.Admit(ctx, campaignID, uuid.New(), 10, false)
	require.NoError(t, err)
	assert.Equal(t, AdmitGranted, status)

	depth, err := c.QueueDepth(ctx, campaignID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), depth)

	entries, err := c.DrainQueue(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDrainQueue(t *testing.T) {
	ctx := context.Background()
	c := newTestCoordinator(t)

	campaignA := uuid.New()
	campaignB := uuid.New()

	for i := 0; i < 3; i++ {
		_, err := c.Admit(ctx, campaignA, uuid.New(), 10, true)
		require.NoError(t, err)
	}
	for i := 0; i < 2; i++ {
		_, err := c.Admit(ctx, campaignB, uuid.New(), 10, true)
		require.NoError(t, err)
	}

	entries, err := c.DrainQueue(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, entries, 5)

	byCampaign := map[uuid.UUID]int{}
	for _, entry := range entries {
		grant, err := pending.Decode(entry)
		require.NoError(t, err)
		byCampaign[grant.CampaignID]++
	}
	assert.Equal(t, 3, byCampaign[campaignA])
	assert.Equal(t, 2, byCampaign[campaignB])

	// Fully drained queues are deregistered; a second drain finds nothing.
	entries, err = c.DrainQueue(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDrainQueue_RespectsBatchSize(t *testing.T) {
	ctx := context.Background()
	c := newTestCoordinator(t)

	campaignID := uuid.New()
	for i := 0; i < 5; i++ {
		_, err := c.Admit(ctx, campaignID, uuid.New(), 10, true)
		require.NoError(t, err)
	}

	entries, err := c.DrainQueue(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	depth, err := c.QueueDepth(ctx, campaignID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), depth)

	// Leftovers stay registered for the next run.
	entries, err = c.DrainQueue(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestDrainQueue_ReregistersAfterFullDrain(t *testing.T) {
	ctx := context.Background()
	c := newTestCoordinator(t)

	campaignID := uuid.New()
	_, err := c.Admit(ctx, campaignID, uuid.New(), 10, true)
	require.NoError(t, err)

	entries, err := c.DrainQueue(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// A grant admitted after the queue was drained empty and deregistered
	// must surface in the next drain.
	_, err = c.Admit(ctx, campaignID, uuid.New(), 10, true)
	require.NoError(t, err)

	entries, err = c.DrainQueue(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

// Admits and drains race freely; a queue must never end up non-empty but
// deregistered, so every granted entry is drained eventually.
func TestDrainQueue_ConcurrentAdmitsNeverStranded(t *testing.T) {
	ctx := context.Background()
	c := newTestCoordinator(t)

	const grants = 60
	campaignID := uuid.New()

	var drained sync.Map
	done := make(chan struct{})
	var drainer sync.WaitGroup
	drainer.Add(1)
	go func() {
		defer drainer.Done()
		for {
			entries, err := c.DrainQueue(ctx, 7)
			require.NoError(t, err)
			for _, entry := range entries {
				drained.Store(entry, struct{}{})
			}
			select {
			case <-done:
				return
			default:
			}
		}
	}()

	var admitters sync.WaitGroup
	for i := 0; i < grants; i++ {
		admitters.Add(1)
		go func() {
			defer admitters.Done()
			status, err := c.Admit(ctx, campaignID, uuid.New(), grants, true)
			require.NoError(t, err)
			require.Equal(t, AdmitGranted, status)
		}()
	}
	admitters.Wait()
	close(done)
	drainer.Wait()

	// Final sweep picks up whatever the racing drainer left behind.
	entries, err := c.DrainQueue(ctx, grants)
	require.NoError(t, err)
	for _, entry := range entries {
		drained.Store(entry, struct{}{})
	}

	total := 0
	drained.Range(func(_, _ any) bool {
		total++
		return true
	})
	assert.Equal(t, grants, total)

	depth, err := c.QueueDepth(ctx, campaignID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), depth)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	c := newTestCoordinator(t)

	campaignID := uuid.New()
	userID := uuid.New()

	_, err := c.Admit(ctx, campaignID, userID, 10, true)
	require.NoError(t, err)

	require.NoError(t, c.Reset(ctx, campaignID))

	count, err := c.Count(ctx, campaignID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// Same user admits cleanly again after a reset.
	status, err := c.Admit(ctx, campaignID, userID, 10, true)
	require.NoError(t, err)
	assert.Equal(t, AdmitGranted, status)
}
