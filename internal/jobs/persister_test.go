//go:build unit

package jobs_test

import (
	"context"
	"testing"
	"time"

	"coupon-issuance/internal/domain/pending"
	sqlc "coupon-issuance/internal/infra/sqlc/generated"
	"coupon-issuance/internal/jobs"
	"coupon-issuance/internal/pkg/clock"
	"coupon-issuance/internal/pkg/config"
	"coupon-issuance/internal/pkg/errs"
	"coupon-issuance/internal/usecase/commands"
	jobsmock "coupon-issuance/tests/mock/jobs"
	uowmock "coupon-issuance/tests/mock/uow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BatchPersisterTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockQueue     *jobsmock.MockPendingQueue
	mockUoW       *uowmock.MockUnitOfWork
	mockCampaigns *jobsmock.MockCampaignStore
	mockGrants    *jobsmock.MockGrantStore
	mockFailures  *jobsmock.MockFailureStore
	mockOutbox    *jobsmock.MockOutboxStore
	clock         *clock.MockClock
	cfg           config.JobsConfig
	persister     *jobs.BatchPersister
}

func (s *BatchPersisterTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueue = jobsmock.NewMockPendingQueue(s.mockCtrl)
	s.mockUoW = uowmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockCampaigns = jobsmock.NewMockCampaignStore(s.mockCtrl)
	s.mockGrants = jobsmock.NewMockGrantStore(s.mockCtrl)
	s.mockFailures = jobsmock.NewMockFailureStore(s.mockCtrl)
	s.mockOutbox = jobsmock.NewMockOutboxStore(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.cfg = config.NewTestConfig().Jobs

	s.persister = jobs.NewBatchPersister(
		s.mockQueue, s.mockUoW, s.mockCampaigns, s.mockGrants,
		s.mockFailures, s.mockOutbox, s.clock, s.cfg,
	)
}

func (s *BatchPersisterTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBatchPersisterSuite(t *testing.T) {
	suite.Run(t, new(BatchPersisterTestSuite))
}

func (s *BatchPersisterTestSuite) passthroughUoW() {
	s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
			return fn(ctx, nil)
		}).AnyTimes()
}

func entriesFor(campaignID uuid.UUID, userIDs ...uuid.UUID) []string {
	entries := make([]string, 0, len(userIDs))
	for _, userID := range userIDs {
		entries = append(entries, pending.Grant{CampaignID: campaignID, UserID: userID}.Encode())
	}
	return entries
}

func (s *BatchPersisterTestSuite) TestRun_EmptyQueueDoesNothing() {
	s.mockQueue.EXPECT().DrainQueue(gomock.Any(), s.cfg.PersistBatchSize).Return(nil, nil)

	s.Require().NoError(s.persister.Run(context.Background()))
}

func (s *BatchPersisterTestSuite) TestRun_PersistsDrainedGrants() {
	campaignID := uuid.New()
	users := []uuid.UUID{uuid.New(), uuid.New()}
	s.mockQueue.EXPECT().DrainQueue(gomock.Any(), gomock.Any()).
		Return(entriesFor(campaignID, users...), nil)
	s.passthroughUoW()

	s.mockCampaigns.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), campaignID).
		Return(&commands.CampaignSnapshot{ID: campaignID, MaxUnits: 10, IssuedCount: 0}, nil)
	s.mockGrants.EXPECT().ExistingUsers(gomock.Any(), gomock.Any(), campaignID, gomock.Any()).
		Return(map[uuid.UUID]struct{}{}, nil)

	issuedAt := s.clock.Now()
	s.mockGrants.EXPECT().
		BulkInsert(gomock.Any(), gomock.Any(), campaignID, gomock.Any(), issuedAt, issuedAt.Add(s.cfg.GrantTTL)).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _ uuid.UUID, userIDs []uuid.UUID, _, _ time.Time) (int64, error) {
			s.Len(userIDs, 2)
			return int64(len(userIDs)), nil
		})
	s.mockCampaigns.EXPECT().IncrementIssued(gomock.Any(), gomock.Any(), campaignID, 2).Return(nil)
	s.mockOutbox.EXPECT().
		Append(gomock.Any(), gomock.Any(), jobs.EventTypeCouponIssuedBatch, gomock.Any()).Return(nil)

	s.Require().NoError(s.persister.Run(context.Background()))
}

func (s *BatchPersisterTestSuite) TestRun_SkipsAlreadyPersistedUsers() {
	campaignID := uuid.New()
	existing := uuid.New()
	fresh := uuid.New()
	s.mockQueue.EXPECT().DrainQueue(gomock.Any(), gomock.Any()).
		Return(entriesFor(campaignID, existing, fresh), nil)
	s.passthroughUoW()

	s.mockCampaigns.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), campaignID).
		Return(&commands.CampaignSnapshot{ID: campaignID, MaxUnits: 10, IssuedCount: 1}, nil)
	s.mockGrants.EXPECT().ExistingUsers(gomock.Any(), gomock.Any(), campaignID, gomock.Any()).
		Return(map[uuid.UUID]struct{}{existing: {}}, nil)
	s.mockGrants.EXPECT().
		BulkInsert(gomock.Any(), gomock.Any(), campaignID, []uuid.UUID{fresh}, gomock.Any(), gomock.Any()).
		Return(int64(1), nil)
	s.mockCampaigns.EXPECT().IncrementIssued(gomock.Any(), gomock.Any(), campaignID, 1).Return(nil)
	s.mockOutbox.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	s.Require().NoError(s.persister.Run(context.Background()))
}

func (s *BatchPersisterTestSuite) TestRun_AllUsersAlreadyPersisted() {
	campaignID := uuid.New()
	userID := uuid.New()
	s.mockQueue.EXPECT().DrainQueue(gomock.Any(), gomock.Any()).
		Return(entriesFor(campaignID, userID), nil)
	s.passthroughUoW()

	s.mockCampaigns.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), campaignID).
		Return(&commands.CampaignSnapshot{ID: campaignID, MaxUnits: 10, IssuedCount: 1}, nil)
	s.mockGrants.EXPECT().ExistingUsers(gomock.Any(), gomock.Any(), campaignID, gomock.Any()).
		Return(map[uuid.UUID]struct{}{userID: {}}, nil)
	// No insert, no counter bump, no event.

	s.Require().NoError(s.persister.Run(context.Background()))
}

// Pending grants above the durable quota are dropped, never inserted. 250
// queued against 200 remaining must persist exactly 200.
func (s *BatchPersisterTestSuite) TestRun_CapsAtRemainingQuota() {
	campaignID := uuid.New()
	users := make([]uuid.UUID, 250)
	for i := range users {
		users[i] = uuid.New()
	}
	s.mockQueue.EXPECT().DrainQueue(gomock.Any(), gomock.Any()).
		Return(entriesFor(campaignID, users...), nil)
	s.passthroughUoW()

	s.mockCampaigns.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), campaignID).
		Return(&commands.CampaignSnapshot{ID: campaignID, MaxUnits: 200, IssuedCount: 0}, nil)
	s.mockGrants.EXPECT().ExistingUsers(gomock.Any(), gomock.Any(), campaignID, gomock.Any()).
		Return(map[uuid.UUID]struct{}{}, nil)
	s.mockGrants.EXPECT().
		BulkInsert(gomock.Any(), gomock.Any(), campaignID, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _ uuid.UUID, userIDs []uuid.UUID, _, _ time.Time) (int64, error) {
			s.Len(userIDs, 200)
			return int64(len(userIDs)), nil
		})
	s.mockCampaigns.EXPECT().IncrementIssued(gomock.Any(), gomock.Any(), campaignID, 200).Return(nil)
	s.mockOutbox.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	s.Require().NoError(s.persister.Run(context.Background()))
}

func (s *BatchPersisterTestSuite) TestRun_DropsMalformedEntries() {
	campaignID := uuid.New()
	userID := uuid.New()
	entries := append(entriesFor(campaignID, userID), "not-an-entry", "a:b")
	s.mockQueue.EXPECT().DrainQueue(gomock.Any(), gomock.Any()).Return(entries, nil)
	s.passthroughUoW()

	s.mockCampaigns.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), campaignID).
		Return(&commands.CampaignSnapshot{ID: campaignID, MaxUnits: 10, IssuedCount: 0}, nil)
	s.mockGrants.EXPECT().ExistingUsers(gomock.Any(), gomock.Any(), campaignID, gomock.Any()).
		Return(map[uuid.UUID]struct{}{}, nil)
	s.mockGrants.EXPECT().
		BulkInsert(gomock.Any(), gomock.Any(), campaignID, []uuid.UUID{userID}, gomock.Any(), gomock.Any()).
		Return(int64(1), nil)
	s.mockCampaigns.EXPECT().IncrementIssued(gomock.Any(), gomock.Any(), campaignID, 1).Return(nil)
	s.mockOutbox.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	s.Require().NoError(s.persister.Run(context.Background()))
}

func (s *BatchPersisterTestSuite) TestRun_GroupFailureCreatesFailureRecords() {
	campaignID := uuid.New()
	users := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	s.mockQueue.EXPECT().DrainQueue(gomock.Any(), gomock.Any()).
		Return(entriesFor(campaignID, users...), nil)

	cause := errs.New("db down")
	s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).Return(cause)

	wantRetryAt := s.clock.Now().Add(s.cfg.RetryBaseDelay)
	s.mockFailures.EXPECT().
		Create(gomock.Any(), gomock.Any(), s.cfg.MaxRetryCount, wantRetryAt, gomock.Any()).
		Return(nil).Times(len(users))

	s.Require().NoError(s.persister.Run(context.Background()))
}

func (s *BatchPersisterTestSuite) TestRun_FailedGroupDoesNotBlockOthers() {
	okCampaign := uuid.New()
	badCampaign := uuid.New()
	okUser := uuid.New()
	badUser := uuid.New()
	entries := append(entriesFor(okCampaign, okUser), entriesFor(badCampaign, badUser)...)
	s.mockQueue.EXPECT().DrainQueue(gomock.Any(), gomock.Any()).Return(entries, nil)

	s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
			return fn(ctx, nil)
		}).AnyTimes()

	s.mockCampaigns.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), okCampaign).
		Return(&commands.CampaignSnapshot{ID: okCampaign, MaxUnits: 10, IssuedCount: 0}, nil)
	s.mockCampaigns.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), badCampaign).
		Return(nil, errs.New("lock timeout"))

	s.mockGrants.EXPECT().ExistingUsers(gomock.Any(), gomock.Any(), okCampaign, gomock.Any()).
		Return(map[uuid.UUID]struct{}{}, nil)
	s.mockGrants.EXPECT().
		BulkInsert(gomock.Any(), gomock.Any(), okCampaign, []uuid.UUID{okUser}, gomock.Any(), gomock.Any()).
		Return(int64(1), nil)
	s.mockCampaigns.EXPECT().IncrementIssued(gomock.Any(), gomock.Any(), okCampaign, 1).Return(nil)
	s.mockOutbox.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	s.mockFailures.EXPECT().
		Create(gomock.Any(), pending.Grant{CampaignID: badCampaign, UserID: badUser}.Encode(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	s.Require().NoError(s.persister.Run(context.Background()))
}
