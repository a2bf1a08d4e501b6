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

type DeadLetterSchedulerTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockFailures  *jobsmock.MockFailureStore
	mockRecoverer *jobsmock.MockGrantRecoverer
	clock         *clock.MockClock
	cfg           config.JobsConfig
	scheduler     *jobs.DeadLetterScheduler
}

func (s *DeadLetterSchedulerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockFailures = jobsmock.NewMockFailureStore(s.mockCtrl)
	s.mockRecoverer = jobsmock.NewMockGrantRecoverer(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.cfg = config.NewTestConfig().Jobs

	s.scheduler = jobs.NewDeadLetterScheduler(s.mockFailures, s.mockRecoverer, s.clock, s.cfg)
}

func (s *DeadLetterSchedulerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDeadLetterSchedulerSuite(t *testing.T) {
	suite.Run(t, new(DeadLetterSchedulerTestSuite))
}

func (s *DeadLetterSchedulerTestSuite) dueRecord(retryCount int) (jobs.FailureRecord, pending.Grant) {
	grant := pending.Grant{CampaignID: uuid.New(), UserID: uuid.New()}
	return jobs.FailureRecord{
		ID:            uuid.New(),
		Payload:       grant.Encode(),
		Status:        "PENDING",
		RetryCount:    retryCount,
		MaxRetryCount: s.cfg.MaxRetryCount,
	}, grant
}

func (s *DeadLetterSchedulerTestSuite) TestRun_NoDueRecords() {
	s.mockFailures.EXPECT().GetDue(gomock.Any(), s.clock.Now(), s.cfg.RetryBatchSize).Return(nil, nil)

	s.Require().NoError(s.scheduler.Run(context.Background()))
}

func (s *DeadLetterSchedulerTestSuite) TestRun_RecoversDueRecord() {
	record, grant := s.dueRecord(0)
	now := s.clock.Now()

	s.mockFailures.EXPECT().GetDue(gomock.Any(), now, gomock.Any()).
		Return([]jobs.FailureRecord{record}, nil)
	s.mockFailures.EXPECT().MarkRetrying(gomock.Any(), record.ID, now).Return(nil)
	s.mockRecoverer.EXPECT().Recover(gomock.Any(), grant).Return(nil)
	s.mockFailures.EXPECT().MarkRecovered(gomock.Any(), record.ID, now).Return(nil)

	s.Require().NoError(s.scheduler.Run(context.Background()))
}

// The reschedule delay doubles per attempt: base*2 after the first failed
// retry, base*4 after the second.
func (s *DeadLetterSchedulerTestSuite) TestRun_ReschedulesWithDoublingBackoff() {
	cases := []struct {
		retryCount int
		wantDelay  time.Duration
	}{
		{retryCount: 0, wantDelay: s.cfg.RetryBaseDelay * 2},
		{retryCount: 1, wantDelay: s.cfg.RetryBaseDelay * 4},
	}

	for _, tc := range cases {
		record, grant := s.dueRecord(tc.retryCount)
		now := s.clock.Now()

		s.mockFailures.EXPECT().GetDue(gomock.Any(), now, gomock.Any()).
			Return([]jobs.FailureRecord{record}, nil)
		s.mockFailures.EXPECT().MarkRetrying(gomock.Any(), record.ID, now).Return(nil)
		s.mockRecoverer.EXPECT().Recover(gomock.Any(), grant).Return(errs.New("still failing"))
		s.mockFailures.EXPECT().
			Reschedule(gomock.Any(), record.ID, now.Add(tc.wantDelay), gomock.Any()).Return(nil)

		s.Require().NoError(s.scheduler.Run(context.Background()))
	}
}

// The last permitted attempt failing must abandon, not reschedule.
func (s *DeadLetterSchedulerTestSuite) TestRun_AbandonsAtRetryCeiling() {
	record, grant := s.dueRecord(s.cfg.MaxRetryCount - 1)
	now := s.clock.Now()

	s.mockFailures.EXPECT().GetDue(gomock.Any(), now, gomock.Any()).
		Return([]jobs.FailureRecord{record}, nil)
	s.mockFailures.EXPECT().MarkRetrying(gomock.Any(), record.ID, now).Return(nil)
	s.mockRecoverer.EXPECT().Recover(gomock.Any(), grant).Return(errs.New("permanent failure"))
	s.mockFailures.EXPECT().Abandon(gomock.Any(), record.ID, gomock.Any()).Return(nil)

	s.Require().NoError(s.scheduler.Run(context.Background()))
}

func (s *DeadLetterSchedulerTestSuite) TestRun_OneStuckRecordDoesNotBlockOthers() {
	stuck, _ := s.dueRecord(0)
	healthy, healthyGrant := s.dueRecord(0)
	now := s.clock.Now()

	s.mockFailures.EXPECT().GetDue(gomock.Any(), now, gomock.Any()).
		Return([]jobs.FailureRecord{stuck, healthy}, nil)
	s.mockFailures.EXPECT().MarkRetrying(gomock.Any(), stuck.ID, now).Return(errs.New("update failed"))
	s.mockFailures.EXPECT().MarkRetrying(gomock.Any(), healthy.ID, now).Return(nil)
	s.mockRecoverer.EXPECT().Recover(gomock.Any(), healthyGrant).Return(nil)
	s.mockFailures.EXPECT().MarkRecovered(gomock.Any(), healthy.ID, now).Return(nil)

	s.Require().NoError(s.scheduler.Run(context.Background()))
}

type GrantRecovererTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockUoW       *uowmock.MockUnitOfWork
	mockCampaigns *jobsmock.MockCampaignStore
	mockGrants    *jobsmock.MockGrantStore
	mockOutbox    *jobsmock.MockOutboxStore
	clock         *clock.MockClock
	cfg           config.JobsConfig
	recoverer     jobs.GrantRecoverer
}

func (s *GrantRecovererTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUoW = uowmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockCampaigns = jobsmock.NewMockCampaignStore(s.mockCtrl)
	s.mockGrants = jobsmock.NewMockGrantStore(s.mockCtrl)
	s.mockOutbox = jobsmock.NewMockOutboxStore(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.cfg = config.NewTestConfig().Jobs

	s.recoverer = jobs.NewGrantRecoverer(
		s.mockUoW, s.mockCampaigns, s.mockGrants, s.mockOutbox, s.clock, s.cfg,
	)
}

func (s *GrantRecovererTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGrantRecovererSuite(t *testing.T) {
	suite.Run(t, new(GrantRecovererTestSuite))
}

func (s *GrantRecovererTestSuite) passthroughUoW() {
	s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
			return fn(ctx, nil)
		})
}

func (s *GrantRecovererTestSuite) TestRecover_AlreadyPersistedIsSuccess() {
	grant := pending.Grant{CampaignID: uuid.New(), UserID: uuid.New()}
	s.mockGrants.EXPECT().Exists(gomock.Any(), grant.CampaignID, grant.UserID).Return(true, nil)
	// No transaction is opened at all.

	s.Require().NoError(s.recoverer.Recover(context.Background(), grant))
}

func (s *GrantRecovererTestSuite) TestRecover_InsertsAndIncrements() {
	grant := pending.Grant{CampaignID: uuid.New(), UserID: uuid.New()}
	s.mockGrants.EXPECT().Exists(gomock.Any(), grant.CampaignID, grant.UserID).Return(false, nil)
	s.passthroughUoW()

	s.mockCampaigns.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), grant.CampaignID).
		Return(&commands.CampaignSnapshot{ID: grant.CampaignID, MaxUnits: 10, IssuedCount: 3}, nil)
	issuedAt := s.clock.Now()
	s.mockGrants.EXPECT().
		BulkInsert(gomock.Any(), gomock.Any(), grant.CampaignID, []uuid.UUID{grant.UserID}, issuedAt, issuedAt.Add(s.cfg.GrantTTL)).
		Return(int64(1), nil)
	s.mockCampaigns.EXPECT().IncrementIssued(gomock.Any(), gomock.Any(), grant.CampaignID, 1).Return(nil)
	s.mockOutbox.EXPECT().
		Append(gomock.Any(), gomock.Any(), jobs.EventTypeCouponIssuedBatch, gomock.Any()).Return(nil)

	s.Require().NoError(s.recoverer.Recover(context.Background(), grant))
}

func (s *GrantRecovererTestSuite) TestRecover_ExhaustedCampaignSkips() {
	grant := pending.Grant{CampaignID: uuid.New(), UserID: uuid.New()}
	s.mockGrants.EXPECT().Exists(gomock.Any(), grant.CampaignID, grant.UserID).Return(false, nil)
	s.passthroughUoW()

	s.mockCampaigns.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), grant.CampaignID).
		Return(&commands.CampaignSnapshot{ID: grant.CampaignID, MaxUnits: 10, IssuedCount: 10}, nil)
	// No insert; skipping an exhausted campaign is a successful recovery.

	s.Require().NoError(s.recoverer.Recover(context.Background(), grant))
}

func (s *GrantRecovererTestSuite) TestRecover_RaceLostLeavesCounterAlone() {
	grant := pending.Grant{CampaignID: uuid.New(), UserID: uuid.New()}
	s.mockGrants.EXPECT().Exists(gomock.Any(), grant.CampaignID, grant.UserID).Return(false, nil)
	s.passthroughUoW()

	s.mockCampaigns.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), grant.CampaignID).
		Return(&commands.CampaignSnapshot{ID: grant.CampaignID, MaxUnits: 10, IssuedCount: 3}, nil)
	s.mockGrants.EXPECT().
		BulkInsert(gomock.Any(), gomock.Any(), grant.CampaignID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(0), nil)

	s.Require().NoError(s.recoverer.Recover(context.Background(), grant))
}

func (s *GrantRecovererTestSuite) TestRecover_InsertFailurePropagates() {
	grant := pending.Grant{CampaignID: uuid.New(), UserID: uuid.New()}
	s.mockGrants.EXPECT().Exists(gomock.Any(), grant.CampaignID, grant.UserID).Return(false, nil)
	s.passthroughUoW()

	s.mockCampaigns.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), grant.CampaignID).
		Return(&commands.CampaignSnapshot{ID: grant.CampaignID, MaxUnits: 10, IssuedCount: 0}, nil)
	s.mockGrants.EXPECT().
		BulkInsert(gomock.Any(), gomock.Any(), grant.CampaignID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(0), errs.New("insert failed"))

	s.Require().Error(s.recoverer.Recover(context.Background(), grant))
}
