package commands

import (
	"context"

	"coupon-issuance/internal/coordinator"
	"coupon-issuance/internal/domain/campaign"
	"coupon-issuance/internal/infra"
	"coupon-issuance/internal/pkg/cache"
	"coupon-issuance/internal/pkg/clock"
	"coupon-issuance/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCampaignLookupFailed   = errs.New("campaign lookup failed")
	ErrCoordinatorUnavailable = errs.New("coordinator unavailable")
	ErrAdmissionFailed        = errs.New("admission failed")
)

type AdmissionStatus int

const (
	StatusGranted AdmissionStatus = iota + 1
	StatusDuplicate
	StatusExhausted
	StatusCampaignNotFound
	StatusCampaignInactive
)

func (s AdmissionStatus) String() string {
	switch s {
	case StatusGranted:
		return "GRANTED"
	case StatusDuplicate:
		return "DUPLICATE"
	case StatusExhausted:
		return "EXHAUSTED"
	case StatusCampaignNotFound:
		return "CAMPAIGN_NOT_FOUND"
	case StatusCampaignInactive:
		return "CAMPAIGN_INACTIVE"
	default:
		return "UNKNOWN"
	}
}

type AdmissionCommands interface {
	// TryAdmit is the only synchronous entry point of the pipeline. Rejections
	// are statuses, not errors; an error means the decision could not be made.
	TryAdmit(ctx context.Context, userID, campaignID uuid.UUID) (AdmissionStatus, error)

	// ResetCoordinator clears a campaign's admission state. Operational use
	// only; granted-but-unpersisted entries are lost.
	ResetCoordinator(ctx context.Context, campaignID uuid.UUID) error
}

type admissionUseCaseImpl struct {
	campaignReads CampaignReads
	coord         coordinator.Coordinator
	campaignCache *cache.TTL[*CampaignSnapshot]
	clock         clock.Clock
}

func NewAdmissionCommands(
	campaignReads CampaignReads,
	coord coordinator.Coordinator,
	campaignCache *cache.TTL[*CampaignSnapshot],
	clock clock.Clock,
) AdmissionCommands {
	return &admissionUseCaseImpl{
		campaignReads: campaignReads,
		coord:         coord,
		campaignCache: campaignCache,
		clock:         clock,
	}
}

func (u *admissionUseCaseImpl) TryAdmit(ctx context.Context, userID, campaignID uuid.UUID) (AdmissionStatus, error) {
	snapshot, err := u.resolveCampaign(ctx, campaignID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return StatusCampaignNotFound, nil
		}
		return 0, errs.Mark(err, ErrCampaignLookupFailed)
	}

	entity, err := campaign.NewCampaign(
		snapshot.ID, snapshot.Name, snapshot.MaxUnits,
		snapshot.ActiveFrom, snapshot.ActiveUntil, snapshot.IssuedCount,
	)
	if err != nil {
		return 0, errs.Mark(err, ErrCampaignLookupFailed)
	}

	if !entity.IsActiveAt(u.clock.Now()) {
		return StatusCampaignInactive, nil
	}

	// Fail fast on the durable snapshot; the coordinator stays authoritative.
	if entity.IsExhausted() {
		return StatusExhausted, nil
	}

	status, err := u.coord.Admit(ctx, campaignID, userID, entity.MaxUnits(), true)
	if err != nil {
		return 0, errs.Mark(err, ErrCoordinatorUnavailable)
	}

	switch status {
	case coordinator.AdmitGranted:
		return StatusGranted, nil
	case coordinator.AdmitDuplicate:
		return StatusDuplicate, nil
	case coordinator.AdmitExhausted:
		return StatusExhausted, nil
	default:
		return 0, ErrAdmissionFailed
	}
}

func (u *admissionUseCaseImpl) ResetCoordinator(ctx context.Context, campaignID uuid.UUID) error {
	if err := u.coord.Reset(ctx, campaignID); err != nil {
		return errs.Mark(err, ErrCoordinatorUnavailable)
	}
	u.campaignCache.Delete(campaignID.String())
	return nil
}

// resolveCampaign is a read-through cache over the system of record. The
// cached snapshot only gates metadata checks; counts are never trusted long.
func (u *admissionUseCaseImpl) resolveCampaign(ctx context.Context, campaignID uuid.UUID) (*CampaignSnapshot, error) {
	if snapshot, ok := u.campaignCache.Get(campaignID.String()); ok {
		return snapshot, nil
	}

	snapshot, err := u.campaignReads.FindByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	u.campaignCache.Set(campaignID.String(), snapshot)
	return snapshot, nil
}
