package commands

import (
	"context"
	"time"

	"coupon-issuance/internal/domain/campaign"
	sqlc "coupon-issuance/internal/infra/sqlc/generated"
	"coupon-issuance/internal/infra/uow"
	"coupon-issuance/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCampaignCreateFailed = errs.New("campaign create failed")

type CreateCampaignInput struct {
	Name        string
	MaxUnits    int
	ActiveFrom  *time.Time
	ActiveUntil *time.Time
}

type CampaignWrites interface {
	Create(ctx context.Context, db sqlc.DBTX, name string, maxUnits int, activeFrom, activeUntil *time.Time) (*CampaignSnapshot, error)
}

type CampaignCommands interface {
	Create(ctx context.Context, input CreateCampaignInput) (uuid.UUID, error)
}

type campaignUseCaseImpl struct {
	campaignWrites CampaignWrites
	uow            uow.UnitOfWork
}

func NewCampaignCommands(campaignWrites CampaignWrites, uow uow.UnitOfWork) CampaignCommands {
	return &campaignUseCaseImpl{
		campaignWrites: campaignWrites,
		uow:            uow,
	}
}

func (u *campaignUseCaseImpl) Create(ctx context.Context, input CreateCampaignInput) (uuid.UUID, error) {
	// Entity construction enforces quota and window invariants before any write.
	if _, err := campaign.NewCampaign(
		uuid.Nil, input.Name, input.MaxUnits,
		input.ActiveFrom, input.ActiveUntil, 0,
	); err != nil {
		return uuid.Nil, errs.Mark(err, ErrCampaignCreateFailed)
	}

	var created *CampaignSnapshot
	err := u.uow.Within(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		snapshot, err := u.campaignWrites.Create(ctx, db, input.Name, input.MaxUnits, input.ActiveFrom, input.ActiveUntil)
		if err != nil {
			return err
		}
		created = snapshot
		return nil
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrCampaignCreateFailed)
	}

	return created.ID, nil
}
