package campaign

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuota  = errors.New("campaign quota must be positive")
	ErrInvalidWindow = errors.New("campaign active window is inverted")
)

// Campaign is a capacity-bounded coupon campaign. maxUnits is immutable once
// issuance starts; issuedCount mirrors the durable counter, not the coordinator.
type Campaign struct {
	id          uuid.UUID
	name        string
	maxUnits    int
	activeFrom  *time.Time
	activeUntil *time.Time
	issuedCount int
}

func NewCampaign(
	id uuid.UUID,
	name string,
	maxUnits int,
	activeFrom, activeUntil *time.Time,
	issuedCount int,
) (*Campaign, error) {
	if maxUnits <= 0 {
		return nil, ErrInvalidQuota
	}
	if activeFrom != nil && activeUntil != nil && activeUntil.Before(*activeFrom) {
		return nil, ErrInvalidWindow
	}

	return &Campaign{
		id:          id,
		name:        name,
		maxUnits:    maxUnits,
		activeFrom:  activeFrom,
		activeUntil: activeUntil,
		issuedCount: issuedCount,
	}, nil
}

func (c *Campaign) IsActiveAt(t time.Time) bool {
	if c.activeFrom != nil && t.Before(*c.activeFrom) {
		return false
	}
	if c.activeUntil != nil && t.After(*c.activeUntil) {
		return false
	}
	return true
}

// IsExhausted reflects the durable snapshot only. The coordinator remains
// authoritative for the admission decision.
func (c *Campaign) IsExhausted() bool {
	return c.issuedCount >= c.maxUnits
}

func (c *Campaign) Remaining() int {
	remaining := c.maxUnits - c.issuedCount
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (c *Campaign) ID() uuid.UUID          { return c.id }
func (c *Campaign) Name() string           { return c.name }
func (c *Campaign) MaxUnits() int          { return c.maxUnits }
func (c *Campaign) ActiveFrom() *time.Time { return c.activeFrom }
func (c *Campaign) ActiveUntil() *time.Time { return c.activeUntil }
func (c *Campaign) IssuedCount() int       { return c.issuedCount }
