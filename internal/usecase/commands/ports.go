package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type CampaignSnapshot struct {
	ID          uuid.UUID
	Name        string
	MaxUnits    int
	ActiveFrom  *time.Time
	ActiveUntil *time.Time
	IssuedCount int
}

// CampaignReads resolves campaign metadata from the system of record.
type CampaignReads interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CampaignSnapshot, error)
}
