package coordinator

import (
	"context"

	"github.com/google/uuid"
)

type AdmitStatus int

const (
	AdmitGranted AdmitStatus = iota + 1
	AdmitDuplicate
	AdmitExhausted
)

func (s AdmitStatus) String() string {
	switch s {
	case AdmitGranted:
		return "GRANTED"
	case AdmitDuplicate:
		return "DUPLICATE"
	case AdmitExhausted:
		return "EXHAUSTED"
	default:
		return "UNKNOWN"
	}
}

// Coordinator is the admission-time source of truth for a campaign's issued
// set. Its state is a cache-tier optimization over grant_records, rebuildable
// on loss; exactness of the Admit decision is what it guarantees.
type Coordinator interface {
	// Admit decides grant/duplicate/exhausted for one user in one atomic step
	// and, when enqueue is set, pushes the pending grant in that same step.
	Admit(ctx context.Context, campaignID, userID uuid.UUID, maxUnits int, enqueue bool) (AdmitStatus, error)

	// Count returns the size of the campaign's issued set.
	Count(ctx context.Context, campaignID uuid.UUID) (int64, error)

	// Reset drops the campaign's issued set and pending queue. Operational use only.
	Reset(ctx context.Context, campaignID uuid.UUID) error

	// DrainQueue pops up to max pending entries across all campaigns with
	// queued work. Entries are raw wire strings; the caller decodes them.
	DrainQueue(ctx context.Context, max int) ([]string, error)

	// QueueDepth returns the campaign's pending-queue length.
	QueueDepth(ctx context.Context, campaignID uuid.UUID) (int64, error)
}
