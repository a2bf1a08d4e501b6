package pending

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrMalformedEntry = errors.New("malformed pending grant entry")

// Grant is a queued admission awaiting durable persistence. Entries are
// encoded once at the coordinator boundary and decoded once at the drain
// boundary; nothing else touches the wire form.
type Grant struct {
	CampaignID uuid.UUID
	UserID     uuid.UUID
}

// Encode renders the queue wire form "campaignID:userID".
func (g Grant) Encode() string {
	return g.CampaignID.String() + ":" + g.UserID.String()
}

func Decode(entry string) (Grant, error) {
	left, right, ok := strings.Cut(entry, ":")
	if !ok {
		return Grant{}, ErrMalformedEntry
	}

	campaignID, err := uuid.Parse(left)
	if err != nil {
		return Grant{}, ErrMalformedEntry
	}
	userID, err := uuid.Parse(right)
	if err != nil {
		return Grant{}, ErrMalformedEntry
	}

	return Grant{CampaignID: campaignID, UserID: userID}, nil
}
