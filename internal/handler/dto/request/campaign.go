package request

import "time"

type CreateCampaignRequest struct {
	Name        string     `json:"name" binding:"required,max=255"`
	MaxUnits    int        `json:"maxUnits" binding:"required,gt=0"`
	ActiveFrom  *time.Time `json:"activeFrom"`
	ActiveUntil *time.Time `json:"activeUntil"`
}
