package response

import "coupon-issuance/internal/usecase/commands"

type AdmissionResponse struct {
	Status string `json:"status"`
}

func FromAdmissionStatus(status commands.AdmissionStatus) AdmissionResponse {
	return AdmissionResponse{Status: status.String()}
}

type QueueDepthResponse struct {
	CampaignID string `json:"campaignId"`
	Depth      int64  `json:"depth"`
}

type CreateCampaignResponse struct {
	ID string `json:"id"`
}
