package response

import "coupon-issuance/internal/usecase/queries"

type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type StatusCountsResponse struct {
	Counts []StatusCountResponse `json:"counts"`
}

func FromStatusCounts(counts []queries.StatusCount) StatusCountsResponse {
	items := make([]StatusCountResponse, 0, len(counts))
	for _, c := range counts {
		items = append(items, StatusCountResponse{Status: c.Status, Count: c.Count})
	}
	return StatusCountsResponse{Counts: items}
}
