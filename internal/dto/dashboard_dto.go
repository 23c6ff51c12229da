package dto

import "rokto.app/bloodlink/internal/model"

// AdminStats aggregates the counters shown on the admin dashboard.
// All four are fetched together; any failure discards the whole set.
type AdminStats struct {
	TotalUsers    int64 `json:"total_users"`
	TotalFunding  int64 `json:"total_funding"`
	TotalRequests int64 `json:"total_requests"`
	TotalBlogs    int64 `json:"total_blogs"`
}

type DonorStats struct {
	MyRequests     int64                   `json:"my_requests"`
	RecentRequests []model.DonationRequest `json:"recent_requests"`
}

type VolunteerStats struct {
	TotalRequests int64            `json:"total_requests"`
	ByStatus      map[string]int64 `json:"by_status"`
}
