package model

// Stats is the admin dashboard summary.
// TodayDownloads and Storage are display figures, not invariant-bearing counters.
type Stats struct {
	TotalUsers     int    `json:"totalUsers"`
	TotalDocuments int    `json:"totalDocuments"`
	TodayDownloads int    `json:"todayDownloads"`
	Storage        string `json:"storage"`
}
