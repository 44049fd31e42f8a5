package domain

// TodayInterview is one interview scheduled for the current day, flattened
// for the dashboard.
type TodayInterview struct {
	CandidateID   string `json:"candidateId"`
	CandidateName string `json:"candidateName"`
	Position      string `json:"position,omitempty"`
	Date          string `json:"date"`
	Type          string `json:"type"`
	Location      string `json:"location,omitempty"`
}

// DashboardStats aggregates the numbers the dashboard page shows.
type DashboardStats struct {
	TotalCandidates  int              `json:"totalCandidates"`
	TotalPosts       int              `json:"totalPosts"`
	StatusCounts     map[string]int   `json:"statusCounts"`
	TodayInterviews  []TodayInterview `json:"todayInterviews"`
	RecentActivities []Activity       `json:"recentActivities"`
}

type DashboardUsecase interface {
	Stats() DashboardStats
}
