package usecase

import (
	"strings"
	"time"

	"ats-backend/internal/domain"
)

const recentActivityCount = 5

type dashboardUsecase struct {
	repo domain.DataRepository
}

func NewDashboardUsecase(repo domain.DataRepository) domain.DashboardUsecase {
	return &dashboardUsecase{repo: repo}
}

func (u *dashboardUsecase) Stats() domain.DashboardStats {
	candidates := u.repo.Candidates()

	counts := make(map[string]int, len(domain.CandidateStatuses))
	for _, status := range domain.CandidateStatuses {
		counts[status] = 0
	}

	// interview dates are datetime-local strings; "today" is a prefix match
	today := time.Now().Format("2006-01-02")
	var todays []domain.TodayInterview

	for _, c := range candidates {
		counts[c.Status]++
		for _, iv := range c.Interviews {
			if !strings.HasPrefix(iv.Date, today) {
				continue
			}
			todays = append(todays, domain.TodayInterview{
				CandidateID:   c.ID,
				CandidateName: c.Name,
				Position:      c.Position,
				Date:          iv.Date,
				Type:          iv.Type,
				Location:      iv.Location,
			})
		}
	}

	activities := u.repo.Activities()
	if len(activities) > recentActivityCount {
		activities = activities[:recentActivityCount]
	}

	return domain.DashboardStats{
		TotalCandidates:  len(candidates),
		TotalPosts:       len(u.repo.EducationPosts()),
		StatusCounts:     counts,
		TodayInterviews:  todays,
		RecentActivities: activities,
	}
}
