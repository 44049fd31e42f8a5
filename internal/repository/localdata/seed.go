package localdata

import "ats-backend/internal/domain"

// seedLocked populates the repository with representative records for a
// first run against an empty store.
func (r *Repository) seedLocked() {
	ts := now()

	r.candidates = []domain.Candidate{
		{
			ID:            newID(),
			Name:          "김철수",
			Email:         "kim.cs@example.com",
			Phone:         "010-1234-5678",
			Position:      "프론트엔드 개발자",
			Status:        domain.StatusScreening,
			TechnicalTags: []string{"React", "TypeScript"},
			ExperienceTag: "경력 3년",
			CreatedAt:     ts,
			UpdatedAt:     ts,
		},
		{
			ID:            newID(),
			Name:          "이영희",
			Email:         "lee.yh@example.com",
			Phone:         "010-9876-5432",
			Position:      "백엔드 개발자",
			Status:        domain.StatusNew,
			TechnicalTags: []string{"Go", "PostgreSQL"},
			ExperienceTag: "신입",
			CreatedAt:     ts,
			UpdatedAt:     ts,
		},
	}

	r.posts = []domain.EducationPost{
		{
			ID:    newID(),
			Title: "기술 면접 가이드",
			Content: "# 기술 면접 가이드\n\n" +
				"면접관이 지켜야 할 기본 원칙입니다.\n\n" +
				"## 준비\n\n" +
				"- 이력서와 평가 기준을 미리 확인합니다\n" +
				"- 직무와 무관한 질문은 피합니다\n\n" +
				"## 평가\n\n" +
				"기술 역량, 커뮤니케이션, 컬처핏 세 항목을 1~10점으로 평가합니다.\n",
			CreatedAt: ts,
			UpdatedAt: ts,
		},
	}

	r.activities = nil
	r.appendActivityLocked(domain.ActivitySystemStarted, "시스템이 시작되었습니다.")
}
