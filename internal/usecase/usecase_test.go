package usecase_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"ats-backend/internal/domain"
	"ats-backend/internal/repository/localdata"
	"ats-backend/internal/usecase"
	"ats-backend/pkg/apperror"
	"ats-backend/pkg/auth"
	"ats-backend/pkg/localstore"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newRepo(t *testing.T) domain.DataRepository {
	t.Helper()
	repo := localdata.New(localstore.NewMemory(), nil)
	require.NoError(t, repo.Load())
	repo.Reset()
	return repo
}

func assertStatusCode(t *testing.T, err error, code int) {
	t.Helper()
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok, "expected *apperror.AppError, got %T", err)
	assert.Equal(t, code, appErr.Code)
}

func TestCandidateValidation(t *testing.T) {
	uc := usecase.NewCandidateUsecase(newRepo(t), validator.New())

	t.Run("missing required fields", func(t *testing.T) {
		_, err := uc.Create(domain.CandidateInput{Name: "이름만"})
		require.Error(t, err)
		assertStatusCode(t, err, 400)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := uc.Create(domain.CandidateInput{
			Name:   "김개발",
			Email:  "kim@example.com",
			Status: "hired",
		})
		require.Error(t, err)
		assertStatusCode(t, err, 400)
	})

	t.Run("interview type outside fixed rounds", func(t *testing.T) {
		c, err := uc.Create(domain.CandidateInput{Name: "김개발", Email: "kim@example.com"})
		require.NoError(t, err)
		_, err = uc.ScheduleInterview(c.ID, domain.InterviewInput{Date: "2026-09-01T10:00", Type: "4차"})
		require.Error(t, err)
		assertStatusCode(t, err, 400)
	})

	t.Run("evaluation scores out of range", func(t *testing.T) {
		c, err := uc.Create(domain.CandidateInput{Name: "박개발", Email: "park@example.com"})
		require.NoError(t, err)
		_, err = uc.AddEvaluation(c.ID, domain.EvaluationInput{
			TechnicalScore:     11,
			CommunicationScore: 5,
			CulturalFitScore:   5,
		})
		require.Error(t, err)
		assertStatusCode(t, err, 400)
	})
}

func TestCandidateNotFound(t *testing.T) {
	uc := usecase.NewCandidateUsecase(newRepo(t), validator.New())

	_, err := uc.Get("missing")
	assertStatusCode(t, err, 404)

	name := "새 이름"
	_, err = uc.Update("missing", domain.CandidatePatch{Name: &name})
	assertStatusCode(t, err, 404)

	err = uc.Delete("missing")
	assertStatusCode(t, err, 404)

	_, err = uc.ScheduleInterview("missing", domain.InterviewInput{Date: "2026-09-01T10:00", Type: "1차"})
	assertStatusCode(t, err, 404)
}

func TestCandidateListFiltering(t *testing.T) {
	repo := newRepo(t)
	uc := usecase.NewCandidateUsecase(repo, validator.New())

	repo.AddCandidate(domain.CandidateInput{
		Name: "김철수", Email: "kim@example.com", Position: "프론트엔드 개발자",
		Status: domain.StatusScreening, TechnicalTags: []string{"React"}, ExperienceTag: "경력 3년",
	})
	repo.AddCandidate(domain.CandidateInput{
		Name: "이영희", Email: "lee@example.com", Position: "백엔드 개발자",
		Status: domain.StatusNew, TechnicalTags: []string{"Go"}, ExperienceTag: "신입",
	})
	repo.AddCandidate(domain.CandidateInput{
		Name: "박민수", Email: "park@example.com", Position: "백엔드 개발자",
		Status: domain.StatusNew, TechnicalTags: []string{"Go", "Redis"},
	})

	t.Run("search matches name email or position", func(t *testing.T) {
		assert.Len(t, uc.List(domain.CandidateFilter{Search: "백엔드"}), 2)
		assert.Len(t, uc.List(domain.CandidateFilter{Search: "LEE@"}), 1)
		assert.Empty(t, uc.List(domain.CandidateFilter{Search: "없는사람"}))
	})

	t.Run("status all is a pass-through", func(t *testing.T) {
		assert.Len(t, uc.List(domain.CandidateFilter{Status: "all"}), 3)
		assert.Len(t, uc.List(domain.CandidateFilter{Status: domain.StatusNew}), 2)
	})

	t.Run("tag matches technical or experience tags", func(t *testing.T) {
		assert.Len(t, uc.List(domain.CandidateFilter{Tag: "Go"}), 2)
		assert.Len(t, uc.List(domain.CandidateFilter{Tag: "경력 3년"}), 1)
	})

	t.Run("sort by name ascending", func(t *testing.T) {
		list := uc.List(domain.CandidateFilter{SortBy: "name", Order: "asc"})
		require.Len(t, list, 3)
		assert.Equal(t, "김철수", list[0].Name)
		assert.Equal(t, "박민수", list[1].Name)
		assert.Equal(t, "이영희", list[2].Name)
	})

	t.Run("default sort is newest first", func(t *testing.T) {
		list := uc.List(domain.CandidateFilter{})
		require.Len(t, list, 3)
		assert.Equal(t, "박민수", list[0].Name)
	})
}

func TestBackupExportFilename(t *testing.T) {
	uc := usecase.NewBackupUsecase(newRepo(t))
	_, filename := uc.Export()
	assert.Equal(t, fmt.Sprintf("ats-backup-%s.json", time.Now().Format("2006-01-02")), filename)
}

func TestBackupImport(t *testing.T) {
	t.Run("rejects documents that are not objects", func(t *testing.T) {
		uc := usecase.NewBackupUsecase(newRepo(t))
		for _, doc := range []string{"null", "[]", `"text"`, "{broken"} {
			assert.False(t, uc.Import([]byte(doc)), "doc %q", doc)
		}
	})

	t.Run("round-trips an exported document", func(t *testing.T) {
		source := newRepo(t)
		source.AddCandidate(domain.CandidateInput{Name: "김철수", Email: "kim@example.com"})
		source.AddEducationPost(domain.EducationPostInput{Title: "가이드", Content: "본문"})
		snap, _ := usecase.NewBackupUsecase(source).Export()

		data, err := json.Marshal(snap)
		require.NoError(t, err)

		target := newRepo(t)
		require.True(t, usecase.NewBackupUsecase(target).Import(data))
		assert.Equal(t, snap.Candidates, target.Candidates())
		assert.Equal(t, snap.EducationPosts, target.EducationPosts())
	})

	t.Run("partial document leaves other collections alone", func(t *testing.T) {
		repo := newRepo(t)
		repo.AddEducationPost(domain.EducationPostInput{Title: "기존 글", Content: "본문"})

		require.True(t, usecase.NewBackupUsecase(repo).Import([]byte(`{"candidates":[]}`)))
		assert.Empty(t, repo.Candidates())
		assert.Len(t, repo.EducationPosts(), 1)
	})
}

func TestEducationRenderHTML(t *testing.T) {
	repo := newRepo(t)
	uc := usecase.NewEducationUsecase(repo, validator.New())

	p, err := uc.Create(domain.EducationPostInput{
		Title:   "면접 가이드",
		Content: "# 면접 가이드\n\n- 준비\n- 평가",
	})
	require.NoError(t, err)

	html, err := uc.RenderHTML(p.ID)
	require.NoError(t, err)
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<li>준비</li>")

	_, err = uc.RenderHTML("missing")
	assertStatusCode(t, err, 404)
}

func TestSpreadsheetImport(t *testing.T) {
	repo := newRepo(t)
	uc := usecase.NewSpreadsheetUsecase(repo)

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"이름", "이메일", "연락처", "지원직무", "경력", "메모"},
		{"김철수", "kim@example.com", "010-1234-5678", "프론트엔드 개발자", "경력 3년", "추천 입사"},
		{"이영희", "", "", "백엔드 개발자", "", ""}, // no email
		{"", "ghost@example.com", "", "", "", ""}, // no name
		{"박민수", "park@example.com", "", "데브옵스 엔지니어", "신입", ""},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	result, err := uc.ImportCandidates(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Success)
	assert.Equal(t, 2, result.Failed)

	candidates := repo.Candidates()
	require.Len(t, candidates, 2)
	assert.Equal(t, "김철수", candidates[0].Name)
	assert.Equal(t, domain.StatusNew, candidates[0].Status)
	assert.Equal(t, "경력 3년", candidates[0].ExperienceTag)
	assert.Equal(t, "추천 입사", candidates[0].Notes)
}

func TestSpreadsheetImportRejectsGarbage(t *testing.T) {
	uc := usecase.NewSpreadsheetUsecase(newRepo(t))
	_, err := uc.ImportCandidates(bytes.NewReader([]byte("not a workbook")))
	require.Error(t, err)
	assertStatusCode(t, err, 400)
}

func TestSpreadsheetExport(t *testing.T) {
	repo := newRepo(t)
	repo.AddCandidate(domain.CandidateInput{
		Name: "김철수", Email: "kim@example.com", Position: "프론트엔드 개발자",
		TechnicalTags: []string{"React", "TypeScript"},
	})
	uc := usecase.NewSpreadsheetUsecase(repo)

	data, filename, err := uc.ExportCandidates(domain.CandidateFilter{})
	require.NoError(t, err)
	assert.Regexp(t, `^ats_candidates_\d{8}_\d{6}\.xlsx$`, filename)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Candidates")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "이름", rows[0][0])
	assert.Equal(t, "김철수", rows[1][0])
	assert.Equal(t, "React, TypeScript", rows[1][6])
}

func TestDashboardStats(t *testing.T) {
	repo := newRepo(t)
	uc := usecase.NewDashboardUsecase(repo)

	c := repo.AddCandidate(domain.CandidateInput{Name: "김철수", Email: "kim@example.com", Status: domain.StatusScreening})
	repo.AddCandidate(domain.CandidateInput{Name: "이영희", Email: "lee@example.com"})
	repo.ScheduleInterview(c.ID, domain.InterviewInput{
		Date: time.Now().Format("2006-01-02") + "T10:00",
		Type: "1차",
	})
	repo.AddEducationPost(domain.EducationPostInput{Title: "가이드", Content: "본문"})

	stats := uc.Stats()
	assert.Equal(t, 2, stats.TotalCandidates)
	assert.Equal(t, 1, stats.TotalPosts)
	// scheduling moved 김철수 from screening to interview
	assert.Equal(t, 1, stats.StatusCounts[domain.StatusInterview])
	assert.Equal(t, 1, stats.StatusCounts[domain.StatusNew])
	assert.Equal(t, 0, stats.StatusCounts[domain.StatusScreening])
	assert.Equal(t, 0, stats.StatusCounts[domain.StatusOffer])

	require.Len(t, stats.TodayInterviews, 1)
	assert.Equal(t, "김철수", stats.TodayInterviews[0].CandidateName)

	assert.LessOrEqual(t, len(stats.RecentActivities), 5)
	assert.NotEmpty(t, stats.RecentActivities)
}

func TestAuthLogin(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	uc := usecase.NewAuthUsecase(usecase.DefaultAllowlist("", ""), tokens)

	t.Run("known account", func(t *testing.T) {
		resp, err := uc.Login(domain.LoginRequest{Username: "admin", Password: "admin123"})
		require.NoError(t, err)
		assert.Equal(t, "admin", resp.Username)
		assert.Equal(t, domain.RoleAdmin, resp.Role)

		claims, err := tokens.Verify(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
		assert.Equal(t, domain.RoleAdmin, claims.Role)
	})

	t.Run("hr accounts share the hr role", func(t *testing.T) {
		for _, username := range []string{"hr1", "hr2"} {
			resp, err := uc.Login(domain.LoginRequest{Username: username, Password: "hr123"})
			require.NoError(t, err)
			assert.Equal(t, domain.RoleHR, resp.Role)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := uc.Login(domain.LoginRequest{Username: "admin", Password: "nope"})
		assertStatusCode(t, err, 401)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := uc.Login(domain.LoginRequest{Username: "intruder", Password: "admin123"})
		assertStatusCode(t, err, 401)
	})
}
