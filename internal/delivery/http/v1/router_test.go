package v1_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ats-backend/config"
	v1 "ats-backend/internal/delivery/http/v1"
	"ats-backend/internal/domain"
	"ats-backend/internal/repository/localdata"
	"ats-backend/internal/usecase"
	"ats-backend/pkg/auth"
	"ats-backend/pkg/localstore"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router *gin.Engine
	repo   domain.DataRepository
	token  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := localdata.New(localstore.NewMemory(), nil)
	require.NoError(t, repo.Load())
	repo.Reset()

	cfg := &config.Config{
		Environment:            "test",
		FrontendURL:            "http://localhost:3000",
		JWTSecret:              "test-secret",
		LoginRateLimit:         1000,
		LoginRateWindowSeconds: 60,
	}
	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Hour)
	validate := validator.New()

	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        usecase.NewAuthUsecase(usecase.DefaultAllowlist("", ""), tokens),
		CandidateUC:   usecase.NewCandidateUsecase(repo, validate),
		EducationUC:   usecase.NewEducationUsecase(repo, validate),
		BackupUC:      usecase.NewBackupUsecase(repo),
		SpreadsheetUC: usecase.NewSpreadsheetUsecase(repo),
		DashboardUC:   usecase.NewDashboardUsecase(repo),
		Repo:          repo,
		Tokens:        tokens,
		Config:        cfg,
	})

	token, err := tokens.Generate("admin", domain.RoleAdmin)
	require.NoError(t, err)

	return &testServer{router: router, repo: repo, token: token}
}

func (s *testServer) do(t *testing.T, method, path string, body []byte, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	RequestID string          `json:"request_id"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/v1/health", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeEnvelope(t, w).Success)
}

func TestLoginEndpoint(t *testing.T) {
	s := newTestServer(t)

	t.Run("valid credentials", func(t *testing.T) {
		body, _ := json.Marshal(domain.LoginRequest{Username: "admin", Password: "admin123"})
		w := s.do(t, http.MethodPost, "/v1/auth/login", body, false)
		require.Equal(t, http.StatusOK, w.Code)

		var resp domain.LoginResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, domain.RoleAdmin, resp.Role)
	})

	t.Run("bad credentials", func(t *testing.T) {
		body, _ := json.Marshal(domain.LoginRequest{Username: "admin", Password: "wrong"})
		w := s.do(t, http.MethodPost, "/v1/auth/login", body, false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/v1/auth/login", []byte(`{}`), false)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/v1/candidates", nil, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/v1/candidates", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// cookie works as an alternative to the header
	req = httptest.NewRequest(http.MethodGet, "/v1/candidates", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: s.token})
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCandidateLifecycle(t *testing.T) {
	s := newTestServer(t)

	body, _ := json.Marshal(domain.CandidateInput{
		Name:          "김철수",
		Email:         "kim@example.com",
		Position:      "프론트엔드 개발자",
		TechnicalTags: []string{"React"},
	})
	w := s.do(t, http.MethodPost, "/v1/candidates", body, true)
	require.Equal(t, http.StatusCreated, w.Code)

	var created domain.Candidate
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, domain.StatusNew, created.Status)

	w = s.do(t, http.MethodGet, "/v1/candidates/"+created.ID, nil, true)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPut, "/v1/candidates/"+created.ID, []byte(`{"status":"screening"}`), true)
	require.Equal(t, http.StatusOK, w.Code)
	var updated domain.Candidate
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &updated))
	assert.Equal(t, domain.StatusScreening, updated.Status)
	assert.Equal(t, "김철수", updated.Name)

	w = s.do(t, http.MethodPost, "/v1/candidates/"+created.ID+"/interviews",
		[]byte(`{"date":"2026-09-01T10:00","type":"1차","location":"회의실 A"}`), true)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = s.do(t, http.MethodPost, "/v1/candidates/"+created.ID+"/evaluations",
		[]byte(`{"technicalScore":8,"communicationScore":7,"culturalFitScore":9}`), true)
	require.Equal(t, http.StatusCreated, w.Code)
	var ev domain.Evaluation
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &ev))
	assert.InDelta(t, 8.0, ev.TotalScore, 1e-9)

	w = s.do(t, http.MethodDelete, "/v1/candidates/"+created.ID, nil, true)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/v1/candidates/"+created.ID, nil, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCandidateExportRoute(t *testing.T) {
	s := newTestServer(t)
	s.repo.AddCandidate(domain.CandidateInput{Name: "김철수", Email: "kim@example.com"})

	w := s.do(t, http.MethodGet, "/v1/candidates/export", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "ats_candidates_")
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
}

func TestBackupRoutes(t *testing.T) {
	s := newTestServer(t)
	s.repo.AddCandidate(domain.CandidateInput{Name: "김철수", Email: "kim@example.com"})

	w := s.do(t, http.MethodGet, "/v1/backup/export", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "ats-backup-")

	var snap domain.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Len(t, snap.Candidates, 1)

	w = s.do(t, http.MethodPost, "/v1/backup/import", []byte(`[1,2,3]`), true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	doc, err := json.Marshal(snap)
	require.NoError(t, err)
	w = s.do(t, http.MethodPost, "/v1/backup/import", doc, true)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPost, "/v1/backup/reset", nil, true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, s.repo.Candidates())
}

func TestUploadRejectsWrongExtension(t *testing.T) {
	s := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "candidates.csv")
	if err == nil {
		fw.Write([]byte("name,email"))
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/v1/upload/candidates", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.token)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestActivityAndDashboardRoutes(t *testing.T) {
	s := newTestServer(t)
	s.repo.AddCandidate(domain.CandidateInput{Name: "김철수", Email: "kim@example.com"})

	w := s.do(t, http.MethodGet, "/v1/activities", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	var activities []domain.Activity
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &activities))
	require.NotEmpty(t, activities)
	assert.Equal(t, domain.ActivityCandidateAdded, activities[0].Type)

	w = s.do(t, http.MethodGet, "/v1/dashboard/stats", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	var stats domain.DashboardStats
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &stats))
	assert.Equal(t, 1, stats.TotalCandidates)
}

func TestEducationRoutes(t *testing.T) {
	s := newTestServer(t)

	body, _ := json.Marshal(domain.EducationPostInput{Title: "면접 가이드", Content: "# 면접 가이드"})
	w := s.do(t, http.MethodPost, "/v1/education", body, true)
	require.Equal(t, http.StatusCreated, w.Code)

	var post domain.EducationPost
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &post))

	w = s.do(t, http.MethodGet, "/v1/education/"+post.ID+"/html", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "h1")

	w = s.do(t, http.MethodDelete, "/v1/education/"+post.ID, nil, true)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/v1/education/"+post.ID, nil, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
