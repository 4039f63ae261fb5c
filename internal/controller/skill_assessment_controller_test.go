package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"skillshare-backend/internal/model"
)

type fakeSkillService struct {
	questions   []model.Quiz
	quizErr     error
	history     []model.SkillAssessment
	latest      *model.SkillAssessment
	gotAnswers  map[string]string
	gotUserID   string
	processResp *model.SkillAssessment
}

func (f *fakeSkillService) GetQuizQuestions() ([]model.Quiz, error) {
	return f.questions, f.quizErr
}

func (f *fakeSkillService) ProcessAssessment(answers map[string]string, userID string) (*model.SkillAssessment, error) {
	f.gotAnswers = answers
	f.gotUserID = userID
	if f.processResp == nil {
		return nil, errors.New("not configured")
	}
	return f.processResp, nil
}

func (f *fakeSkillService) GetHistory(userID string) ([]model.SkillAssessment, error) {
	return f.history, nil
}

func (f *fakeSkillService) GetLatest(userID string) (*model.SkillAssessment, error) {
	return f.latest, nil
}

type fakeUserService struct {
	users map[string]bool
}

func (f *fakeUserService) CreateUser(user *model.User) error { return nil }

func (f *fakeUserService) GetUserByID(id string) (*model.User, error) {
	if f.users[id] {
		return &model.User{ID: id}, nil
	}
	return nil, errors.New("user not found")
}

func (f *fakeUserService) UserExists(id string) (bool, error) {
	return f.users[id], nil
}

type fakeReportService struct {
	reports []model.SkillReport
}

func (f *fakeReportService) GenerateReport(assessment *model.SkillAssessment) error { return nil }

func (f *fakeReportService) GetReportsByUser(userID string) ([]model.SkillReport, error) {
	return f.reports, nil
}

func newSkillRouter(skill *fakeSkillService, users *fakeUserService, reports *fakeReportService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	sc := NewSkillAssessmentController(skill, users, reports)
	r.GET("/api/skills/quiz", sc.GetQuizQuestions)
	r.POST("/api/skills/assess", sc.SubmitAssessment)
	r.GET("/api/skills/history/:userId", sc.GetHistory)
	r.GET("/api/skills/latest/:userId", sc.GetLatest)
	r.POST("/api/skills/select-favorite", sc.SelectFavorite)
	r.GET("/api/skills/reports/:userId", sc.GetReports)
	return r
}

func TestGetQuizQuestionsEndpoint(t *testing.T) {
	skill := &fakeSkillService{
		questions: []model.Quiz{{
			ID:       "q1",
			Question: "What does DNS stand for?",
			Options:  datatypes.NewJSONSlice([]string{"A", "B"}),
			Category: "Networking",
			Points:   10,
		}},
	}
	r := newSkillRouter(skill, &fakeUserService{}, &fakeReportService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/skills/quiz", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "q1", got[0]["id"])
	// The correct answer never leaves the server.
	assert.NotContains(t, got[0], "correctAnswer")
	assert.NotContains(t, strings.ToLower(w.Body.String()), "correctanswer")
}

func TestGetQuizQuestionsEmptyCatalog(t *testing.T) {
	r := newSkillRouter(&fakeSkillService{}, &fakeUserService{}, &fakeReportService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/skills/quiz", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGetQuizQuestionsServiceFailure(t *testing.T) {
	skill := &fakeSkillService{quizErr: errors.New("db down")}
	r := newSkillRouter(skill, &fakeUserService{}, &fakeReportService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/skills/quiz", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSubmitAssessment(t *testing.T) {
	skill := &fakeSkillService{
		processResp: &model.SkillAssessment{ID: "a1", UserID: "u1", TotalScore: 10},
	}
	users := &fakeUserService{users: map[string]bool{"u1": true}}
	r := newSkillRouter(skill, users, &fakeReportService{})

	body := strings.NewReader(`{"q1": "A", "q2": 42}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/skills/assess?userId=u1", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", skill.gotUserID)
	// Scalar answer values are stringified before scoring.
	assert.Equal(t, map[string]string{"q1": "A", "q2": "42"}, skill.gotAnswers)
}

func TestSubmitAssessmentMissingUserID(t *testing.T) {
	r := newSkillRouter(&fakeSkillService{}, &fakeUserService{}, &fakeReportService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/skills/assess", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitAssessmentUnknownUser(t *testing.T) {
	r := newSkillRouter(&fakeSkillService{}, &fakeUserService{users: map[string]bool{}}, &fakeReportService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/skills/assess?userId=ghost", strings.NewReader(`{"q1":"A"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitAssessmentInvalidBody(t *testing.T) {
	users := &fakeUserService{users: map[string]bool{"u1": true}}
	r := newSkillRouter(&fakeSkillService{}, users, &fakeReportService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/skills/assess?userId=u1", strings.NewReader(`not json`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetHistoryEmptyIsArrayNot404(t *testing.T) {
	r := newSkillRouter(&fakeSkillService{}, &fakeUserService{}, &fakeReportService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/skills/history/u1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestGetLatestFound(t *testing.T) {
	skill := &fakeSkillService{latest: &model.SkillAssessment{ID: "a9", UserID: "u1"}}
	r := newSkillRouter(skill, &fakeUserService{}, &fakeReportService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/skills/latest/u1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "a9", got["id"])
}

func TestGetLatestNone(t *testing.T) {
	r := newSkillRouter(&fakeSkillService{}, &fakeUserService{}, &fakeReportService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/skills/latest/u1", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSelectFavorite(t *testing.T) {
	r := newSkillRouter(&fakeSkillService{}, &fakeUserService{}, &fakeReportService{})

	body := strings.NewReader(`{"userId":"u1","skill":"Design"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/skills/select-favorite", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, true, got["success"])
	assert.Equal(t, "Design", got["skill"])
}

func TestGetReportsEmpty(t *testing.T) {
	r := newSkillRouter(&fakeSkillService{}, &fakeUserService{}, &fakeReportService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/skills/reports/u1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}
