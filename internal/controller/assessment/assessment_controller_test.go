package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"careerworld/internal/dto"
	"careerworld/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockQuestionService struct {
	lastSkip  int
	lastLimit int
	questions []dto.QuestionResponseDTO
	err       error
}

func (m *mockQuestionService) Questions(skip, limit int) ([]dto.QuestionResponseDTO, error) {
	m.lastSkip = skip
	m.lastLimit = limit
	return m.questions, m.err
}

type mockAssessmentService struct {
	resp      *dto.AssessmentResponseDTO
	submitErr error
	history   []dto.AssessmentSummaryDTO
}

func (m *mockAssessmentService) Submit(ctx context.Context, owner *model.User, req dto.AssessmentSubmitDTO) (*dto.AssessmentResponseDTO, error) {
	if m.submitErr != nil {
		return nil, m.submitErr
	}
	return m.resp, nil
}

func (m *mockAssessmentService) History(ownerID uint) ([]dto.AssessmentSummaryDTO, error) {
	return m.history, nil
}

func setupRouter(questions *mockQuestionService, assessments *mockAssessmentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewAssessmentController(questions, assessments)
	r.GET("/assessment/questions", ctrl.GetQuestions)

	// stand-in for the auth middleware: pin a user on the context
	withUser := func(ctx *gin.Context) {
		ctx.Set("currentUser", &model.User{ID: 7, Email: "alice@example.com"})
	}
	r.POST("/assessment/submit", withUser, ctrl.Submit)
	r.GET("/assessment/history", withUser, ctrl.History)
	return r
}

func TestGetQuestions_Defaults(t *testing.T) {
	questions := &mockQuestionService{questions: []dto.QuestionResponseDTO{{ID: 1, Text: "Q1"}}}
	router := setupRouter(questions, &mockAssessmentService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/assessment/questions", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, questions.lastSkip)
	assert.Equal(t, 100, questions.lastLimit)
}

func TestGetQuestions_ClampsPagination(t *testing.T) {
	cases := []struct {
		query     string
		wantSkip  int
		wantLimit int
	}{
		{"?skip=10&limit=50", 10, 50},
		{"?skip=-5&limit=50", 0, 50},
		{"?limit=0", 0, 100},
		{"?limit=9999", 0, 100},
		{"?skip=abc&limit=abc", 0, 100},
	}

	for _, tc := range cases {
		questions := &mockQuestionService{}
		router := setupRouter(questions, &mockAssessmentService{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/assessment/questions"+tc.query, nil))

		assert.Equal(t, http.StatusOK, w.Code, "query %q", tc.query)
		assert.Equal(t, tc.wantSkip, questions.lastSkip, "query %q", tc.query)
		assert.Equal(t, tc.wantLimit, questions.lastLimit, "query %q", tc.query)
	}
}

func TestSubmit_Success(t *testing.T) {
	assessments := &mockAssessmentService{resp: &dto.AssessmentResponseDTO{ID: 1, Score: 15}}
	router := setupRouter(&mockQuestionService{}, assessments)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/assessment/submit",
		strings.NewReader(`{"answers":[{"question_id":1,"selected_option_id":10}]}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AssessmentResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 15.0, resp.Score)
}

func TestSubmit_RejectsEmptyOrInvalidBody(t *testing.T) {
	router := setupRouter(&mockQuestionService{}, &mockAssessmentService{})

	for _, body := range []string{`{"answers":[]}`, `{}`, `not json`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/assessment/submit", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
	}
}

func TestSubmit_ServiceError(t *testing.T) {
	router := setupRouter(&mockQuestionService{}, &mockAssessmentService{submitErr: errors.New("db down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/assessment/submit",
		strings.NewReader(`{"answers":[{"question_id":1,"selected_option_id":10}]}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHistory_ReturnsSummaries(t *testing.T) {
	assessments := &mockAssessmentService{history: []dto.AssessmentSummaryDTO{{ID: 1, Score: 12}, {ID: 2, Score: 9}}}
	router := setupRouter(&mockQuestionService{}, assessments)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/assessment/history", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.AssessmentSummaryDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, 12.0, resp[0].Score)
}
