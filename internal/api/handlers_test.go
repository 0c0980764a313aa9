package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mock_api "github.com/DanRulev/quizmeon/internal/api/mock"
	"github.com/DanRulev/quizmeon/internal/config"
	"github.com/DanRulev/quizmeon/internal/llm"
	"github.com/DanRulev/quizmeon/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRouterMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_api.MockQuizSI)) http.Handler {
	service := mock_api.NewMockQuizSI(ctrl)
	if setupMock != nil {
		setupMock(service)
	}

	return NewRouter(service, config.HTTPConfig{CORSOrigins: []string{"http://localhost:3000"}}, zap.NewNop())
}

func sampleQuiz() models.Quiz {
	return models.Quiz{
		Title:      "Capitals of Europe",
		Difficulty: models.DifficultyEasy,
		Questions: models.Questions{
			{
				Question:      "What is the capital of France?",
				Options:       []string{"Paris", "Rome", "Madrid", "Berlin"},
				CorrectAnswer: "Paris",
			},
		},
	}
}

func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestRouter(t *testing.T) {
	t.Parallel()

	saved := sampleQuiz()
	saved.ID = "5b0e7e6c-8f38-4a65-9d4c-3c0c7b0c7d11"

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		f          func(*mock_api.MockQuizSI)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "get: success",
			method: http.MethodGet,
			path:   "/api/quiz/" + saved.ID,
			f: func(ms *mock_api.MockQuizSI) {
				ms.EXPECT().Quiz(gomock.Any(), saved.ID).Return(saved, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   mustJSON(t, saved),
		},
		{
			name:   "get: not found",
			method: http.MethodGet,
			path:   "/api/quiz/unknown",
			f: func(ms *mock_api.MockQuizSI) {
				ms.EXPECT().Quiz(gomock.Any(), "unknown").Return(models.Quiz{}, models.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Quiz not found"}`,
		},
		{
			name:   "get: internal error hides details",
			method: http.MethodGet,
			path:   "/api/quiz/abc",
			f: func(ms *mock_api.MockQuizSI) {
				ms.EXPECT().Quiz(gomock.Any(), "abc").Return(models.Quiz{}, fmt.Errorf("database error: %w", assert.AnError))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal Server Error"}`,
		},
		{
			name:       "get: empty id",
			method:     http.MethodGet,
			path:       "/api/quiz/",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Quiz ID is required"}`,
		},
		{
			name:       "get: blank id",
			method:     http.MethodGet,
			path:       "/api/quiz/%20",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Quiz ID is required"}`,
		},
		{
			name:   "generate: success",
			method: http.MethodPost,
			path:   "/api/quiz/generate",
			body:   `{"title":"Capitals of Europe","difficulty":"Easy","numQuestions":1}`,
			f: func(ms *mock_api.MockQuizSI) {
				ms.EXPECT().Generate(gomock.Any(), models.GenerateRequest{Title: "Capitals of Europe", Difficulty: "Easy", NumQuestions: 1}).
					Return(sampleQuiz(), nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   mustJSON(t, sampleQuiz()),
		},
		{
			name:       "generate: malformed body",
			method:     http.MethodPost,
			path:       "/api/quiz/generate",
			body:       `{"title":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Title, difficulty, and a valid number of questions are required"}`,
		},
		{
			name:   "generate: validation",
			method: http.MethodPost,
			path:   "/api/quiz/generate",
			body:   `{"title":"","difficulty":"Easy","numQuestions":1}`,
			f: func(ms *mock_api.MockQuizSI) {
				ms.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(models.Quiz{}, fmt.Errorf("%w: title", models.ErrValidation))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Title, difficulty, and a valid number of questions are required"}`,
		},
		{
			name:   "generate: timeout",
			method: http.MethodPost,
			path:   "/api/quiz/generate",
			body:   `{"title":"Slow","difficulty":"Hard","numQuestions":3}`,
			f: func(ms *mock_api.MockQuizSI) {
				ms.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(models.Quiz{}, models.ErrTimeout)
			},
			wantStatus: http.StatusGatewayTimeout,
			wantBody:   `{"error":"Request timed out"}`,
		},
		{
			name:   "generate: empty model response",
			method: http.MethodPost,
			path:   "/api/quiz/generate",
			body:   `{"title":"t","difficulty":"Hard","numQuestions":3}`,
			f: func(ms *mock_api.MockQuizSI) {
				ms.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(models.Quiz{}, llm.ErrEmptyResponse)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Invalid response from Gemini API"}`,
		},
		{
			name:   "generate: malformed model json",
			method: http.MethodPost,
			path:   "/api/quiz/generate",
			body:   `{"title":"t","difficulty":"Hard","numQuestions":3}`,
			f: func(ms *mock_api.MockQuizSI) {
				ms.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(models.Quiz{}, fmt.Errorf("%w: unexpected end", llm.ErrMalformedJSON))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Invalid JSON response from Gemini API"}`,
		},
		{
			name:   "generate: schema mismatch",
			method: http.MethodPost,
			path:   "/api/quiz/generate",
			body:   `{"title":"t","difficulty":"Hard","numQuestions":3}`,
			f: func(ms *mock_api.MockQuizSI) {
				ms.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(models.Quiz{}, llm.ErrSchemaMismatch)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Invalid quiz returned by Gemini API"}`,
		},
		{
			name:   "generate: upstream",
			method: http.MethodPost,
			path:   "/api/quiz/generate",
			body:   `{"title":"t","difficulty":"Hard","numQuestions":3}`,
			f: func(ms *mock_api.MockQuizSI) {
				ms.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(models.Quiz{}, llm.ErrUpstream)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal Server Error"}`,
		},
		{
			name:   "save: success",
			method: http.MethodPost,
			path:   "/api/quiz/save",
			body:   mustJSON(t, sampleQuiz()),
			f: func(ms *mock_api.MockQuizSI) {
				ms.EXPECT().Save(gomock.Any(), sampleQuiz()).Return(saved.ID, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"quizId":"` + saved.ID + `"}`,
		},
		{
			name:   "save: invalid quiz",
			method: http.MethodPost,
			path:   "/api/quiz/save",
			body:   `{"title":"x","difficulty":"Easy","questions":[]}`,
			f: func(ms *mock_api.MockQuizSI) {
				ms.EXPECT().Save(gomock.Any(), gomock.Any()).Return("", models.ErrValidation)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid quiz payload"}`,
		},
		{
			name:       "save: malformed body",
			method:     http.MethodPost,
			path:       "/api/quiz/save",
			body:       `[]`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid quiz payload"}`,
		},
		{
			name:   "save: store failure",
			method: http.MethodPost,
			path:   "/api/quiz/save",
			body:   mustJSON(t, sampleQuiz()),
			f: func(ms *mock_api.MockQuizSI) {
				ms.EXPECT().Save(gomock.Any(), gomock.Any()).Return("", assert.AnError)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal Server Error"}`,
		},
		{
			name:       "save: wrong method",
			method:     http.MethodPut,
			path:       "/api/quiz/save",
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   `{"error":"Method Not Allowed"}`,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/api/other",
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Not Found"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router := newRouterMock(t, ctrl, tt.f)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestRouter_Healthz(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := httptest.NewRecorder()
	newRouterMock(t, ctrl, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	t.Parallel()

	cfg := config.HTTPConfig{
		PublicURL:   "https://quiz.example.com/",
		CORSOrigins: []string{"http://localhost:3000"},
	}

	tests := []struct {
		origin string
		want   string
	}{
		{origin: "http://localhost:3000", want: "http://localhost:3000"},
		{origin: "https://quiz.example.com", want: "https://quiz.example.com"},
		{origin: "https://evil.example.com", want: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.origin, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router := NewRouter(mock_api.NewMockQuizSI(ctrl), cfg, zap.NewNop())

			req := httptest.NewRequest(http.MethodOptions, "/api/quiz/save", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
