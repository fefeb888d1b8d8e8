package job

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joshu-sajeev/trendplanner/common"
	"github.com/joshu-sajeev/trendplanner/internal/dto"
	"github.com/joshu-sajeev/trendplanner/internal/mocks"
	"github.com/joshu-sajeev/trendplanner/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter(svc JobServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(
		middleware.TimeoutMiddleware(5*time.Second),
		middleware.IdentityMiddleware("demo-user", "demo-workspace"),
		middleware.ErrorHandler(),
	)
	h := NewJobHandler(svc)
	r.POST("/content/generate", h.GenerateContent)
	r.POST("/trends/research", h.ResearchTrends)
	r.GET("/jobs/:id", h.Get)
	return r
}

func TestJobHandler_GenerateContent(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		headers        map[string]string
		setupMock      func(*mocks.JobServiceMock)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "queued",
			body:    `{"platform":"Instagram","topic":"AI","tone":"bold","includeAB":true}`,
			headers: map[string]string{"X-User-Id": "u1", "X-Workspace-Id": "ws1"},
			setupMock: func(m *mocks.JobServiceMock) {
				m.On("SubmitContentGeneration", mock.Anything, "u1", "ws1", &dto.GenerateContentRequest{
					Platform: "Instagram", Topic: "AI", Tone: "bold", IncludeAB: true,
				}).Return(&dto.SubmitJobResponse{JobID: "job-1", Status: "queued"}, nil)
			},
			expectedStatus: http.StatusAccepted,
			expectedBody:   `{"jobId":"job-1","status":"queued"}`,
		},
		{
			name: "default identity",
			body: `{"platform":"X","topic":"AI","tone":"dry"}`,
			setupMock: func(m *mocks.JobServiceMock) {
				m.On("SubmitContentGeneration", mock.Anything, "demo-user", "demo-workspace", mock.Anything).
					Return(&dto.SubmitJobResponse{JobID: "job-2", Status: "queued"}, nil)
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name:           "invalid json",
			body:           `{invalid json}`,
			setupMock:      func(m *mocks.JobServiceMock) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing topic",
			body:           `{"platform":"X","tone":"dry"}`,
			setupMock:      func(m *mocks.JobServiceMock) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"validation failed","fields":{"Topic":"failed required"}}`,
		},
		{
			name: "insufficient credits",
			body: `{"platform":"X","topic":"AI","tone":"dry"}`,
			setupMock: func(m *mocks.JobServiceMock) {
				m.On("SubmitContentGeneration", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(nil, common.Errf(http.StatusPaymentRequired, "Insufficient credits").WithCode("INSUFFICIENT_CREDITS"))
			},
			expectedStatus: http.StatusPaymentRequired,
			expectedBody:   `{"error":"Insufficient credits","code":"INSUFFICIENT_CREDITS"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.JobServiceMock)
			tt.setupMock(mockService)

			req := httptest.NewRequest(http.MethodPost, "/content/generate", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			newTestRouter(mockService).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code, "Status code mismatch for test: %s", tt.name)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestJobHandler_ResearchTrends(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.JobServiceMock)
		expectedStatus int
	}{
		{
			name: "empty body",
			body: ``,
			setupMock: func(m *mocks.JobServiceMock) {
				m.On("SubmitTrendResearch", mock.Anything, "demo-user", "demo-workspace", &dto.ResearchTrendsRequest{}).
					Return(&dto.SubmitJobResponse{JobID: "job-3", Status: "queued"}, nil)
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name: "with niche",
			body: `{"niche":"fitness"}`,
			setupMock: func(m *mocks.JobServiceMock) {
				m.On("SubmitTrendResearch", mock.Anything, mock.Anything, mock.Anything, &dto.ResearchTrendsRequest{Niche: "fitness"}).
					Return(&dto.SubmitJobResponse{JobID: "job-4", Status: "queued"}, nil)
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name:           "niche too long",
			body:           `{"niche":"` + strings.Repeat("n", 201) + `"}`,
			setupMock:      func(m *mocks.JobServiceMock) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.JobServiceMock)
			tt.setupMock(mockService)

			req := httptest.NewRequest(http.MethodPost, "/trends/research", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			newTestRouter(mockService).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestJobHandler_Get(t *testing.T) {
	errMsg := "No JSON object or array found in model response."

	tests := []struct {
		name           string
		setupMock      func(*mocks.JobServiceMock)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "found",
			setupMock: func(m *mocks.JobServiceMock) {
				m.On("GetJob", mock.Anything, "u1", "job-1").Return(&dto.JobResponse{
					ID: "job-1", JobType: "CONTENT_GENERATION", Status: "FAILED", CreditsUsed: 5, Error: &errMsg,
					CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"id":"job-1","jobType":"CONTENT_GENERATION","status":"FAILED","creditsUsed":5,
				"result":null,"error":"No JSON object or array found in model response.",
				"createdAt":"2026-01-02T03:04:05Z","completedAt":null}`,
		},
		{
			name: "not found",
			setupMock: func(m *mocks.JobServiceMock) {
				m.On("GetJob", mock.Anything, "u1", "job-1").Return(nil, common.Errf(http.StatusNotFound, "job not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"job not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.JobServiceMock)
			tt.setupMock(mockService)

			req := httptest.NewRequest(http.MethodGet, "/jobs/job-1", nil)
			req.Header.Set("X-User-Id", "u1")
			w := httptest.NewRecorder()
			newTestRouter(mockService).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockService.AssertExpectations(t)
		})
	}
}
