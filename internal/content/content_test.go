package content_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/joshu-sajeev/trendplanner/common"
	"github.com/joshu-sajeev/trendplanner/internal/config"
	"github.com/joshu-sajeev/trendplanner/internal/content"
	"github.com/joshu-sajeev/trendplanner/internal/dto"
	"github.com/joshu-sajeev/trendplanner/internal/logger"
	"github.com/joshu-sajeev/trendplanner/internal/mocks"
	"github.com/joshu-sajeev/trendplanner/internal/models"
	"github.com/joshu-sajeev/trendplanner/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func items(n int) []models.ContentItem {
	out := make([]models.ContentItem, n)
	for i := range out {
		day := i + 1
		out[i] = models.ContentItem{
			ID:           fmt.Sprintf("c%02d", i),
			Platform:     "Instagram",
			Status:       config.ContentStatusDraft,
			ScheduledDay: &day,
		}
	}
	return out
}

func apiStatus(t *testing.T, err error) int {
	t.Helper()
	var apiErr common.APIError
	require.ErrorAs(t, err, &apiErr)
	return apiErr.Status
}

func TestContentService_List(t *testing.T) {
	t.Run("full page sets next cursor", func(t *testing.T) {
		repo := new(mocks.ContentRepoMock)
		svc := content.NewContentService(repo, logger.NewNop())
		repo.On("List", mock.Anything, "ws1", content.ListFilter{Limit: 3}).Return(items(4), nil)

		resp, err := svc.List(context.Background(), "ws1", content.ListFilter{Limit: 3})
		require.NoError(t, err)
		require.Len(t, resp.Items, 3)
		require.NotNil(t, resp.NextCursor)
		assert.Equal(t, "c03", *resp.NextCursor)
		assert.Equal(t, []string{}, resp.Items[0].Hashtags)
	})

	t.Run("last page has no cursor", func(t *testing.T) {
		repo := new(mocks.ContentRepoMock)
		svc := content.NewContentService(repo, logger.NewNop())
		f := content.ListFilter{Status: config.ContentStatusDraft, Platform: "Instagram", Limit: 30, Cursor: "c05"}
		repo.On("List", mock.Anything, "ws1", f).Return(items(2), nil)

		resp, err := svc.List(context.Background(), "ws1", f)
		require.NoError(t, err)
		assert.Len(t, resp.Items, 2)
		assert.Nil(t, resp.NextCursor)
	})

	t.Run("limit defaults and clamps", func(t *testing.T) {
		repo := new(mocks.ContentRepoMock)
		svc := content.NewContentService(repo, logger.NewNop())
		repo.On("List", mock.Anything, "ws1", content.ListFilter{Limit: content.DefaultPageSize}).Return(nil, nil).Once()
		repo.On("List", mock.Anything, "ws1", content.ListFilter{Limit: common.MaxPageSize}).Return(nil, nil).Once()

		resp, err := svc.List(context.Background(), "ws1", content.ListFilter{})
		require.NoError(t, err)
		assert.Equal(t, []dto.ContentItemResponse{}, resp.Items)

		_, err = svc.List(context.Background(), "ws1", content.ListFilter{Limit: 500})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("unknown status", func(t *testing.T) {
		repo := new(mocks.ContentRepoMock)
		svc := content.NewContentService(repo, logger.NewNop())

		_, err := svc.List(context.Background(), "ws1", content.ListFilter{Status: "ARCHIVED"})
		assert.Equal(t, http.StatusBadRequest, apiStatus(t, err))
		repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown cursor", func(t *testing.T) {
		repo := new(mocks.ContentRepoMock)
		svc := content.NewContentService(repo, logger.NewNop())
		repo.On("List", mock.Anything, "ws1", mock.Anything).Return(nil, fmt.Errorf("cursor x: %w", common.ErrNotFound))

		_, err := svc.List(context.Background(), "ws1", content.ListFilter{Cursor: "x"})
		assert.Equal(t, http.StatusNotFound, apiStatus(t, err))
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		svc := content.NewContentService(new(mocks.ContentRepoMock), logger.NewNop())

		_, err := svc.List(ctx, "ws1", content.ListFilter{})
		assert.Equal(t, http.StatusRequestTimeout, apiStatus(t, err))
	})
}

func TestContentService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name       string
		status     config.ContentStatus
		setupMock  func(*mocks.ContentRepoMock)
		wantStatus int
	}{
		{
			name:   "updated",
			status: config.ContentStatusPublished,
			setupMock: func(m *mocks.ContentRepoMock) {
				m.On("UpdateStatus", mock.Anything, "ws1", "c1", config.ContentStatusPublished).
					Return(&models.ContentItem{ID: "c1", Status: config.ContentStatusPublished}, nil)
			},
		},
		{
			name:       "invalid status",
			status:     "ARCHIVED",
			setupMock:  func(*mocks.ContentRepoMock) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "missing item",
			status: config.ContentStatusDraft,
			setupMock: func(m *mocks.ContentRepoMock) {
				m.On("UpdateStatus", mock.Anything, "ws1", "c1", config.ContentStatusDraft).
					Return(nil, common.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "database error",
			status: config.ContentStatusDraft,
			setupMock: func(m *mocks.ContentRepoMock) {
				m.On("UpdateStatus", mock.Anything, "ws1", "c1", config.ContentStatusDraft).
					Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.ContentRepoMock)
			tt.setupMock(repo)
			svc := content.NewContentService(repo, logger.NewNop())

			resp, err := svc.UpdateStatus(context.Background(), "ws1", "c1", tt.status)
			if tt.wantStatus != 0 {
				assert.Equal(t, tt.wantStatus, apiStatus(t, err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "PUBLISHED", resp.Status)
			repo.AssertExpectations(t)
		})
	}
}

func newTestRouter(svc content.ContentServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.IdentityMiddleware("", ""), middleware.ErrorHandler())
	h := content.NewContentHandler(svc)
	r.GET("/content", h.List)
	r.PATCH("/content/:id/status", h.UpdateStatus)
	return r
}

func TestContentHandler(t *testing.T) {
	next := "c09"
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		headers        map[string]string
		setupMock      func(*mocks.ContentServiceMock)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "list with filters", method: http.MethodGet,
			path:    "/content?status=DRAFT&platform=TikTok&limit=5&cursor=c04",
			headers: map[string]string{middleware.HeaderWorkspaceID: "ws9"},
			setupMock: func(m *mocks.ContentServiceMock) {
				m.On("List", mock.Anything, "ws9", content.ListFilter{
					Status: config.ContentStatusDraft, Platform: "TikTok", Limit: 5, Cursor: "c04",
				}).Return(&dto.ContentListResponse{Items: []dto.ContentItemResponse{}, NextCursor: &next}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"items":[],"nextCursor":"c09"}`,
		},
		{
			name: "list defaults", method: http.MethodGet, path: "/content",
			setupMock: func(m *mocks.ContentServiceMock) {
				m.On("List", mock.Anything, "demo-workspace", content.ListFilter{Limit: content.DefaultPageSize}).
					Return(&dto.ContentListResponse{Items: []dto.ContentItemResponse{}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"items":[],"nextCursor":null}`,
		},
		{
			name: "update status", method: http.MethodPatch, path: "/content/c1/status",
			body: `{"status":"SCHEDULED"}`,
			setupMock: func(m *mocks.ContentServiceMock) {
				m.On("UpdateStatus", mock.Anything, "demo-workspace", "c1", config.ContentStatusScheduled).
					Return(&dto.ContentItemResponse{ID: "c1", Status: "SCHEDULED"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "update status rejects unknown value", method: http.MethodPatch, path: "/content/c1/status",
			body:           `{"status":"ARCHIVED"}`,
			setupMock:      func(*mocks.ContentServiceMock) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "update status missing item", method: http.MethodPatch, path: "/content/nope/status",
			body: `{"status":"DRAFT"}`,
			setupMock: func(m *mocks.ContentServiceMock) {
				m.On("UpdateStatus", mock.Anything, "demo-workspace", "nope", config.ContentStatusDraft).
					Return(nil, common.Errf(http.StatusNotFound, "content item not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"content item not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mocks.ContentServiceMock)
			tt.setupMock(svc)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			newTestRouter(svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
			svc.AssertExpectations(t)
		})
	}
}
