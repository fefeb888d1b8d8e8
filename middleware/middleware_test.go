package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joshu-sajeev/trendplanner/common"
	"github.com/joshu-sajeev/trendplanner/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "api error with code",
			err:      common.Errf(http.StatusPaymentRequired, "Insufficient credits").WithCode("INSUFFICIENT_CREDITS"),
			wantCode: http.StatusPaymentRequired,
			wantBody: `{"error":"Insufficient credits","code":"INSUFFICIENT_CREDITS"}`,
		},
		{
			name:     "api error with fields",
			err:      common.NewAPIError(http.StatusBadRequest, "validation failed", map[string]any{"Topic": "failed required"}),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"validation failed","fields":{"Topic":"failed required"}}`,
		},
		{
			name:     "wrapped api error",
			err:      errors.Join(common.Errf(http.StatusNotFound, "job not found")),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"job not found"}`,
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"boom"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(ErrorHandler())
			r.GET("/x", func(c *gin.Context) { c.Error(tt.err) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestBind(t *testing.T) {
	type request struct {
		Topic string `json:"topic" validate:"required"`
		Tone  string `json:"tone" validate:"max=5"`
	}
	type optional struct {
		Niche string `json:"niche" validate:"max=10"`
	}

	tests := []struct {
		name     string
		body     string
		bind     func(c *gin.Context) bool
		wantCode int
		contains string
	}{
		{"valid", `{"topic":"ai"}`, func(c *gin.Context) bool { return Bind(c, &request{}) }, http.StatusOK, ""},
		{"malformed", `{"topic":`, func(c *gin.Context) bool { return Bind(c, &request{}) }, http.StatusBadRequest, "invalid json"},
		{"missing required", `{}`, func(c *gin.Context) bool { return Bind(c, &request{}) }, http.StatusBadRequest, `"Topic":"failed required"`},
		{"empty body required", ``, func(c *gin.Context) bool { return Bind(c, &request{}) }, http.StatusBadRequest, "validation failed"},
		{"empty body optional", ``, func(c *gin.Context) bool { return Bind(c, &optional{}) }, http.StatusOK, ""},
		{"too long", `{"topic":"a","tone":"shouting"}`, func(c *gin.Context) bool { return Bind(c, &request{}) }, http.StatusBadRequest, `"Tone":"failed max"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(ErrorHandler())
			r.POST("/x", func(c *gin.Context) {
				if !tt.bind(c) {
					return
				}
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.contains != "" {
				assert.Contains(t, w.Body.String(), tt.contains)
			}
		})
	}
}

func TestIdentityMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		defUser  string
		defWS    string
		wantUser string
		wantWS   string
	}{
		{"headers win", map[string]string{HeaderUserID: "u1", HeaderWorkspaceID: "w1"}, "du", "dw", "u1", "w1"},
		{"configured defaults", nil, "du", "dw", "du", "dw"},
		{"blank header falls through", map[string]string{HeaderUserID: "  "}, "du", "", "du", "demo-workspace"},
		{"demo ids", nil, "", "", "demo-user", "demo-workspace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Identity
			r := gin.New()
			r.Use(IdentityMiddleware(tt.defUser, tt.defWS))
			r.GET("/x", func(c *gin.Context) { got = IdentityFrom(c) })

			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			r.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, Identity{UserID: tt.wantUser, WorkspaceID: tt.wantWS}, got)
		})
	}
}

func TestIdentityFrom_WithoutMiddleware(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, Identity{UserID: "demo-user", WorkspaceID: "demo-workspace"}, IdentityFrom(c))
}

func TestCORSAndPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS(), Preflight())
	r.POST("/api/research", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("cors preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/research", nil)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("bare options on unknown route", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/nowhere", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("simple request gets allow origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/research", nil)
		req.Header.Set("Origin", "https://app.example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestTimeoutMiddleware(t *testing.T) {
	var deadline time.Time
	var ok bool
	r := gin.New()
	r.Use(TimeoutMiddleware(50 * time.Millisecond))
	r.GET("/x", func(c *gin.Context) {
		deadline, ok = c.Request.Context().Deadline()
		<-c.Request.Context().Done()
		assert.ErrorIs(t, c.Request.Context().Err(), context.DeadlineExceeded)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))
	require.True(t, ok)
	assert.False(t, deadline.IsZero())
}

func TestRequestLogger(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(logger.NewNop()), IdentityMiddleware("", ""), ErrorHandler())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/bad", func(c *gin.Context) { c.Error(common.Errf(http.StatusBadRequest, "bad")) })

	for path, code := range map[string]int{"/ok": 200, "/bad": 400, "/missing": 404} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, code, w.Code, path)
	}
}
