package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joshu-sajeev/trendplanner/internal/assistant"
	"github.com/joshu-sajeev/trendplanner/internal/content"
	"github.com/joshu-sajeev/trendplanner/internal/dashboard"
	"github.com/joshu-sajeev/trendplanner/internal/job"
	"github.com/joshu-sajeev/trendplanner/internal/logger"
	"github.com/joshu-sajeev/trendplanner/internal/scheduling"
	"github.com/joshu-sajeev/trendplanner/middleware"
)

const DefaultRequestTimeout = 15 * time.Second

type RouterConfig struct {
	JobHandler        job.JobHandlerInterface
	SchedulingHandler scheduling.SchedulingHandlerInterface
	DashboardHandler  dashboard.DashboardHandlerInterface
	ContentHandler    content.ContentHandlerInterface
	AssistantHandler  *assistant.Handler

	DefaultUserID      string
	DefaultWorkspaceID string
	// RequestTimeout bounds /api/v1 requests. The assistant routes rely on
	// the upstream client timeout instead.
	RequestTimeout time.Duration
	Logger         *logger.Logger
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.NewNop()
	}

	router := gin.New()
	router.Use(
		middleware.CORS(),
		middleware.Preflight(),
		middleware.RequestLogger(cfg.Logger),
		gin.Recovery(),
		middleware.IdentityMiddleware(cfg.DefaultUserID, cfg.DefaultWorkspaceID),
		middleware.ErrorHandler(),
	)
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/bootstrap", cfg.AssistantHandler.Bootstrap)
		api.DELETE("/bootstrap/cache", cfg.AssistantHandler.InvalidateBootstrap)
		api.POST("/research", cfg.AssistantHandler.Research)
		api.POST("/generate-content", cfg.AssistantHandler.GenerateContent)
	}

	v1 := api.Group("/v1")
	v1.Use(middleware.TimeoutMiddleware(cfg.RequestTimeout))
	{
		v1.POST("/content/generate", cfg.JobHandler.GenerateContent)
		v1.POST("/trends/research", cfg.JobHandler.ResearchTrends)
		v1.GET("/jobs/:id", cfg.JobHandler.Get)

		v1.POST("/scheduling", cfg.SchedulingHandler.Schedule)
		v1.DELETE("/scheduling/:contentItemId", cfg.SchedulingHandler.Cancel)
		v1.GET("/scheduling/upcoming", cfg.SchedulingHandler.Upcoming)

		dash := v1.Group("/dashboard")
		dash.GET("/stats", cfg.DashboardHandler.Stats)
		dash.GET("/trending-topics", cfg.DashboardHandler.TrendingTopics)
		dash.GET("/engagement", cfg.DashboardHandler.Engagement)
		dash.GET("/platforms", cfg.DashboardHandler.Platforms)
		dash.GET("/pillars", cfg.DashboardHandler.Pillars)
		dash.GET("/weekly", cfg.DashboardHandler.Weekly)
		dash.GET("/heatmap", cfg.DashboardHandler.Heatmap)
		dash.GET("/competitors", cfg.DashboardHandler.Competitors)
		dash.POST("/refresh", cfg.DashboardHandler.Refresh)

		v1.GET("/content", cfg.ContentHandler.List)
		v1.PATCH("/content/:id/status", cfg.ContentHandler.UpdateStatus)
	}

	return router
}
