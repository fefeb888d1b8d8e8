package dashboard

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joshu-sajeev/trendplanner/common"
	"github.com/joshu-sajeev/trendplanner/internal/dto"
	"github.com/joshu-sajeev/trendplanner/middleware"
)

type DashboardHandler struct {
	service DashboardServiceInterface
}

func NewDashboardHandler(s DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{service: s}
}

var _ DashboardHandlerInterface = (*DashboardHandler)(nil)

// respond writes v as 200 or pushes err to the error handler.
func respond[T any](c *gin.Context, v T, err error) {
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	id := middleware.IdentityFrom(c)
	resp, err := h.service.Stats(c.Request.Context(), id.WorkspaceID)
	respond(c, resp, err)
}

func (h *DashboardHandler) TrendingTopics(c *gin.Context) {
	id := middleware.IdentityFrom(c)
	limit := common.ParseLimit(c.Query("limit"), DefaultTopicLimit)
	resp, err := h.service.TrendingTopics(c.Request.Context(), id.WorkspaceID, limit)
	respond(c, resp, err)
}

func (h *DashboardHandler) Engagement(c *gin.Context) {
	days := 7
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.Error(common.Errf(http.StatusBadRequest, "%s", ErrInvalidRange.Error()))
			return
		}
		days = n
	}

	id := middleware.IdentityFrom(c)
	resp, err := h.service.Engagement(c.Request.Context(), id.WorkspaceID, days)
	respond(c, resp, err)
}

func (h *DashboardHandler) Platforms(c *gin.Context) {
	id := middleware.IdentityFrom(c)
	resp, err := h.service.Platforms(c.Request.Context(), id.WorkspaceID)
	respond(c, resp, err)
}

func (h *DashboardHandler) Pillars(c *gin.Context) {
	id := middleware.IdentityFrom(c)
	resp, err := h.service.Pillars(c.Request.Context(), id.WorkspaceID)
	respond(c, resp, err)
}

func (h *DashboardHandler) Weekly(c *gin.Context) {
	id := middleware.IdentityFrom(c)
	resp, err := h.service.Weekly(c.Request.Context(), id.WorkspaceID)
	respond(c, resp, err)
}

func (h *DashboardHandler) Heatmap(c *gin.Context) {
	id := middleware.IdentityFrom(c)
	resp, err := h.service.Heatmap(c.Request.Context(), id.WorkspaceID)
	respond(c, resp, err)
}

func (h *DashboardHandler) Competitors(c *gin.Context) {
	id := middleware.IdentityFrom(c)
	resp, err := h.service.Competitors(c.Request.Context(), id.WorkspaceID)
	respond(c, resp, err)
}

// Refresh queues a rollup for the caller's workspace and returns 202.
func (h *DashboardHandler) Refresh(c *gin.Context) {
	id := middleware.IdentityFrom(c)
	if err := h.service.TriggerRefresh(c.Request.Context(), id.WorkspaceID); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusAccepted, dto.RefreshResponse{Queued: true})
}
