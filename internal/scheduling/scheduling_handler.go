package scheduling

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshu-sajeev/trendplanner/common"
	"github.com/joshu-sajeev/trendplanner/internal/dto"
	"github.com/joshu-sajeev/trendplanner/middleware"
)

type SchedulingHandler struct {
	service SchedulingServiceInterface
}

func NewSchedulingHandler(s SchedulingServiceInterface) *SchedulingHandler {
	return &SchedulingHandler{service: s}
}

var _ SchedulingHandlerInterface = (*SchedulingHandler)(nil)

func (h *SchedulingHandler) Schedule(c *gin.Context) {
	var req dto.SchedulePostRequest
	if !middleware.Bind(c, &req) {
		c.Abort()
		return
	}

	id := middleware.IdentityFrom(c)
	resp, err := h.service.Schedule(c.Request.Context(), id.UserID, id.WorkspaceID, &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *SchedulingHandler) Cancel(c *gin.Context) {
	id := middleware.IdentityFrom(c)
	if err := h.service.Cancel(c.Request.Context(), id.WorkspaceID, c.Param("contentItemId")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.CancelPostResponse{Cancelled: true})
}

// Upcoming lists the caller's pending posts, soonest first.
func (h *SchedulingHandler) Upcoming(c *gin.Context) {
	id := middleware.IdentityFrom(c)
	limit := common.ParseLimit(c.Query("limit"), DefaultUpcomingLimit)

	posts, err := h.service.Upcoming(c.Request.Context(), id.UserID, limit)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, posts)
}
