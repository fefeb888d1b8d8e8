package job

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshu-sajeev/trendplanner/internal/dto"
	"github.com/joshu-sajeev/trendplanner/middleware"
)

type JobHandler struct {
	service JobServiceInterface
}

func NewJobHandler(s JobServiceInterface) *JobHandler {
	return &JobHandler{service: s}
}

var _ JobHandlerInterface = (*JobHandler)(nil)

// GenerateContent queues a content generation job and returns 202 with
// the job id.
func (h *JobHandler) GenerateContent(c *gin.Context) {
	var req dto.GenerateContentRequest
	if !middleware.Bind(c, &req) {
		c.Abort()
		return
	}

	id := middleware.IdentityFrom(c)
	resp, err := h.service.SubmitContentGeneration(c.Request.Context(), id.UserID, id.WorkspaceID, &req)
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusAccepted, resp)
}

// ResearchTrends queues a trend research job. Every body field is optional.
func (h *JobHandler) ResearchTrends(c *gin.Context) {
	var req dto.ResearchTrendsRequest
	if !middleware.Bind(c, &req) {
		c.Abort()
		return
	}

	id := middleware.IdentityFrom(c)
	resp, err := h.service.SubmitTrendResearch(c.Request.Context(), id.UserID, id.WorkspaceID, &req)
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusAccepted, resp)
}

// Get returns a job owned by the caller.
func (h *JobHandler) Get(c *gin.Context) {
	id := middleware.IdentityFrom(c)
	resp, err := h.service.GetJob(c.Request.Context(), id.UserID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
