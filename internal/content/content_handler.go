package content

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshu-sajeev/trendplanner/common"
	"github.com/joshu-sajeev/trendplanner/internal/config"
	"github.com/joshu-sajeev/trendplanner/internal/dto"
	"github.com/joshu-sajeev/trendplanner/middleware"
)

type ContentHandler struct {
	service ContentServiceInterface
}

func NewContentHandler(s ContentServiceInterface) *ContentHandler {
	return &ContentHandler{service: s}
}

var _ ContentHandlerInterface = (*ContentHandler)(nil)

func (h *ContentHandler) List(c *gin.Context) {
	id := middleware.IdentityFrom(c)
	f := ListFilter{
		Status:   config.ContentStatus(c.Query("status")),
		Platform: c.Query("platform"),
		Limit:    common.ParseLimit(c.Query("limit"), DefaultPageSize),
		Cursor:   c.Query("cursor"),
	}

	resp, err := h.service.List(c.Request.Context(), id.WorkspaceID, f)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ContentHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateContentStatusRequest
	if !middleware.Bind(c, &req) {
		return
	}

	id := middleware.IdentityFrom(c)
	resp, err := h.service.UpdateStatus(c.Request.Context(), id.WorkspaceID, c.Param("id"), config.ContentStatus(req.Status))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
