// Package assistant serves the synchronous generation endpoints used by the
// dashboard before any data is persisted.
package assistant

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joshu-sajeev/trendplanner/internal/cache"
	"github.com/joshu-sajeev/trendplanner/internal/extract"
	"github.com/joshu-sajeev/trendplanner/internal/logger"
	"github.com/joshu-sajeev/trendplanner/internal/normalize"
	"github.com/joshu-sajeev/trendplanner/internal/textgen"
)

const BootstrapCacheKey = "bootstrap:v1"

type Handler struct {
	gen   textgen.Generator
	cache cache.Cache
	ttl   time.Duration
	log   *logger.Logger
}

func NewHandler(gen textgen.Generator, c cache.Cache, ttl time.Duration, log *logger.Logger) *Handler {
	return &Handler{gen: gen, cache: c, ttl: ttl, log: log}
}

// Bootstrap returns the dashboard seed bundle, served from cache while fresh.
func (h *Handler) Bootstrap(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, ok, err := h.cache.Get(ctx, BootstrapCacheKey); err != nil {
		h.log.Warn("bootstrap cache read failed", "error", err)
	} else if ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
		return
	}

	raw, err := h.call(ctx, textgen.BootstrapInstructions, textgen.BootstrapInput)
	if err != nil {
		h.fail(c, err)
		return
	}

	body, err := json.Marshal(normalize.Bootstrap(raw))
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := h.cache.Set(ctx, BootstrapCacheKey, body, h.ttl); err != nil {
		h.log.Warn("bootstrap cache write failed", "error", err)
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// InvalidateBootstrap drops the cached bundle.
func (h *Handler) InvalidateBootstrap(c *gin.Context) {
	if err := h.cache.Delete(c.Request.Context(), BootstrapCacheKey); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Research(c *gin.Context) {
	body, ok := h.decode(c)
	if !ok {
		return
	}
	params := textgen.ResearchParams{
		Niche:    normalize.Text(body["niche"]),
		Audience: normalize.Text(body["audience"]),
		Market:   normalize.Text(body["market"]),
		Tone:     normalize.Text(body["tone"]),
	}

	raw, err := h.call(c.Request.Context(), textgen.ResearchInstructions, textgen.ResearchInput(params))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, normalize.Research(raw))
}

func (h *Handler) GenerateContent(c *gin.Context) {
	body, ok := h.decode(c)
	if !ok {
		return
	}
	params := textgen.ContentParams{
		Platform: normalize.Text(body["platform"]),
		Topic:    normalize.Text(body["topic"]),
		Tone:     normalize.Text(body["tone"]),
	}

	raw, err := h.call(c.Request.Context(), textgen.CopyInstructions, textgen.CopyInput(params))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, normalize.GenerateContent(raw))
}

func (h *Handler) call(ctx context.Context, instructions, input string) (any, error) {
	text, err := h.gen.Generate(ctx, instructions, input)
	if err != nil {
		return nil, err
	}
	return extract.JSON(text)
}

// decode accepts any JSON value. Fields are only read from an object body;
// any other value behaves like an empty one.
func (h *Handler) decode(c *gin.Context) (map[string]any, bool) {
	raw, err := io.ReadAll(c.Request.Body)
	var body any
	if err == nil {
		err = extract.DecodeRequestBody(raw, &body)
	}
	if err != nil {
		h.fail(c, extract.ErrInvalidRequestBody)
		return nil, false
	}
	fields, _ := body.(map[string]any)
	return fields, true
}

// fail writes the flat error shape this surface has always used.
func (h *Handler) fail(c *gin.Context, err error) {
	h.log.Error("assistant request failed", "path", c.FullPath(), "error", err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
