package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/idea-to-deploy/forge-backend/internal/projects/domain"
)

type createReq struct {
	Idea string `json:"idea"`
}

type updateFileReq struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Idea) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "idea is required"})
		return
	}

	p, err := h.svc.Create(c.Request.Context(), strings.TrimSpace(req.Idea))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) docs(c *gin.Context) {
	docs, err := h.svc.Docs(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *Handler) analyze(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.RunAnalysis(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	docs, err := h.svc.Docs(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "docs": docs})
}

func (h *Handler) design(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.RunDesign(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	visuals, err := h.svc.Visuals(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "visuals": visuals})
}

func (h *Handler) visuals(c *gin.Context) {
	visuals, err := h.svc.Visuals(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, visuals)
}

func (h *Handler) build(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.RunBuild(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	result, err := h.svc.Build(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) getBuild(c *gin.Context) {
	result, err := h.svc.Build(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) updateFile(c *gin.Context) {
	var req updateFileReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Path) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "path is required"})
		return
	}

	if err := h.svc.UpdateBuildFile(c.Request.Context(), c.Param("id"), req.Path, req.Content); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrFileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
	default:
		h.log.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
	}
}
