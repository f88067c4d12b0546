package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.DELETE("/:id", h.delete)
	rg.GET("/:id/docs", h.docs)
	rg.POST("/:id/analyze", h.analyze)
	rg.POST("/:id/design", h.design)
	rg.GET("/:id/visuals", h.visuals)
	rg.POST("/:id/build", h.build)
	rg.GET("/:id/build", h.getBuild)
	rg.PUT("/:id/build/file", h.updateFile)
}
