package http

import "github.com/gin-gonic/gin"

// Register attaches notification routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.PATCH("/:id/read", h.markRead)
	rg.DELETE("/:id", h.delete)
}
