package http

import "github.com/gin-gonic/gin"

// Register attaches interaction routes under the projects group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/:id/interactions", h.interact)
	rg.GET("/:id/interactions/me", h.mine)
}

// RegisterAdmin attaches the engagement analytics routes to the admin group.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("/engagement", h.engagement)
	rg.GET("/users/:id/activity", h.userActivity)
}
