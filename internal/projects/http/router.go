package http

import (
	"github.com/gin-gonic/gin"

	authdomain "github.com/prajwalpc099d/ProjectVault/internal/auth/domain"
	"github.com/prajwalpc099d/ProjectVault/internal/auth/middleware"
)

// Register attaches project routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.submit)
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)

	review := rg.Group("")
	review.Use(middleware.RequireRole(authdomain.RoleFaculty, authdomain.RoleAdmin))
	review.PATCH("/:id/status", h.changeStatus)
	review.POST("/:id/feedback", h.addFeedback)

	rg.GET("/:id/feedback", h.listFeedback)
}
