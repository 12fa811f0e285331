package http

import (
	"github.com/gin-gonic/gin"

	"github.com/prajwalpc099d/ProjectVault/internal/auth/domain"
	"github.com/prajwalpc099d/ProjectVault/internal/auth/middleware"
)

// Register attaches auth and admin routes to the given groups.
func (h *Handler) Register(authGroup, adminGroup *gin.RouterGroup) {
	authGroup.POST("/register", h.RegisterUser)
	authGroup.GET("/me", h.Me)
	authGroup.PUT("/me", h.UpdateMe)

	adminGroup.Use(middleware.RequireRole(domain.RoleAdmin))
	adminGroup.GET("/users", h.ListUsers)
	adminGroup.PATCH("/users/:id/role", h.ChangeRole)
}
