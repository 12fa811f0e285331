package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prajwalpc099d/ProjectVault/internal/auth"
	"github.com/prajwalpc099d/ProjectVault/internal/recommendations/domain"
	"github.com/prajwalpc099d/ProjectVault/internal/recommendations/service"
)

// Handler bundles the dependencies for recommendation HTTP endpoints.
type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) get(c *gin.Context) {
	uid := auth.UserFirebaseUID(c)
	forceRefresh := c.Query("refresh") == "true"

	items, err := h.svc.GetRecommendations(c.Request.Context(), uid, forceRefresh)
	if errors.Is(err, domain.ErrUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "recommendation service unavailable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "recommendations": items})
}

// Register attaches recommendation routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.get)
}
